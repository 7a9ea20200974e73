// Package rowan is a small 2D game engine for [Ebitengine] built around an
// entity-component-system core and a layered game-state stack.
//
// # Quick start
//
// A game is a set of [GameState] values registered on the engine's
// [StateManager]. [Engine.Run] creates the window and drives the loop:
//
//	eng := rowan.NewEngine(rowan.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//	eng.States().AddState("play", NewPlayState(eng))
//	eng.States().PushState("play")
//	if err := eng.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Each tick the engine refreshes input, applies any deferred state change,
// and forwards HandleInput, Update, and Render to the state on top of the
// stack. States beneath the top are paused in place: their entities and
// components stay untouched until the covering state pops.
//
// # Entities and systems
//
// A state typically owns an [ecs.Manager] holding its entities, components,
// and systems. The rowan package ships the stock components ([Transform],
// [Velocity], [Sprite], [Collider], [AudioSource]) and systems
// ([MovementSystem], [CollisionSystem], [AudioSystem], [TweenSystem]):
//
//	m := ecs.NewManager()
//	ecs.AddSystem(m, rowan.NewMovementSystem())
//	collision := ecs.AddSystem(m, rowan.NewCollisionSystem(nil))
//	collision.OnCollision(func(info rowan.CollisionInfo) { ... })
//
//	e := m.CreateEntity()
//	ecs.Add(m, e, rowan.Transform{Position: mgl64.Vec2{100, 100}})
//	ecs.Add(m, e, rowan.Velocity{Linear: mgl64.Vec2{50, 0}})
//
// Systems run in registration order; register movement before collision so
// collision tests this tick's positions.
//
// # State transitions
//
// [StateManager.PushState] overlays a state without exiting the one beneath
// (pause menus), [StateManager.PopState] resumes the state beneath without
// re-entering it, and [StateManager.ChangeState] defers a full replacement
// to the start of the next update so a state can request its own
// replacement mid-frame.
//
// # Configuration
//
// Gameplay constants and keybindings load from INI files via [LoadConfig];
// the ECS and state core take no dependency on the format.
//
// [Ebitengine]: https://ebitengine.org
package rowan
