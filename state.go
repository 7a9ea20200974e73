package rowan

import "go.uber.org/zap"

// GameState is one named mode of the game (title screen, playing, paused,
// game over). States are registered on a [StateManager] and activated by
// pushing them onto its stack. Only the top of the stack ticks; states
// beneath it are paused in place with all their entities intact.
type GameState interface {
	// OnEnter is called when the state is pushed onto the stack.
	OnEnter()
	// OnExit is called when the state is popped off the stack.
	// It is NOT called when another state is pushed on top.
	OnExit()
	// HandleInput is called once per tick, before Update, while the state
	// is on top of the stack.
	HandleInput(in *Input)
	// Update advances the state by dt seconds.
	Update(dt float64)
	// Render draws the state. The engine has already cleared the frame.
	Render(r *Renderer)
}

// BaseState is a no-op GameState implementation for embedding, so concrete
// states override only the hooks they need.
type BaseState struct{}

func (BaseState) OnEnter()              {}
func (BaseState) OnExit()               {}
func (BaseState) HandleInput(in *Input) {}
func (BaseState) Update(dt float64)     {}
func (BaseState) Render(r *Renderer)    {}

type stackEntry struct {
	name  string
	state GameState
}

// StateManager is a layered state machine: a registry of named states plus
// a stack of active ones. The top of the stack receives HandleInput,
// Update, and Render; everything beneath it is inert until revealed again.
//
// All transition failure modes are soft. Pushing an unregistered name or
// popping an empty stack logs a diagnostic and does nothing.
type StateManager struct {
	states  map[string]GameState
	stack   []stackEntry
	pending string
	change  bool
	log     *zap.Logger
}

// NewStateManager creates an empty state manager. A nil logger disables
// diagnostics.
func NewStateManager(log *zap.Logger) *StateManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateManager{
		states: make(map[string]GameState),
		log:    log,
	}
}

// AddState registers st under name. Re-registering a name replaces the
// previous state; if the old instance is on the stack it stays there until
// popped.
func (sm *StateManager) AddState(name string, st GameState) {
	if _, ok := sm.states[name]; ok {
		sm.log.Debug("replacing registered state", zap.String("state", name))
	}
	sm.states[name] = st
}

// PushState activates the registered state name on top of the stack and
// calls its OnEnter. The previous top is paused in place: it gets no
// OnExit and keeps all its entities and components untouched.
func (sm *StateManager) PushState(name string) {
	st, ok := sm.states[name]
	if !ok {
		sm.log.Warn("push of unregistered state ignored", zap.String("state", name))
		return
	}
	sm.stack = append(sm.stack, stackEntry{name: name, state: st})
	st.OnEnter()
}

// PopState removes the top state and calls its OnExit. The newly revealed
// state resumes without OnEnter being re-invoked. Popping an empty stack
// is a no-op.
func (sm *StateManager) PopState() {
	n := len(sm.stack)
	if n == 0 {
		sm.log.Warn("pop on empty state stack ignored")
		return
	}
	top := sm.stack[n-1]
	sm.stack = sm.stack[:n-1]
	top.state.OnExit()
}

// ChangeState records a deferred request to replace the current top with
// the registered state name. The request takes effect at the start of the
// next Update: the current top (and only the top; states paused beneath it
// survive) is popped with OnExit, then the target is pushed with OnEnter.
//
// The deferral lets a state request its own replacement from within its
// Update or HandleInput without the stack mutating under it mid-frame.
// A second ChangeState before the next Update replaces the pending target.
func (sm *StateManager) ChangeState(name string) {
	if _, ok := sm.states[name]; !ok {
		sm.log.Warn("change to unregistered state ignored", zap.String("state", name))
		return
	}
	sm.pending = name
	sm.change = true
}

// applyPendingChange performs a deferred ChangeState, if one is recorded.
func (sm *StateManager) applyPendingChange() {
	if !sm.change {
		return
	}
	target := sm.pending
	sm.change = false
	sm.pending = ""
	if len(sm.stack) > 0 {
		sm.PopState()
	}
	sm.PushState(target)
}

// Current returns the state on top of the stack, or nil when empty.
func (sm *StateManager) Current() GameState {
	if n := len(sm.stack); n > 0 {
		return sm.stack[n-1].state
	}
	return nil
}

// CurrentName returns the registered name of the top state, or "" when the
// stack is empty.
func (sm *StateManager) CurrentName() string {
	if n := len(sm.stack); n > 0 {
		return sm.stack[n-1].name
	}
	return ""
}

// Depth returns the number of states on the stack.
func (sm *StateManager) Depth() int {
	return len(sm.stack)
}

// Update applies any deferred state change, then ticks the top state.
func (sm *StateManager) Update(dt float64) {
	sm.applyPendingChange()
	if st := sm.Current(); st != nil {
		st.Update(dt)
	}
}

// Render draws the top state. States beneath the top are not drawn.
func (sm *StateManager) Render(r *Renderer) {
	if st := sm.Current(); st != nil {
		st.Render(r)
	}
}

// HandleInput forwards input to the top state.
func (sm *StateManager) HandleInput(in *Input) {
	if st := sm.Current(); st != nil {
		st.HandleInput(in)
	}
}
