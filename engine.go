package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunConfig configures the engine window and loop.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the fixed simulation rate in ticks per second. 0 means 60.
	TPS int
	// ClearColor fills the frame before the active state renders.
	ClearColor Color
	// ShowFPS overlays an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Logger receives engine diagnostics. nil disables logging.
	Logger *zap.Logger
}

// Engine owns the game loop, the state stack, and the facades over the
// platform substrate (renderer, input, audio). It implements [ebiten.Game];
// ebiten drives the tick rate and frame pacing.
type Engine struct {
	cfg    RunConfig
	log    *zap.Logger
	states *StateManager
	input  *Input
	render *Renderer
	audio  *AudioPlayer
	fps    fpsOverlay
	quit   bool
}

// NewEngine creates an engine and its collaborators from cfg.
func NewEngine(cfg RunConfig) *Engine {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		log:    log,
		states: NewStateManager(log),
		input:  NewInput(),
		render: NewRenderer(log),
		audio:  NewAudioPlayer(log),
	}
}

// States returns the engine's state stack.
func (e *Engine) States() *StateManager { return e.states }

// Input returns the engine's input facade.
func (e *Engine) Input() *Input { return e.input }

// Renderer returns the engine's drawing facade.
func (e *Engine) Renderer() *Renderer { return e.render }

// Audio returns the engine's audio facade.
func (e *Engine) Audio() *AudioPlayer { return e.audio }

// Logger returns the engine's logger. Never nil.
func (e *Engine) Logger() *zap.Logger { return e.log }

// Quit requests a stop. It takes effect at the top of the next tick, not
// mid-tick.
func (e *Engine) Quit() { e.quit = true }

// Update runs one fixed tick: input refresh, quit check, deferred state
// change, then HandleInput and Update on the active state. Implements
// [ebiten.Game].
func (e *Engine) Update() error {
	e.input.refresh()
	if e.quit || e.input.QuitRequested() {
		e.log.Info("quit requested, stopping loop")
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())
	e.states.HandleInput(e.input)
	e.states.Update(dt)
	return nil
}

// Draw clears the frame, renders the active state, and draws the FPS
// overlay if enabled. Implements [ebiten.Game].
func (e *Engine) Draw(screen *ebiten.Image) {
	e.render.begin(screen)
	e.render.Clear(e.cfg.ClearColor)
	e.states.Render(e.render)
	if e.cfg.ShowFPS {
		e.fps.draw(screen)
	}
}

// Layout reports the fixed logical screen size. Implements [ebiten.Game].
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}

// Run opens the window and blocks driving the loop until a state requests
// quit or the window closes. Audio and rendering failures never stop the
// loop; only an explicit quit (or a platform error from ebiten) does.
func (e *Engine) Run() error {
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetTPS(e.cfg.TPS)
	err := ebiten.RunGame(e)
	if err != nil {
		e.log.Error("game loop stopped", zap.Error(err))
	}
	return err
}
