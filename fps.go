package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay renders an FPS/TPS readout in the top-left corner.
// The text is re-formatted every ~0.5 seconds to stay readable.
type fpsOverlay struct {
	text  string
	since float64
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	f.since += 1.0 / float64(ebiten.TPS())
	if f.text == "" || f.since >= 0.5 {
		f.since = 0
		f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	ebitenutil.DebugPrint(screen, f.text)
}
