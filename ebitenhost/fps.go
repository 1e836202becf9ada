package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 500 * time.Millisecond

// fpsOverlay caches the FPS/TPS readout and refreshes it every fpsRefresh
// of simulated time.
type fpsOverlay struct {
	img     *ebiten.Image
	since   time.Duration
	text    string
	pending bool
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{pending: true}
}

func (o *fpsOverlay) update(dt time.Duration) {
	o.since += dt
	if o.since < fpsRefresh {
		return
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	o.pending = true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0".
		o.img = ebiten.NewImage(100, 32)
	}
	if o.pending {
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
		o.pending = false
	}
	screen.DrawImage(o.img, nil)
}
