// Package ebitenhost runs sway animations inside an Ebitengine game loop.
//
// Ebitengine calls Update at a fixed tick rate, so the per-frame delta is
// derived from ebiten.TPS rather than measured wall time:
//
//	game := &ebitenhost.Game{
//		OnUpdate: func(dt time.Duration) error {
//			anim.Tick(dt, &sprite, 0, nil)
//			return nil
//		},
//		OnDraw: func(screen *ebiten.Image) { drawSprite(screen, sprite) },
//	}
//	log.Fatal(ebitenhost.Run(ebitenhost.RunConfig{Title: "demo", Width: 640, Height: 480}, game))
package ebitenhost

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sway"
)

const defaultTPS = 60

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ClearColor fills the screen before OnDraw. The zero value leaves the
	// screen as Ebitengine cleared it.
	ClearColor sway.Color
}

// Game adapts update and draw callbacks to ebiten.Game.
type Game struct {
	OnUpdate func(dt time.Duration) error
	OnDraw   func(screen *ebiten.Image)

	cfg RunConfig
	fps *fpsOverlay
}

// TickDelta is the simulated time between two Update calls at the current
// tick rate.
func TickDelta() time.Duration {
	return deltaForTPS(ebiten.TPS())
}

func deltaForTPS(tps int) time.Duration {
	if tps <= 0 {
		tps = defaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := TickDelta()
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.OnUpdate == nil {
		return nil
	}
	return g.OnUpdate(dt)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (sway.Color{}) {
		screen.Fill(RGBA(g.cfg.ClearColor))
	}
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game with a fixed logical screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width <= 0 || g.cfg.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run configures the window and blocks running game until the window is
// closed or OnUpdate returns an error. Returning ebiten.Termination from
// OnUpdate ends the loop without an error.
func Run(cfg RunConfig, game *Game) error {
	if game == nil {
		return errors.New("ebitenhost: nil game")
	}
	game.configure(cfg)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(game)
}

func (g *Game) configure(cfg RunConfig) {
	g.cfg = cfg
	g.fps = nil
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
}

// RGBA converts a sway color with components in [0, 1] to a premultiplied
// color.RGBA.
func RGBA(c sway.Color) color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
