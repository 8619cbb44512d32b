//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"landgrow/internal/core"
	"landgrow/internal/pipeline"
	"landgrow/internal/render"
	"landgrow/internal/ui"
)

// Game pages through the stage history of a terrain pipeline run. The
// window is laid out for the final stage; earlier, smaller stages draw
// magnified so every snapshot fills the same screen.
type Game struct {
	cfg     pipeline.Config
	history []pipeline.Snapshot
	index   int

	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep

	landColor  color.Color
	oceanColor color.Color

	windowW int
	windowH int
	playing bool
}

// New runs the pipeline once and builds a viewer over its stage history.
func New(cfg pipeline.Config, scale int) (*Game, error) {
	if scale < 1 {
		scale = 1
	}
	cfg.KeepHistory = true

	g := &Game{
		cfg:        cfg,
		painter:    render.NewGridPainter(),
		hud:        ui.NewHUD(),
		overlay:    ui.NewOverlay(),
		ticker:     core.NewFixedStep(4),
		landColor:  color.RGBA{R: 96, G: 160, B: 96, A: 255},
		oceanColor: color.RGBA{R: 24, G: 48, B: 96, A: 255},
	}
	if err := g.generate(); err != nil {
		return nil, err
	}

	final := g.history[len(g.history)-1].Event
	g.windowW = final.Width * scale
	g.windowH = final.Height * scale
	return g, nil
}

// Reseed re-runs the pipeline with a new seed and rewinds to the first
// stage.
func (g *Game) Reseed(seed int64) error {
	g.cfg.Seed = seed
	if err := g.generate(); err != nil {
		return err
	}
	g.index = 0
	return nil
}

func (g *Game) generate() error {
	p, err := pipeline.New(g.cfg)
	if err != nil {
		return err
	}
	if _, err := p.Run(); err != nil {
		return err
	}
	g.history = p.History()
	g.index = len(g.history) - 1
	return nil
}

// Update handles input and advances auto-play.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.playing = false
		g.move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.playing = false
		g.move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		if g.playing {
			if g.index == len(g.history)-1 {
				g.index = 0
			}
			g.ticker.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reseed(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reseed(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.playing && g.ticker.ShouldStep() {
		if g.index < len(g.history)-1 {
			g.index++
		} else {
			g.playing = false
		}
	}
	return nil
}

func (g *Game) move(delta int) {
	g.index += delta
	if g.index < 0 {
		g.index = 0
	}
	if g.index > len(g.history)-1 {
		g.index = len(g.history) - 1
	}
}

// Draw renders the selected stage snapshot magnified to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	if len(g.history) == 0 {
		return
	}
	snap := g.history[g.index]
	scale := float64(g.windowW) / float64(snap.Grid.W)
	g.painter.Blit(screen, snap.Grid, g.landColor, g.oceanColor, scale)
	g.hud.Draw(screen, g.cfg.Seed, snap.Event, g.playing)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowW, g.windowH
}
