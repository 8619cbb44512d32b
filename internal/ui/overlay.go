//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"n / p   next / previous stage",
	"space   auto-play stages",
	"r       re-run current seed",
	"s       reseed from the clock",
	"h       toggle this help",
	"q/esc   quit",
}

// Overlay draws the key reference panel on demand.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the panel below the caption bar. Hidden overlays draw
// nothing.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}

	const lineHeight = 14
	panelW := 232
	panelH := hudPadding*2 + lineHeight*len(helpLines)
	top := hudHeight + hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.GeoM.Translate(hudPadding, float64(top))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 8, G: 10, B: 14, A: 220})
	screen.DrawImage(o.pixel, op)

	y := top + hudPadding + 10
	for _, line := range helpLines {
		text.Draw(screen, line, basicfont.Face7x13, hudPadding*2, y,
			color.RGBA{R: 200, G: 203, B: 210, A: 255})
		y += lineHeight
	}
}
