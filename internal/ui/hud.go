//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"landgrow/internal/pipeline"
)

const (
	hudPadding  = 6
	hudBaseline = 15
	hudHeight   = 22
)

// HUD draws the caption bar naming the stage on display.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs the caption bar.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the caption strip along the top edge of the screen.
func (h *HUD) Draw(screen *ebiten.Image, seed int64, e pipeline.StageEvent, playing bool) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screen.Bounds().Dx()), hudHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 8, G: 10, B: 14, A: 200})
	screen.DrawImage(h.pixel, op)

	state := "paused"
	if playing {
		state = "playing"
	}
	caption := fmt.Sprintf("seed %d | stage %d/%d %s | %dx%d | land %d | %s",
		seed, e.Index+1, e.Total, e.Label(), e.Width, e.Height, e.Land, state)
	text.Draw(screen, caption, basicfont.Face7x13, hudPadding, hudBaseline,
		color.RGBA{R: 225, G: 228, B: 235, A: 255})
}
