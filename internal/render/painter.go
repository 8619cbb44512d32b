//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"landgrow/internal/core"
)

// GridPainter uploads terrain grids into a reusable image. The backing
// image tracks the grid dimensions, so a single painter can display every
// stage of a growing pipeline.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter; the image is sized on first Blit.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// Blit uploads the grid's cells and draws them into dst scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, land, ocean color.Color, scale float64) {
	if g == nil || scale <= 0 {
		return
	}
	if gp.img == nil || gp.w != g.W || gp.h != g.H {
		gp.w, gp.h = g.W, g.H
		gp.img = ebiten.NewImage(g.W, g.H)
		gp.buf = make([]byte, 4*g.W*g.H)
	}
	fillBinaryRGBA(gp.buf, g.Cells(), land, ocean)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the last uploaded grid.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
