package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"landgrow/internal/core"
)

// WritePNG renders the grid as an 8-bit greyscale image, land at full
// brightness over black ocean, suitable for GIS import.
func WritePNG(w io.Writer, g *core.Grid) error {
	img := image.NewGray(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y) == 1 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return png.Encode(w, img)
}

// PNGFilename returns the image artifact name for a seed.
func PNGFilename(seed int64) string {
	return fmt.Sprintf("heightmap_%d.png", seed)
}

// WritePNGFile writes the image artifact into dir and returns its path.
func WritePNGFile(dir string, seed int64, g *core.Grid) (string, error) {
	return writeArtifact(filepath.Join(dir, PNGFilename(seed)), g, WritePNG)
}
