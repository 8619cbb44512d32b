// Package export writes generated heightmaps to disk.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"landgrow/internal/core"
)

// WriteGrid streams the grid as whitespace-separated 0/1 values, one grid
// row per line.
func WriteGrid(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('0' + g.At(x, y)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Filename returns the text artifact name for a seed.
func Filename(seed int64) string {
	return fmt.Sprintf("heightmap_%d.txt", seed)
}

// WriteFile writes the text artifact into dir and returns its path. A
// partially written file is removed on error.
func WriteFile(dir string, seed int64, g *core.Grid) (string, error) {
	return writeArtifact(filepath.Join(dir, Filename(seed)), g, WriteGrid)
}

func writeArtifact(path string, g *core.Grid, write func(io.Writer, *core.Grid) error) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := write(f, g); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
