package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"landgrow/internal/core"
)

func sampleGrid() *core.Grid {
	g := core.NewGrid(3, 2)
	g.Set(1, 0, 1)
	g.Set(0, 1, 1)
	g.Set(2, 1, 1)
	return g
}

func TestWriteGridFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGrid(&buf, sampleGrid()); err != nil {
		t.Fatalf("WriteGrid returned error: %v", err)
	}
	if got, want := buf.String(), "0 1 0\n1 0 1\n"; got != want {
		t.Fatalf("artifact = %q, expected %q", got, want)
	}
}

func TestFilenames(t *testing.T) {
	cases := map[int64][2]string{
		0:   {"heightmap_0.txt", "heightmap_0.png"},
		7:   {"heightmap_7.txt", "heightmap_7.png"},
		-13: {"heightmap_-13.txt", "heightmap_-13.png"},
	}
	for seed, want := range cases {
		if got := Filename(seed); got != want[0] {
			t.Fatalf("Filename(%d) = %q, expected %q", seed, got, want[0])
		}
		if got := PNGFilename(seed); got != want[1] {
			t.Fatalf("PNGFilename(%d) = %q, expected %q", seed, got, want[1])
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, 99, sampleGrid())
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if want := filepath.Join(dir, "heightmap_99.txt"); path != want {
		t.Fatalf("artifact path = %q, expected %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact back: %v", err)
	}
	if got, want := string(data), "0 1 0\n1 0 1\n"; got != want {
		t.Fatalf("artifact contents = %q, expected %q", got, want)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, sampleGrid()); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding artifact: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Fatalf("image dims = %dx%d, expected 3x2", bounds.Dx(), bounds.Dy())
	}

	gray := func(x, y int) uint32 {
		r, _, _, _ := img.At(x, y).RGBA()
		return r >> 8
	}
	if gray(1, 0) != 255 || gray(0, 1) != 255 || gray(2, 1) != 255 {
		t.Fatal("land cells must render at full brightness")
	}
	if gray(0, 0) != 0 || gray(1, 1) != 0 {
		t.Fatal("ocean cells must render black")
	}
}

func TestWritePNGFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WritePNGFile(dir, -3, sampleGrid())
	if err != nil {
		t.Fatalf("WritePNGFile returned error: %v", err)
	}
	if want := filepath.Join(dir, "heightmap_-3.png"); path != want {
		t.Fatalf("artifact path = %q, expected %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening artifact: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("artifact is not a valid png: %v", err)
	}
}
