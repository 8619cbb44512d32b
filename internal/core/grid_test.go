package core

import (
	"slices"
	"testing"
)

func TestGridRowMajorLayout(t *testing.T) {
	g := NewGrid(5, 3)
	if g.W != 5 || g.H != 3 {
		t.Fatalf("dims = %dx%d, expected 5x3", g.W, g.H)
	}
	if len(g.Cells()) != 15 {
		t.Fatalf("backing slice has %d cells, expected 15", len(g.Cells()))
	}

	g.Set(3, 2, 1)
	if g.Index(3, 2) != 2*5+3 {
		t.Fatalf("Index(3,2) = %d, expected %d", g.Index(3, 2), 2*5+3)
	}
	if g.At(3, 2) != 1 {
		t.Fatal("At(3,2) should read back the value written by Set")
	}
	if g.Cells()[13] != 1 {
		t.Fatal("Set(3,2) should land at row-major index 13")
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(4, 4)
	cases := map[[2]int]bool{
		{0, 0}:   true,
		{3, 3}:   true,
		{-1, 0}:  false,
		{0, -1}:  false,
		{4, 0}:   false,
		{0, 4}:   false,
		{-1, -1}: false,
	}
	for xy, want := range cases {
		if got := g.In(xy[0], xy[1]); got != want {
			t.Fatalf("In(%d,%d) = %v, expected %v", xy[0], xy[1], got, want)
		}
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, 1)
	g.Set(2, 0, 1)

	c := g.Clone()
	if !slices.Equal(c.Cells(), g.Cells()) {
		t.Fatal("clone must start equal to the source")
	}

	g.Set(0, 0, 1)
	if c.At(0, 0) != 0 {
		t.Fatal("mutating the source leaked into the clone")
	}
	c.Set(2, 2, 1)
	if g.At(2, 2) != 0 {
		t.Fatal("mutating the clone leaked into the source")
	}
}

func TestGridCount(t *testing.T) {
	g := NewGrid(4, 2)
	g.Set(0, 0, 1)
	g.Set(3, 1, 1)
	g.Set(2, 1, 1)

	if got := g.Count(1); got != 3 {
		t.Fatalf("Count(1) = %d, expected 3", got)
	}
	if got := g.Count(0); got != 5 {
		t.Fatalf("Count(0) = %d, expected 5", got)
	}

	g.Clear()
	if got := g.Count(1); got != 0 {
		t.Fatalf("Count(1) after Clear = %d, expected 0", got)
	}
}

func TestNewGridClampsNonPositiveDims(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("dims = %dx%d, expected clamp to 1x1", g.W, g.H)
	}
}
