// Package noise provides the deterministic noise fields that can seed a
// terrain pipeline in place of uniform random fill.
package noise

import "fmt"

// Source is a deterministic 2D noise field. At returns a value in roughly
// [-1, 1]; equal (seed, x, y) always yields the same value.
type Source interface {
	At(x, y float64) float64
	Seed() int64
}

// New constructs a named noise source. Known kinds are "perlin", "simplex"
// and "fractal", the last stacking octaves over a perlin base.
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case "perlin":
		return NewPerlin(seed), nil
	case "simplex":
		return NewSimplex(seed), nil
	case "fractal":
		return NewFractal(NewPerlin(seed), fractalOctaves, fractalPersistence, fractalLacunarity), nil
	}
	return nil, fmt.Errorf("unknown noise kind %q", kind)
}
