package noise

import "github.com/ojrac/opensimplex-go"

// Simplex samples OpenSimplex noise.
type Simplex struct {
	n    opensimplex.Noise
	seed int64
}

// NewSimplex constructs an OpenSimplex source for the seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed), seed: seed}
}

// At samples the field at (x, y).
func (s *Simplex) At(x, y float64) float64 { return s.n.Eval2(x, y) }

// Seed returns the seed the source was built with.
func (s *Simplex) Seed() int64 { return s.seed }
