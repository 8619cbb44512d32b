package noise

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Perlin samples classic Perlin noise.
type Perlin struct {
	p    *perlin.Perlin
	seed int64
}

// NewPerlin constructs a Perlin source for the seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		p:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		seed: seed,
	}
}

// At samples the field at (x, y).
func (p *Perlin) At(x, y float64) float64 { return p.p.Noise2D(x, y) }

// Seed returns the seed the source was built with.
func (p *Perlin) Seed() int64 { return p.seed }
