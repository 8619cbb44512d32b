package noise

const (
	fractalOctaves     = 4
	fractalPersistence = 0.5
	fractalLacunarity  = 2
)

// Fractal layers octaves of a base source, scaling amplitude by persistence
// and frequency by lacunarity per octave. Amplitudes are normalized so the
// summed field keeps the base source's range.
type Fractal struct {
	base        Source
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewFractal wraps base in octave summation. Non-positive arguments fall
// back to one octave, persistence 0.5 and lacunarity 2.
func NewFractal(base Source, octaves int, persistence, lacunarity float64) *Fractal {
	if octaves < 1 {
		octaves = 1
	}
	if persistence <= 0 {
		persistence = 0.5
	}
	if lacunarity <= 0 {
		lacunarity = 2
	}
	return &Fractal{base: base, octaves: octaves, persistence: persistence, lacunarity: lacunarity}
}

// At samples the layered field at (x, y).
func (f *Fractal) At(x, y float64) float64 {
	sum := 0.0
	norm := 0.0
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < f.octaves; i++ {
		sum += f.base.At(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	return sum / norm
}

// Seed returns the base source's seed.
func (f *Fractal) Seed() int64 { return f.base.Seed() }
