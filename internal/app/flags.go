package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Seed    int64
	Scale   int
	Workers int
	Noise   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 1337, Scale: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell at final resolution")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel rows per automaton pass")
	fs.StringVar(&c.Noise, "noise", c.Noise, "seed from a noise field (perlin|simplex|fractal)")
}
