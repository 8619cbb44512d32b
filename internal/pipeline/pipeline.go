// Package pipeline grows seeded terrain heightmaps through an ordered plan
// of zoom and cellular automaton stages.
package pipeline

import (
	"fmt"
	"time"

	"landgrow/internal/automaton"
	"landgrow/internal/core"
)

// Pipeline executes a validated stage plan. Run may be invoked repeatedly;
// every run restarts from the configured seed and reproduces the same grid.
type Pipeline struct {
	cfg     Config
	stepper automaton.Stepper
	history []Snapshot
}

// New validates cfg and builds a pipeline for it.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	return &Pipeline{cfg: cfg, stepper: automaton.Stepper{Workers: cfg.Workers}}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Run executes all stages in order and returns the final grid.
func (p *Pipeline) Run() (*core.Grid, error) {
	stream := core.NewStream(p.cfg.Seed)
	p.history = p.history[:0]

	var grid *core.Grid
	var err error
	resolution := 1
	total := len(p.cfg.Stages)

	for i, st := range p.cfg.Stages {
		start := time.Now()
		switch st.Kind {
		case KindSeed:
			grid = p.seedUniform(stream)
		case KindNoiseSeed:
			grid = p.seedNoise(st)
		case KindZoom:
			if grid, err = core.Zoom(grid, st.Factor); err == nil {
				resolution *= st.Factor
			}
		case KindAutomaton:
			grid, err = p.stepper.Iterate(grid, st.Rule, stream, st.Iterations)
		}
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, st.Kind, err)
		}

		ev := StageEvent{
			Index:      i,
			Total:      total,
			Kind:       st.Kind,
			Factor:     st.Factor,
			Iterations: st.Iterations,
			Width:      grid.W,
			Height:     grid.H,
			Resolution: resolution,
			Land:       grid.Count(1),
			Elapsed:    time.Since(start),
		}
		if st.Rule != nil {
			ev.Rule = st.Rule.Name()
		}
		if p.cfg.KeepHistory {
			p.history = append(p.history, Snapshot{Event: ev, Grid: grid.Clone()})
		}
		if p.cfg.OnStage != nil {
			p.cfg.OnStage(ev)
		}
	}
	return grid, nil
}

// History returns the per-stage snapshots of the most recent run. It stays
// empty unless KeepHistory is set.
func (p *Pipeline) History() []Snapshot { return p.history }

// seedUniform flips each cell to land with FillChance odds, consuming one
// draw per cell in row-major order.
func (p *Pipeline) seedUniform(stream *core.Stream) *core.Grid {
	g := core.NewGrid(p.cfg.StartWidth, p.cfg.StartHeight)
	cells := g.Cells()
	for i := range cells {
		if stream.Next() < p.cfg.FillChance {
			cells[i] = 1
		}
	}
	return g
}

// seedNoise classifies each cell by sampling the stage's field. No stream
// draws are consumed, so later stochastic stages see the same draw sequence
// regardless of the seeding kind.
func (p *Pipeline) seedNoise(st Stage) *core.Grid {
	g := core.NewGrid(p.cfg.StartWidth, p.cfg.StartHeight)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if st.Field.At(float64(x)*st.Scale, float64(y)*st.Scale) > st.Threshold {
				g.Set(x, y, 1)
			}
		}
	}
	return g
}
