package automaton

import (
	"errors"
	"fmt"
	"sync"

	"landgrow/internal/core"
	"landgrow/internal/rules"
)

// ErrNoStream reports a stochastic rule invoked without a draw source.
var ErrNoStream = errors.New("stochastic rule requires a random stream")

// Stepper applies rule passes over a grid. Workers above one split the
// output rows across goroutines. Every pass reads only the immutable input
// grid, and stochastic draws are materialized per cell before any row is
// evaluated, so the parallel result is bit-identical to the serial one.
type Stepper struct {
	Workers int
}

// Step applies rule once and returns a freshly allocated grid of the same
// dimensions. The input grid is never written. For stochastic rules the
// stream advances by exactly W*H draws, consumed in row-major cell order;
// deterministic rules leave the stream untouched.
func (s Stepper) Step(g *core.Grid, rule rules.Rule, stream *core.Stream) (*core.Grid, error) {
	if rule == nil {
		return nil, errors.New("step requires a rule")
	}

	var draws []float64
	if rule.Stochastic() {
		if stream == nil {
			return nil, fmt.Errorf("rule %q: %w", rule.Name(), ErrNoStream)
		}
		draws = make([]float64, g.W*g.H)
		stream.Fill(draws)
	}

	out := core.NewGrid(g.W, g.H)
	workers := s.Workers
	if workers > g.H {
		workers = g.H
	}
	if workers < 2 {
		stepRows(g, out, rule, draws, 0, g.H)
		return out, nil
	}

	rowsPer := (g.H + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < g.H; start += rowsPer {
		end := start + rowsPer
		if end > g.H {
			end = g.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			stepRows(g, out, rule, draws, y0, y1)
		}(start, end)
	}
	wg.Wait()
	return out, nil
}

// Iterate applies rule n times, feeding each pass the previous result.
func (s Stepper) Iterate(g *core.Grid, rule rules.Rule, stream *core.Stream, n int) (*core.Grid, error) {
	if n < 0 {
		return nil, fmt.Errorf("iteration count must be non-negative, got %d", n)
	}
	cur := g
	for i := 0; i < n; i++ {
		next, err := s.Step(cur, rule, stream)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if cur == g {
		return g.Clone(), nil
	}
	return cur, nil
}

func stepRows(g, out *core.Grid, rule rules.Rule, draws []float64, y0, y1 int) {
	cells := out.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			draw := 0.0
			if draws != nil {
				draw = draws[idx]
			}
			cells[idx] = rule.Apply(g.At(x, y), Neighbors(g, x, y), draw)
		}
	}
}
