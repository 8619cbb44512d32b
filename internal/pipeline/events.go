package pipeline

import (
	"fmt"
	"time"

	"landgrow/internal/core"
)

// StageEvent describes one completed stage. Events fire in stage order,
// after the stage's grid is final.
type StageEvent struct {
	// Index is the zero-based stage position; Total the stage count.
	Index int
	Total int

	// Kind tells which stage kind completed. Rule, Factor and Iterations
	// are filled only for the kinds they apply to.
	Kind       StageKind
	Rule       string
	Factor     int
	Iterations int

	// Width and Height are the grid dimensions after the stage. Resolution
	// is the cumulative zoom multiplier relative to the seed grid.
	Width      int
	Height     int
	Resolution int

	// Land counts the land cells after the stage.
	Land int

	// Elapsed is the wall-clock cost of the stage.
	Elapsed time.Duration
}

// Label renders a short tag for progress lines.
func (e StageEvent) Label() string {
	switch e.Kind {
	case KindSeed:
		return "seed"
	case KindNoiseSeed:
		return "noiseseed"
	case KindZoom:
		return fmt.Sprintf("zoom x%d", e.Factor)
	case KindAutomaton:
		if e.Iterations != 1 {
			return fmt.Sprintf("%s x%d", e.Rule, e.Iterations)
		}
		return e.Rule
	}
	return "unknown"
}

// Snapshot pairs a stage event with a copy of the grid it produced.
type Snapshot struct {
	Event StageEvent
	Grid  *core.Grid
}
