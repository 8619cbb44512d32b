package pipeline

import "fmt"

// Config controls a terrain pipeline run.
type Config struct {
	// Seed drives every random draw of the run. Equal seeds over equal
	// stages produce bit-identical heightmaps.
	Seed int64

	// StartWidth and StartHeight size the seed grid.
	StartWidth  int
	StartHeight int

	// FillChance is the per-cell land probability during uniform seeding.
	FillChance float64

	// Stages is the ordered execution plan. The first stage must seed the
	// grid and no later stage may seed again.
	Stages []Stage

	// Workers splits automaton passes across goroutines when above one.
	// The generated grid never depends on it.
	Workers int

	// KeepHistory retains a grid snapshot per stage for viewers and tests.
	KeepHistory bool

	// OnStage, when set, receives one event per completed stage.
	OnStage func(StageEvent)
}

// DefaultConfig returns the reference configuration: a 4x4 seed grid at one
// in ten land odds, grown by DefaultStages to 64x64.
func DefaultConfig() Config {
	return Config{
		StartWidth:  4,
		StartHeight: 4,
		FillChance:  0.1,
		Stages:      DefaultStages(),
	}
}

// Validate checks the configuration eagerly. Pipelines are never built from
// an invalid one, so stages cannot fail validation mid-run.
func (c Config) Validate() error {
	if c.StartWidth < 1 || c.StartHeight < 1 {
		return fmt.Errorf("start dimensions must be positive, got %dx%d", c.StartWidth, c.StartHeight)
	}
	if c.FillChance < 0 || c.FillChance > 1 {
		return fmt.Errorf("fill chance must lie in [0,1], got %v", c.FillChance)
	}
	if len(c.Stages) == 0 {
		return fmt.Errorf("pipeline needs at least one stage")
	}
	for i, st := range c.Stages {
		if err := validateStage(i, st); err != nil {
			return err
		}
	}
	return nil
}

func validateStage(i int, st Stage) error {
	seeding := st.Kind == KindSeed || st.Kind == KindNoiseSeed
	if i == 0 && !seeding {
		return fmt.Errorf("stage 0 must seed the grid, got %s", st.Kind)
	}
	if i > 0 && seeding {
		return fmt.Errorf("stage %d: grid is already seeded", i)
	}
	switch st.Kind {
	case KindSeed:
	case KindNoiseSeed:
		if st.Field == nil {
			return fmt.Errorf("stage %d: noise seeding requires a field", i)
		}
		if st.Scale <= 0 {
			return fmt.Errorf("stage %d: noise sample scale must be positive, got %v", i, st.Scale)
		}
	case KindZoom:
		if st.Factor < 1 {
			return fmt.Errorf("stage %d: zoom factor must be at least 1, got %d", i, st.Factor)
		}
	case KindAutomaton:
		if st.Rule == nil {
			return fmt.Errorf("stage %d: automaton stage requires a rule", i)
		}
		if st.Iterations < 1 {
			return fmt.Errorf("stage %d: iteration count must be at least 1, got %d", i, st.Iterations)
		}
	default:
		return fmt.Errorf("stage %d: unknown stage kind %d", i, st.Kind)
	}
	return nil
}
