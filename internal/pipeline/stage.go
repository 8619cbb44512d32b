package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"landgrow/internal/rules"
)

// StageKind discriminates the stage descriptors a pipeline executes.
type StageKind uint8

const (
	// KindSeed fills the start grid from uniform draws.
	KindSeed StageKind = iota
	// KindNoiseSeed thresholds a noise field into the start grid.
	KindNoiseSeed
	// KindZoom upsamples the grid by block replication.
	KindZoom
	// KindAutomaton applies a rule for a number of passes.
	KindAutomaton
)

// String names the kind for errors and progress output.
func (k StageKind) String() string {
	switch k {
	case KindSeed:
		return "seed"
	case KindNoiseSeed:
		return "noiseseed"
	case KindZoom:
		return "zoom"
	case KindAutomaton:
		return "automaton"
	}
	return "unknown"
}

// Field is the noise contract accepted for noise seeding. Every
// noise.Source satisfies it.
type Field interface {
	At(x, y float64) float64
}

// Stage describes one pipeline step. Build stages with the constructors;
// the discriminated fields only apply to their kind.
type Stage struct {
	Kind StageKind

	// Factor applies to zoom stages.
	Factor int

	// Rule and Iterations apply to automaton stages.
	Rule       rules.Rule
	Iterations int

	// Field, Scale and Threshold apply to noise seeding.
	Field     Field
	Scale     float64
	Threshold float64
}

// Seed returns the uniform seeding stage.
func Seed() Stage { return Stage{Kind: KindSeed} }

// NoiseSeed returns a seeding stage that thresholds field at the given
// sample scale: cells whose sample exceeds threshold start as land.
func NoiseSeed(field Field, scale, threshold float64) Stage {
	return Stage{Kind: KindNoiseSeed, Field: field, Scale: scale, Threshold: threshold}
}

// Zoom returns an upsampling stage.
func Zoom(factor int) Stage { return Stage{Kind: KindZoom, Factor: factor} }

// Automaton returns a rule application stage.
func Automaton(rule rules.Rule, iterations int) Stage {
	return Stage{Kind: KindAutomaton, Rule: rule, Iterations: iterations}
}

// DefaultStages reproduces the reference growth schedule: the seed grid
// grows sixteenfold through interleaved zooms and island passes, with one
// erosion pass at quarter resolution.
func DefaultStages() []Stage {
	return []Stage{
		Seed(),
		Zoom(2),
		Automaton(rules.AddIsland{}, 1),
		Zoom(2),
		Automaton(rules.AddIsland{}, 3),
		Automaton(rules.RemoveOcean{}, 1),
		Zoom(2),
		Zoom(2),
		Automaton(rules.AddIsland{}, 1),
	}
}

// ParseStages builds a stage list from a compact textual plan. Items are
// comma-separated; each names "seed", "zoom" or a registered rule, with an
// optional ":count" suffix giving the zoom factor or the pass count. Bare
// "zoom" doubles, a bare rule name runs one pass, so the reference schedule
// reads "seed,zoom:2,addisland,zoom:2,addisland:3,removeocean,zoom:2,
// zoom:2,addisland". Rule names resolve through the registry; count bounds
// are left to Config.Validate.
func ParseStages(plan string) ([]Stage, error) {
	var stages []Stage
	for _, item := range strings.Split(plan, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name := item
		count := 1
		hasCount := false
		if i := strings.IndexByte(item, ':'); i >= 0 {
			var err error
			name = item[:i]
			count, err = strconv.Atoi(item[i+1:])
			if err != nil {
				return nil, fmt.Errorf("stage %q: count %q is not a number", item, item[i+1:])
			}
			hasCount = true
		}
		switch name {
		case "seed":
			if hasCount {
				return nil, fmt.Errorf("stage %q: seed takes no count", item)
			}
			stages = append(stages, Seed())
		case "noiseseed":
			return nil, fmt.Errorf("stage %q: noise seeding needs a field and cannot be named in a plan", item)
		case "zoom":
			if !hasCount {
				count = 2
			}
			stages = append(stages, Zoom(count))
		default:
			rule, ok := rules.ByName(name)
			if !ok {
				return nil, fmt.Errorf("stage %q: unknown rule, have %s", item, strings.Join(rules.Names(), ", "))
			}
			stages = append(stages, Automaton(rule, count))
		}
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("stage plan is empty")
	}
	return stages, nil
}
