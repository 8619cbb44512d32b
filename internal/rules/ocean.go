package rules

// RemoveOcean erodes the speckle left behind by the stochastic passes: land
// survives only with at least two land neighbors, and ocean never rises.
// Isolated cells and one-wide filaments sink while connected landmasses keep
// their shape.
type RemoveOcean struct{}

// Name identifies the rule.
func (RemoveOcean) Name() string { return "removeocean" }

// Stochastic reports that the rule needs no random draws.
func (RemoveOcean) Stochastic() bool { return false }

// Apply advances a single cell.
func (RemoveOcean) Apply(cell uint8, neighbors int, _ float64) uint8 {
	if cell == 1 && neighbors >= 2 {
		return 1
	}
	return 0
}

func init() { Register(RemoveOcean{}) }
