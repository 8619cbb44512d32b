package rules

// BriansBrain is the binary reduction of Brian's Brain used for aggressive
// terrain churn: land always dies, and ocean flips to land only under heavy
// neighbor pressure (six or more land neighbors).
type BriansBrain struct{}

// Name identifies the rule.
func (BriansBrain) Name() string { return "briansbrain" }

// Stochastic reports that the rule needs no random draws.
func (BriansBrain) Stochastic() bool { return false }

// Apply advances a single cell.
func (BriansBrain) Apply(cell uint8, neighbors int, _ float64) uint8 {
	if cell == 1 {
		return 0
	}
	if neighbors >= 6 {
		return 1
	}
	return 0
}

func init() { Register(BriansBrain{}) }
