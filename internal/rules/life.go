package rules

// GameOfLife applies Conway's rules: live cells survive with two or three
// live neighbors, dead cells come alive with exactly three.
type GameOfLife struct{}

// Name identifies the rule.
func (GameOfLife) Name() string { return "life" }

// Stochastic reports that the rule needs no random draws.
func (GameOfLife) Stochastic() bool { return false }

// Apply advances a single cell by the Conway transition table.
func (GameOfLife) Apply(cell uint8, neighbors int, _ float64) uint8 {
	if cell == 1 {
		if neighbors == 2 || neighbors == 3 {
			return 1
		}
		return 0
	}
	if neighbors == 3 {
		return 1
	}
	return 0
}

func init() { Register(GameOfLife{}) }
