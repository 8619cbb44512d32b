package rules

// AddIsland stochastically grows and erodes coastlines. With n land
// neighbors the land odds for a cell are (n+8)/24: isolated ocean still has
// a one-in-three chance to sprout land, fully surrounded land a two-in-three
// chance to hold. Land dies when the draw falls below the complement, ocean
// rises when the draw falls below the odds.
type AddIsland struct{}

// Name identifies the rule.
func (AddIsland) Name() string { return "addisland" }

// Stochastic reports that the rule consumes one draw per cell.
func (AddIsland) Stochastic() bool { return true }

// Apply advances a single cell using the provided draw.
func (AddIsland) Apply(cell uint8, neighbors int, draw float64) uint8 {
	odds := float64(neighbors+8) / 24
	if cell == 1 {
		if draw < 1-odds {
			return 0
		}
		return 1
	}
	if draw < odds {
		return 1
	}
	return 0
}

func init() { Register(AddIsland{}) }
