// Package automaton advances terrain grids one rule pass at a time.
package automaton

import "landgrow/internal/core"

// Neighbors counts the land cells in the Moore neighborhood of (x, y).
// Neighborhoods clip at the grid edges, so interior cells see up to eight
// neighbors, edge cells five and corner cells three. Only cells holding
// exactly 1 count as land.
func Neighbors(g *core.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.In(nx, ny) {
				continue
			}
			if g.At(nx, ny) == 1 {
				count++
			}
		}
	}
	return count
}
