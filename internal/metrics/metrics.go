// Package metrics summarizes generated terrain grids.
package metrics

import "landgrow/internal/core"

// Summary aggregates landmass statistics for a grid.
type Summary struct {
	// Land and Ocean count the cells of each class.
	Land  int
	Ocean int

	// Coverage is the land fraction of the grid in [0, 1].
	Coverage float64

	// Islands counts the 4-connected landmasses; Largest is the cell count
	// of the biggest one. Diagonal contact does not join landmasses.
	Islands int
	Largest int
}

// Summarize scans the grid and computes its landmass statistics.
func Summarize(g *core.Grid) Summary {
	var s Summary
	cells := g.Cells()
	total := len(cells)
	for _, v := range cells {
		if v == 1 {
			s.Land++
		}
	}
	s.Ocean = total - s.Land
	if total > 0 {
		s.Coverage = float64(s.Land) / float64(total)
	}

	seen := make([]bool, total)
	stack := make([]int, 0, 64)
	for start := range cells {
		if seen[start] || cells[start] != 1 {
			continue
		}
		size := 0
		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			x, y := idx%g.W, idx/g.W
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if !g.In(nx, ny) {
					continue
				}
				j := g.Index(nx, ny)
				if !seen[j] && cells[j] == 1 {
					seen[j] = true
					stack = append(stack, j)
				}
			}
		}
		s.Islands++
		if size > s.Largest {
			s.Largest = size
		}
	}
	return s
}
