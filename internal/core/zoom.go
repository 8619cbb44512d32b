package core

import "fmt"

// Zoom upsamples the grid by integer block replication: every source cell
// becomes a factor x factor block in the result. The source grid is left
// untouched. Factor 1 returns a fresh identical copy.
func Zoom(g *Grid, factor int) (*Grid, error) {
	if factor < 1 {
		return nil, fmt.Errorf("zoom factor must be at least 1, got %d", factor)
	}
	out := NewGrid(g.W*factor, g.H*factor)
	for y := 0; y < out.H; y++ {
		srcRow := (y / factor) * g.W
		dstRow := y * out.W
		for x := 0; x < out.W; x++ {
			out.data[dstRow+x] = g.data[srcRow+x/factor]
		}
	}
	return out, nil
}
