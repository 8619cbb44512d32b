// Package rules defines the cell transition tables applied by the terrain
// automaton. Every rule maps a cell's current state plus its Moore
// neighborhood land count to the cell's next state.
package rules

import "sort"

// Rule is the contract a transition table must implement. Apply receives the
// cell value, the number of land neighbors in [0, 8], and one uniform draw
// in [0, 1). Deterministic rules ignore the draw; stochastic rules must
// consume exactly the draw they are handed, never a generator of their own.
type Rule interface {
	Name() string
	Stochastic() bool
	Apply(cell uint8, neighbors int, draw float64) uint8
}

var registry = map[string]Rule{}

// Register adds a rule under its name.
func Register(r Rule) {
	if r == nil || r.Name() == "" {
		return
	}
	registry[r.Name()] = r
}

// ByName looks up a registered rule.
func ByName(name string) (Rule, bool) {
	r, ok := registry[name]
	return r, ok
}

// Names returns the registered rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
