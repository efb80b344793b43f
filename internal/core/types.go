package core

import "sort"

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Sim defines the contract between a simulation and the front-end.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	Grid() *Grid
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
