package life

import (
	"fmt"

	"mad-life/internal/core"
)

// Domain is a square sampling range [Min, Max) on both axes.
type Domain struct {
	Min, Max int
}

// Size returns the number of distinct coordinates in the domain.
func (d Domain) Size() int {
	side := d.Max - d.Min
	if side <= 0 {
		return 0
	}
	return side * side
}

// Contains reports whether c lies inside the domain.
func (d Domain) Contains(c core.Coord) bool {
	return c.X >= d.Min && c.X < d.Max && c.Y >= d.Min && c.Y < d.Max
}

// LiveSet is the set of coordinates whose cell is Alive.
type LiveSet map[core.Coord]struct{}

// Contains reports whether c is in the set.
func (s LiveSet) Contains(c core.Coord) bool {
	_, ok := s[c]
	return ok
}

// Seed draws count distinct coordinates uniformly from dom by rejection
// sampling. Duplicate draws are absorbed and do not count. The count must fit
// in the domain, otherwise the loop could never finish.
func Seed(rng *core.RNG, count int, dom Domain) (LiveSet, error) {
	if count < 0 || count > dom.Size() {
		return nil, fmt.Errorf("%w: %d cells requested, domain holds %d", ErrSeedCount, count, dom.Size())
	}
	out := make(LiveSet, count)
	for len(out) < count {
		c := core.Coord{
			X: rng.IntRange(dom.Min, dom.Max),
			Y: rng.IntRange(dom.Min, dom.Max),
		}
		out[c] = struct{}{}
	}
	return out, nil
}
