package life

import "mad-life/internal/core"

// AliveNeighborCount counts the Moore neighbours of c that are inside g and
// present in alive. Candidates outside the grid are dropped before the
// liveness lookup, so corners see at most 3 neighbours and edges at most 5.
func AliveNeighborCount(g *core.Grid, c core.Coord, alive LiveSet) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if !g.InBounds(nb) {
			continue
		}
		if alive.Contains(nb) {
			n++
		}
	}
	return n
}

// Next applies the classic B3/S23 rule to a single cell.
func Next(s core.State, neighbors int) core.State {
	switch s {
	case core.Alive:
		if neighbors < 2 || neighbors > 3 {
			return core.Dead
		}
		return core.Alive
	default:
		if neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
}
