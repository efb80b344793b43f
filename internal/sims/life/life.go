package life

import (
	"mad-life/internal/core"

	"golang.org/x/sync/errgroup"
)

// World runs Conway's Game of Life on a hard-edged grid centred on the origin.
type World struct {
	cfg   Config
	grid  *core.Grid
	dash  Dashboard
	phase Phase
}

// New returns a world in the seeding phase. Call Reset or Populate before
// stepping.
func New(cfg Config) *World {
	return &World{cfg: cfg, grid: core.NewGrid(cfg.Half)}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions in cells.
func (w *World) Size() core.Size {
	side := w.grid.Side()
	return core.Size{W: side, H: side}
}

// Grid exposes the cell arena for reading.
func (w *World) Grid() *core.Grid { return w.grid }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Dashboard returns a copy of the round and survival counters.
func (w *World) Dashboard() Dashboard { return w.dash }

// Phase reports the lifecycle stage.
func (w *World) Phase() Phase { return w.phase }

// Reset validates the configuration and seeds the grid. A zero seed falls
// back to the configured one.
func (w *World) Reset(seed int64) error {
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	if seed == 0 {
		seed = w.cfg.Seed
	}
	alive, err := Seed(core.NewRNG(seed), w.cfg.SeedCount, w.cfg.Domain())
	if err != nil {
		return err
	}
	w.Populate(alive)
	return nil
}

// Populate replaces the current generation with alive, zeroes the dashboard
// and moves the world into the stepping phase. Coordinates outside the grid
// are dropped.
func (w *World) Populate(alive LiveSet) {
	w.grid.Clear()
	for c := range alive {
		w.grid.Set(c, core.Alive)
	}
	w.dash = Dashboard{}
	w.phase = PhaseStepping
}

// LiveSet returns the coordinates of every live cell in the current generation.
func (w *World) LiveSet() LiveSet {
	out := LiveSet{}
	for i, s := range w.grid.Cells() {
		if s == core.Alive {
			out[w.grid.Coord(i)] = struct{}{}
		}
	}
	return out
}

// Step advances the world by one generation. A generation with no live cells
// is terminal: the world becomes extinct and the counters freeze.
func (w *World) Step() {
	if w.phase != PhaseStepping {
		return
	}
	alive := w.LiveSet()
	if len(alive) == 0 {
		w.phase = PhaseExtinct
		return
	}

	w.apply(alive)

	w.dash.Round++
	w.dash.Survival = w.grid.CountAlive()
}

// apply evaluates every cell against the snapshot in alive. Row bands run
// concurrently and each writes only its own cells; Wait is the barrier before
// the census.
func (w *World) apply(alive LiveSet) {
	cells := w.grid.Cells()
	side := w.grid.Side()
	bands := w.cfg.Workers
	if bands <= 0 {
		bands = 1
	}
	if bands > side {
		bands = side
	}
	rows := (side + bands - 1) / bands

	var eg errgroup.Group
	for start := 0; start < side; start += rows {
		lo, hi := start*side, min(start+rows, side)*side
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				c := w.grid.Coord(i)
				cells[i] = Next(cells[i], AliveNeighborCount(w.grid, c, alive))
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// NeighborCounts returns the live-neighbour count of every cell in the
// current generation, in grid index order.
func (w *World) NeighborCounts() []uint8 {
	alive := w.LiveSet()
	out := make([]uint8, w.grid.Len())
	for i := range out {
		out[i] = uint8(AliveNeighborCount(w.grid, w.grid.Coord(i), alive))
	}
	return out
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
