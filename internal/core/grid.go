package core

// State is the value held by a single cell.
type State uint8

const (
	Dead State = iota
	Alive
)

// String returns a readable name for the state.
func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell. Both axes are signed and centred on the origin.
type Coord struct {
	X, Y int
}

// Neighbors returns the eight Moore neighbours of c without bounds checks.
func (c Coord) Neighbors() [8]Coord {
	return [8]Coord{
		{c.X - 1, c.Y - 1},
		{c.X - 1, c.Y},
		{c.X - 1, c.Y + 1},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y + 1},
	}
}

// Grid stores one State per coordinate in the square range [-Half, Half) on
// both axes, in row-major order starting at (-Half, -Half).
type Grid struct {
	Half int
	side int
	data []State
}

// NewGrid allocates a grid spanning [-half, half) on each axis.
func NewGrid(half int) *Grid {
	if half <= 0 {
		half = 1
	}
	side := 2 * half
	return &Grid{Half: half, side: side, data: make([]State, side*side)}
}

// Side returns the number of cells along one axis.
func (g *Grid) Side() int { return g.side }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice in index order.
func (g *Grid) Cells() []State { return g.data }

// InBounds reports whether c lies inside the grid. There is no wrapping.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= -g.Half && c.X < g.Half && c.Y >= -g.Half && c.Y < g.Half
}

// Index returns the linear slice index for c. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return (c.Y+g.Half)*g.side + (c.X + g.Half)
}

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) Coord {
	return Coord{X: i%g.side - g.Half, Y: i/g.side - g.Half}
}

// At returns the state of c, or Dead when c is out of bounds.
func (g *Grid) At(c Coord) State {
	if !g.InBounds(c) {
		return Dead
	}
	return g.data[g.Index(c)]
}

// Set changes the state of a single cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, s State) {
	if !g.InBounds(c) {
		return
	}
	g.data[g.Index(c)] = s
}

// Each calls fn for every cell in index order.
func (g *Grid) Each(fn func(c Coord, s State)) {
	for i, s := range g.data {
		fn(g.Coord(i), s)
	}
}

// CountAlive returns the number of cells whose state is Alive.
func (g *Grid) CountAlive() int {
	n := 0
	for _, s := range g.data {
		if s == Alive {
			n++
		}
	}
	return n
}

// Clear sets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
