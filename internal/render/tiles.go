package render

import "mad-life/internal/core"

// Tiles lays out a square grid as size×size tiles separated by gap pixels,
// with the (-Half, -Half) cell at the top-left of the canvas.
type Tiles struct {
	Half int
	Size float64
	Gap  float64
}

// Pitch is the distance between the origins of adjacent tiles.
func (t Tiles) Pitch() float64 { return t.Size + t.Gap }

// Origin returns the top-left canvas position of the tile for c.
func (t Tiles) Origin(c core.Coord) (x, y float64) {
	px, py := core.Position(c, t.Size, t.Gap)
	shift := float64(t.Half) * t.Pitch()
	return px + shift, py + shift
}

// Extent returns the canvas size needed to show every tile.
func (t Tiles) Extent() (w, h int) {
	side := 2 * t.Half
	if side <= 0 {
		return 0, 0
	}
	span := float64(side)*t.Pitch() - t.Gap
	if span < 0 {
		span = 0
	}
	return int(span + 0.5), int(span + 0.5)
}

// CellAt maps a canvas position back to a cell. Points in a gap or outside
// the canvas report false.
func (t Tiles) CellAt(x, y float64) (core.Coord, bool) {
	pitch := t.Pitch()
	if pitch <= 0 || x < 0 || y < 0 {
		return core.Coord{}, false
	}
	ix, iy := int(x/pitch), int(y/pitch)
	if ix >= 2*t.Half || iy >= 2*t.Half {
		return core.Coord{}, false
	}
	if x-float64(ix)*pitch >= t.Size || y-float64(iy)*pitch >= t.Size {
		return core.Coord{}, false
	}
	return core.Coord{X: ix - t.Half, Y: iy - t.Half}, true
}
