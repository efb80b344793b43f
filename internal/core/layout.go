package core

// Position returns the draw position of c: each axis scaled by size+gap.
func Position(c Coord, size, gap float64) (x, y float64) {
	pitch := size + gap
	return float64(c.X) * pitch, float64(c.Y) * pitch
}
