//go:build ebiten

package render

import (
	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TilePainter draws one filled square per cell.
type TilePainter struct {
	tiles   Tiles
	palette Palette
}

// NewTilePainter constructs a painter for the given layout and colours.
func NewTilePainter(tiles Tiles, palette Palette) *TilePainter {
	return &TilePainter{tiles: tiles, palette: palette}
}

// Tiles returns the layout used by the painter.
func (tp *TilePainter) Tiles() Tiles { return tp.tiles }

// Draw paints every cell of g onto dst.
func (tp *TilePainter) Draw(dst *ebiten.Image, g *core.Grid) {
	size := float32(tp.tiles.Size)
	for i, s := range g.Cells() {
		x, y := tp.tiles.Origin(g.Coord(i))
		vector.DrawFilledRect(dst, float32(x), float32(y), size, size, tp.palette.Color(s), false)
	}
}
