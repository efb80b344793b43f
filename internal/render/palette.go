package render

import (
	"image/color"

	"mad-life/internal/core"
)

// Palette maps the two cell states to fixed colours.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette matches the classic white-on-grey look.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:  color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// Color returns the colour for s.
func (p Palette) Color(s core.State) color.RGBA {
	if s == core.Alive {
		return p.Alive
	}
	return p.Dead
}

// HeatColor tints a live-neighbour count from cold blue (0) to hot red (8).
// alpha sets the overlay opacity.
func HeatColor(n uint8, alpha uint8) color.RGBA {
	if n > 8 {
		n = 8
	}
	t := float64(n) / 8
	// Premultiplied alpha.
	a := float64(alpha) / 255
	return color.RGBA{
		R: uint8((40 + 215*t) * a),
		G: uint8((90 + 40*(1-t)) * a),
		B: uint8((200 * (1 - t)) * a),
		A: alpha,
	}
}
