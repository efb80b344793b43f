//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type neighborProvider interface {
	NeighborCounts() []uint8
}

// Overlay draws optional debugging visuals on top of the grid.
type Overlay struct {
	sim   core.Sim
	tiles render.Tiles

	showNeighbors bool
	showHover     bool

	counts []uint8
	hover  core.Coord
	hasHit bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, tiles render.Tiles) *Overlay {
	return &Overlay{sim: sim, tiles: tiles}
}

// Update handles toggles and refreshes cached data.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showNeighbors = !o.showNeighbors
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHover = !o.showHover
	}

	o.counts = nil
	if o.showNeighbors || o.showHover {
		if provider, ok := o.sim.(neighborProvider); ok {
			o.counts = provider.NeighborCounts()
		}
	}

	o.hasHit = false
	if o.showHover {
		mx, my := ebiten.CursorPosition()
		o.hover, o.hasHit = o.tiles.CellAt(float64(mx), float64(my))
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	g := o.sim.Grid()
	if g == nil {
		return
	}
	if o.showNeighbors && len(o.counts) == g.Len() {
		size := float32(o.tiles.Size)
		for i, n := range o.counts {
			if n == 0 {
				continue
			}
			x, y := o.tiles.Origin(g.Coord(i))
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, render.HeatColor(n, 140), false)
		}
	}
	if o.showHover && o.hasHit {
		label := fmt.Sprintf("(%d,%d) %s", o.hover.X, o.hover.Y, g.At(o.hover))
		if len(o.counts) == g.Len() {
			label += fmt.Sprintf(" n=%d", o.counts[g.Index(o.hover)])
		}
		x, y := o.tiles.Origin(o.hover)
		text.Draw(screen, label, basicfont.Face7x13, int(x), int(y)-4, color.RGBA{R: 255, G: 220, B: 90, A: 255})
	}
}
