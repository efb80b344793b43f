//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	StatsLines() []string
}

// HUD renders the statistics panel to the right of the grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	title    string
	stats    []string
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached counters and parameters from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(statsProvider); ok {
		h.stats = provider.StatsLines()
	}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	y += sectionSpacing
	for _, line := range h.stats {
		text.Draw(h.panel, line, face, panelPadding, y, color.White)
		y += lineHeight
	}

	for _, group := range h.snapshot.Groups {
		y += sectionSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			line := fmt.Sprintf("%s: %s", p.Label, p.Value)
			text.Draw(h.panel, line, face, panelPadding+indent, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Statistics"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
}

const (
	panelPadding   = 12
	headerBaseline = 18
	sectionSpacing = 14
	lineHeight     = 18
	indent         = 8
)
