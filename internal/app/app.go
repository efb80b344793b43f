//go:build ebiten

package app

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Simulation
// ticks follow the fixed clock; Draw runs every frame and only reads.
type Game struct {
	sim     core.Sim
	clock   *core.FixedStep
	painter *render.TilePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	background color.Color

	maxCatchUp int
	paused     bool
	tickOnce   bool

	gridW, gridH int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	tiles := render.Tiles{Half: sim.Size().W / 2, Size: cfg.Cell, Gap: cfg.Gap}
	gw, gh := tiles.Extent()
	return &Game{
		sim:        sim,
		clock:      core.NewFixedStep(cfg.Tick),
		painter:    render.NewTilePainter(tiles, render.DefaultPalette()),
		overlay:    ui.NewOverlay(sim, tiles),
		hud:        ui.NewHUD(sim, cfg.Panel),
		background: color.Black,
		maxCatchUp: cfg.MaxCatchUp,
		gridW:      gw,
		gridH:      gh,
	}
}

// Update handles input and advances the simulation on due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	steps := g.clock.Due(g.maxCatchUp)
	if g.paused {
		steps = 0
		if g.tickOnce {
			steps = 1
		}
	}
	g.tickOnce = false
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}

	g.overlay.Update()
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.sim.Grid())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridW+panelMargin, g.gridH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.gridW
	if hw := g.hud.Width(); hw > 0 {
		w += panelMargin + hw
	}
	return w, g.gridH
}

const panelMargin = 16
