//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"mad-life/internal/app"
	"mad-life/internal/core"
	_ "mad-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.SimOptions())
	if err := sim.Reset(cfg.Seed); err != nil {
		log.Fatalf("reset %s: %v", sim.Name(), err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)
	size := sim.Size()
	log.Printf("%s: %dx%d cells, tick %s", sim.Name(), size.W, size.H, cfg.Tick)

	ebiten.SetWindowTitle("mad-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
