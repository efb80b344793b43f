package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"mad-life/internal/core"
)

// Options collects repeatable key=value flags that are handed to the sim
// factory.
type Options []string

func (o *Options) String() string {
	return strings.Join(*o, ",")
}

// Set appends a key=value pair.
func (o *Options) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("option %q is not in key=value form", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the options as a map. Later keys win.
func (o Options) Map() map[string]string {
	out := make(map[string]string, len(o))
	for _, kv := range o {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[key] = value
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim string
	// Tick is the simulation period, independent of the render rate.
	Tick time.Duration
	// TPS is how often ebiten runs Update (input polling and tick checks).
	TPS int
	// MaxCatchUp caps how many ticks a single Update may run.
	MaxCatchUp int
	Cell       float64
	Gap        float64
	Panel      int
	// Seed overrides the sim's configured seed when non-zero.
	Seed    int64
	Options Options
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "life",
		Tick:       core.DefaultTick,
		TPS:        60,
		MaxCatchUp: 4,
		Cell:       10,
		Gap:        4,
		Panel:      220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick period")
	fs.IntVar(&c.TPS, "tps", c.TPS, "update calls per second")
	fs.IntVar(&c.MaxCatchUp, "catchup", c.MaxCatchUp, "max ticks run by one update")
	fs.Float64Var(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.Float64Var(&c.Gap, "gap", c.Gap, "gap between cells in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "statistics panel width in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed override (0 keeps the sim default)")
	fs.Var(&c.Options, "set", "sim option in key=value form (repeatable)")
}

// SimOptions returns the options passed to the sim factory.
func (c *Config) SimOptions() map[string]string {
	return c.Options.Map()
}

// Validate rejects values the front-end cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %s", c.Tick))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Cell <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %g", c.Cell))
	}
	if c.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative, got %g", c.Gap))
	}
	if c.Panel < 0 {
		errs = append(errs, fmt.Errorf("panel width must not be negative, got %d", c.Panel))
	}
	return errors.Join(errs...)
}
