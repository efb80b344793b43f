package life

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
)

var (
	// ErrGridSize reports a non-positive half length.
	ErrGridSize = errors.New("life: grid half length must be positive")
	// ErrSeedCount reports a seed count the sampling region cannot hold.
	ErrSeedCount = errors.New("life: seed count exceeds sampling region")
)

// SeedRegion selects which part of the grid the seed generator samples.
type SeedRegion string

const (
	// RegionQuadrant samples [0, H) on both axes.
	RegionQuadrant SeedRegion = "quadrant"
	// RegionFull samples the whole grid, [-H, H) on both axes.
	RegionFull SeedRegion = "full"
)

// Config controls the Life world.
type Config struct {
	// Half is H: the grid spans [-H, H) on both axes.
	Half int
	// SeedCount is the number of distinct live cells placed at reset.
	SeedCount int
	Region    SeedRegion
	// Workers is the number of row bands evaluated in parallel per step.
	Workers int
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Half:      40,
		SeedCount: 40 * 40,
		Region:    RegionQuadrant,
		Workers:   runtime.NumCPU(),
		Seed:      42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed values are ignored. Without an explicit seed_count the count
// follows the half length as H².
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["half"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Half = parsed
			c.SeedCount = parsed * parsed
		}
	}
	if v, ok := cfg["seed_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedCount = parsed
		}
	}
	if v, ok := cfg["seed_region"]; ok {
		switch SeedRegion(v) {
		case RegionQuadrant, RegionFull:
			c.Region = SeedRegion(v)
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Domain returns the sampling range used by the seed generator.
func (c Config) Domain() Domain {
	if c.Region == RegionFull {
		return Domain{Min: -c.Half, Max: c.Half}
	}
	return Domain{Min: 0, Max: c.Half}
}

// Validate checks that the configuration can be seeded in bounded time.
func (c Config) Validate() error {
	if c.Half <= 0 {
		return fmt.Errorf("%w: got %d", ErrGridSize, c.Half)
	}
	if c.SeedCount < 0 {
		return fmt.Errorf("%w: negative count %d", ErrSeedCount, c.SeedCount)
	}
	if size := c.Domain().Size(); c.SeedCount > size {
		return fmt.Errorf("%w: %d cells requested, %s region holds %d", ErrSeedCount, c.SeedCount, c.Region, size)
	}
	return nil
}
