package life

import (
	"errors"
	"testing"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"half":        "12",
		"seed_region": "full",
		"workers":     "3",
		"seed":        "-9",
	})
	if c.Half != 12 || c.SeedCount != 144 {
		t.Fatalf("half/seed_count = %d/%d, want 12/144", c.Half, c.SeedCount)
	}
	if c.Region != RegionFull {
		t.Fatalf("region = %q, want full", c.Region)
	}
	if c.Workers != 3 || c.Seed != -9 {
		t.Fatalf("workers/seed = %d/%d", c.Workers, c.Seed)
	}

	c = FromMap(map[string]string{"half": "8", "seed_count": "10"})
	if c.SeedCount != 10 {
		t.Fatalf("explicit seed_count should win, got %d", c.SeedCount)
	}
}

func TestFromMapIgnoresMalformedValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"half":        "-1",
		"seed_count":  "many",
		"seed_region": "diagonal",
		"workers":     "0",
		"seed":        "x",
	})
	if c != def {
		t.Fatalf("malformed values should keep defaults, got %+v want %+v", c, def)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	c := DefaultConfig()
	c.Half = 0
	if err := c.Validate(); !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize, got %v", err)
	}

	c = DefaultConfig()
	c.SeedCount = c.Half*c.Half + 1
	if err := c.Validate(); !errors.Is(err, ErrSeedCount) {
		t.Fatalf("quadrant overflow: expected ErrSeedCount, got %v", err)
	}
	c.Region = RegionFull
	if err := c.Validate(); err != nil {
		t.Fatalf("full region holds (2H)² cells, got %v", err)
	}
	c.SeedCount = 4*c.Half*c.Half + 1
	if err := c.Validate(); !errors.Is(err, ErrSeedCount) {
		t.Fatalf("full overflow: expected ErrSeedCount, got %v", err)
	}
}
