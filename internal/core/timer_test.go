package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if n := fs.Due(0); n != 0 {
		t.Fatalf("first call should only start the clock, got %d", n)
	}

	clock = clock.Add(50 * time.Millisecond)
	if n := fs.Due(0); n != 0 {
		t.Fatalf("half a tick should not step, got %d", n)
	}

	clock = clock.Add(60 * time.Millisecond)
	if n := fs.Due(0); n != 1 {
		t.Fatalf("expected one step after 110ms, got %d", n)
	}

	clock = clock.Add(290 * time.Millisecond)
	if n := fs.Due(0); n != 3 {
		t.Fatalf("expected three steps after 400ms total, got %d", n)
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = func() time.Time { return clock }
	fs.Due(0)

	clock = clock.Add(time.Second)
	if n := fs.Due(2); n != 2 {
		t.Fatalf("expected backlog capped at 2, got %d", n)
	}
	clock = clock.Add(5 * time.Millisecond)
	if n := fs.Due(2); n != 0 {
		t.Fatalf("backlog should be dropped after capping, got %d", n)
	}
}

func TestFixedStepDefaultTick(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Tick() != DefaultTick {
		t.Fatalf("expected default tick %s, got %s", DefaultTick, fs.Tick())
	}
	fs.SetTick(10 * time.Millisecond)
	if fs.Tick() != 10*time.Millisecond {
		t.Fatalf("SetTick not applied, got %s", fs.Tick())
	}
}
