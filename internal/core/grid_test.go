package core

import "testing"

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(3)
	if g.Len() != 36 {
		t.Fatalf("expected 36 cells, got %d", g.Len())
	}
	for i := 0; i < g.Len(); i++ {
		c := g.Coord(i)
		if !g.InBounds(c) {
			t.Fatalf("coord %v for index %d is out of bounds", c, i)
		}
		if got := g.Index(c); got != i {
			t.Fatalf("Index(Coord(%d)) = %d", i, got)
		}
	}
	if first := g.Coord(0); first != (Coord{-3, -3}) {
		t.Fatalf("first cell should be (-3,-3), got %v", first)
	}
	if last := g.Coord(g.Len() - 1); last != (Coord{2, 2}) {
		t.Fatalf("last cell should be (2,2), got %v", last)
	}
}

func TestGridBoundsAreHardEdged(t *testing.T) {
	g := NewGrid(2)
	cases := []struct {
		c  Coord
		in bool
	}{
		{Coord{-2, -2}, true},
		{Coord{1, 1}, true},
		{Coord{2, 0}, false},
		{Coord{0, 2}, false},
		{Coord{-3, 0}, false},
		{Coord{0, -3}, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.c); got != tc.in {
			t.Fatalf("InBounds(%v) = %v, want %v", tc.c, got, tc.in)
		}
	}

	g.Set(Coord{2, 0}, Alive)
	if g.CountAlive() != 0 {
		t.Fatal("out-of-bounds Set must not touch the grid")
	}
	if g.At(Coord{-3, 0}) != Dead {
		t.Fatal("out-of-bounds At must report Dead")
	}
}

func TestGridSetAndCount(t *testing.T) {
	g := NewGrid(4)
	g.Set(Coord{0, 0}, Alive)
	g.Set(Coord{-4, 3}, Alive)
	g.Set(Coord{-4, 3}, Alive)
	if got := g.CountAlive(); got != 2 {
		t.Fatalf("expected 2 alive cells, got %d", got)
	}

	seen := 0
	g.Each(func(c Coord, s State) {
		seen++
		if s == Alive && c != (Coord{0, 0}) && c != (Coord{-4, 3}) {
			t.Fatalf("unexpected live cell %v", c)
		}
	})
	if seen != g.Len() {
		t.Fatalf("Each visited %d cells, want %d", seen, g.Len())
	}

	g.Clear()
	if g.CountAlive() != 0 {
		t.Fatal("Clear should kill every cell")
	}
}

func TestNeighborsAreDistinctAndAdjacent(t *testing.T) {
	c := Coord{5, -7}
	seen := map[Coord]bool{}
	for _, n := range c.Neighbors() {
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("%v is not a neighbour of %v", n, c)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct neighbours, got %d", len(seen))
	}
}
