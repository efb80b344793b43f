package core

import "testing"

func TestPosition(t *testing.T) {
	cases := []struct {
		c    Coord
		x, y float64
	}{
		{Coord{0, 0}, 0, 0},
		{Coord{1, 0}, 14, 0},
		{Coord{-40, 39}, -560, 546},
	}
	for _, tc := range cases {
		x, y := Position(tc.c, 10, 4)
		if x != tc.x || y != tc.y {
			t.Fatalf("Position(%v) = (%v,%v), want (%v,%v)", tc.c, x, y, tc.x, tc.y)
		}
	}
}
