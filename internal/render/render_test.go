package render

import (
	"testing"

	"mad-life/internal/core"
)

func TestTilesOriginAndExtent(t *testing.T) {
	tiles := Tiles{Half: 40, Size: 10, Gap: 4}

	x, y := tiles.Origin(core.Coord{X: -40, Y: -40})
	if x != 0 || y != 0 {
		t.Fatalf("top-left tile at (%v,%v), want (0,0)", x, y)
	}
	x, y = tiles.Origin(core.Coord{X: 0, Y: 0})
	if x != 560 || y != 560 {
		t.Fatalf("origin tile at (%v,%v), want (560,560)", x, y)
	}

	w, h := tiles.Extent()
	if w != 80*14-4 || h != w {
		t.Fatalf("extent = %dx%d, want %dx%d", w, h, 80*14-4, 80*14-4)
	}
}

func TestTilesCellAt(t *testing.T) {
	tiles := Tiles{Half: 3, Size: 10, Gap: 4}
	cases := []struct {
		x, y float64
		want core.Coord
		ok   bool
	}{
		{0, 0, core.Coord{X: -3, Y: -3}, true},
		{9.5, 9.5, core.Coord{X: -3, Y: -3}, true},
		{11, 0, core.Coord{}, false},
		{14, 28, core.Coord{X: -2, Y: -1}, true},
		{-1, 0, core.Coord{}, false},
		{6 * 14, 0, core.Coord{}, false},
	}
	for _, tc := range cases {
		got, ok := tiles.CellAt(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("CellAt(%v,%v) = %v,%v want %v,%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}

	g := core.NewGrid(3)
	for i := 0; i < g.Len(); i++ {
		c := g.Coord(i)
		x, y := tiles.Origin(c)
		if got, ok := tiles.CellAt(x+1, y+1); !ok || got != c {
			t.Fatalf("CellAt(Origin(%v)) = %v,%v", c, got, ok)
		}
	}
}

func TestPaletteAndHeat(t *testing.T) {
	p := DefaultPalette()
	if p.Color(core.Alive) != p.Alive || p.Color(core.Dead) != p.Dead {
		t.Fatal("palette must map states to their fixed colours")
	}
	if p.Alive == p.Dead {
		t.Fatal("alive and dead colours must differ")
	}

	cold := HeatColor(0, 255)
	hot := HeatColor(8, 255)
	if !(hot.R > cold.R && hot.B < cold.B) {
		t.Fatalf("heat should move from blue to red: cold=%v hot=%v", cold, hot)
	}
	if HeatColor(12, 255) != hot {
		t.Fatal("counts above 8 should clamp")
	}
	if c := HeatColor(4, 0); c.A != 0 || c.R != 0 {
		t.Fatalf("zero alpha should be fully transparent, got %v", c)
	}
}
