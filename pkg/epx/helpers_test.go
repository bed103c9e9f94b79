package epx

import (
	"math/rand"
	"testing"
)

var (
	red    = Pixel{255, 0, 0, 255}
	green  = Pixel{0, 255, 0, 255}
	blue   = Pixel{0, 0, 255, 255}
	yellow = Pixel{255, 255, 0, 255}
	white  = Pixel{255, 255, 255, 255}
	black  = Pixel{0, 0, 0, 255}
)

// gridOf builds a grid from rows of pixels. All rows must have equal length.
func gridOf(t *testing.T, rows [][]Pixel) Grid {
	t.Helper()
	if len(rows) == 0 {
		return Grid{}
	}
	g := NewTransparentGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		if len(row) != g.Cols() {
			t.Fatalf("row %d has %d pixels, want %d", y, len(row), g.Cols())
		}
		for x, p := range row {
			g.Set(y, x, p)
		}
	}
	return g
}

// randomGrid fills a grid from a small palette so that neighbor equalities
// are common. Pixels are opaque.
func randomGrid(rng *rand.Rand, rows, cols int) Grid {
	palette := []Pixel{red, green, blue, yellow, white, black}
	g := NewTransparentGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.Set(y, x, palette[rng.Intn(len(palette))])
		}
	}
	return g
}

func assertBlock(t *testing.T, g Grid, y, x int, want [4]Pixel) {
	t.Helper()
	got := [4]Pixel{
		g.At(2*y, 2*x), g.At(2*y, 2*x+1),
		g.At(2*y+1, 2*x), g.At(2*y+1, 2*x+1),
	}
	if got != want {
		t.Errorf("block for source (%d,%d) = %v, want %v", y, x, got, want)
	}
}
