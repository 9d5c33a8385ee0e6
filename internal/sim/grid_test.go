package sim

import (
	"reflect"
	"testing"
)

func TestGrid_OOB_FailsClosed(t *testing.T) {
	g := NewGrid(10, 10)
	if g.Classify(-1, 0) != TileWall {
		t.Fatal("out-of-range classify should report a wall")
	}
	if g.Classify(0, -1) != TileWall {
		t.Fatal("out-of-range classify should report a wall")
	}
	if g.Classify(10, 0) != TileWall {
		t.Fatal("out-of-range classify should report a wall")
	}
	if !g.IsBlocked(0, 10) {
		t.Fatal("out-of-range cell should be blocked")
	}
	if g.IsBlocked(5, 5) {
		t.Fatal("interior cell of an empty grid should be walkable")
	}
}

func TestGenerateMap_BorderIsWall(t *testing.T) {
	g := GenerateMap(GridCols, GridRows)
	for x := 0; x < g.Cols; x++ {
		if g.Classify(x, 0) != TileWall || g.Classify(x, g.Rows-1) != TileWall {
			t.Fatalf("border cell in column %d is not a wall", x)
		}
	}
	for y := 0; y < g.Rows; y++ {
		if g.Classify(0, y) != TileWall || g.Classify(g.Cols-1, y) != TileWall {
			t.Fatalf("border cell in row %d is not a wall", y)
		}
	}
}

func TestGenerateMap_Deterministic(t *testing.T) {
	a := GenerateMap(GridCols, GridRows)
	b := GenerateMap(GridCols, GridRows)
	if !reflect.DeepEqual(a.Tiles(), b.Tiles()) {
		t.Fatal("map generation must be reproducible with no external input")
	}
}

func TestGenerateMap_SpawnPocketAndRoadsOpen(t *testing.T) {
	g := GenerateMap(GridCols, GridRows)
	for _, c := range unitSpawns {
		if g.IsBlocked(c.X, c.Y) {
			t.Fatalf("unit spawn cell (%d,%d) is blocked", c.X, c.Y)
		}
	}
	roadY := GridRows / 2
	for x := 1; x < GridCols-1; x++ {
		if g.IsBlocked(x, roadY) {
			t.Fatalf("road cell (%d,%d) is blocked", x, roadY)
		}
	}
}

func TestGrid_ClampCell(t *testing.T) {
	g := NewGrid(10, 8)
	cases := []struct {
		inX, inY   int
		outX, outY int
	}{
		{-5, -5, 0, 0},
		{20, 3, 9, 3},
		{3, 20, 3, 7},
		{4, 4, 4, 4},
	}
	for _, c := range cases {
		x, y := g.ClampCell(c.inX, c.inY)
		if x != c.outX || y != c.outY {
			t.Fatalf("ClampCell(%d,%d) = (%d,%d), want (%d,%d)", c.inX, c.inY, x, y, c.outX, c.outY)
		}
	}
}

func TestWorldToCell(t *testing.T) {
	cx, cy := WorldToCell(24, 40)
	if cx != 1 || cy != 2 {
		t.Fatalf("expected (1,2) got (%d,%d)", cx, cy)
	}
}

func TestCellToWorld(t *testing.T) {
	wx, wy := CellToWorld(2, 3)
	if wx != 40 || wy != 56 {
		t.Fatalf("expected (40,56) got (%.0f,%.0f)", wx, wy)
	}
}
