package sim

import (
	"reflect"
	"testing"
)

func TestIssueMove_SetsPathsAndResetsCursor(t *testing.T) {
	w := NewWorld(1)
	tx, ty := CellToWorld(GridCols-4, GridRows/2)
	w.IssueMove(tx, ty)

	for i := range w.Units {
		u := &w.Units[i]
		if len(u.Path) == 0 {
			t.Fatalf("unit %d got no path to a road target", i)
		}
		if u.PathIdx != 0 {
			t.Fatalf("unit %d cursor = %d, want 0", i, u.PathIdx)
		}
		cx, cy := WorldToCell(u.X, u.Y)
		if u.Path[0] != (Cell{X: cx, Y: cy}) {
			t.Fatalf("unit %d path starts at %v, want its own cell (%d,%d)", i, u.Path[0], cx, cy)
		}
		last := u.Path[len(u.Path)-1]
		if last != (Cell{X: GridCols - 4, Y: GridRows / 2}) {
			t.Fatalf("unit %d path ends at %v, want the target cell", i, last)
		}
	}
	if w.Stats.PathRequests != MaxUnits {
		t.Fatalf("path requests = %d, want %d", w.Stats.PathRequests, MaxUnits)
	}
}

func TestIssueMove_Idempotent(t *testing.T) {
	a := NewWorld(1)
	b := NewWorld(1)
	tx, ty := CellToWorld(GridCols-4, GridRows/2)
	a.IssueMove(tx, ty)
	a.IssueMove(tx, ty)
	b.IssueMove(tx, ty)
	for i := range a.Units {
		if !reflect.DeepEqual(a.Units[i].Path, b.Units[i].Path) {
			t.Fatalf("unit %d: repeated command drifted from single command", i)
		}
		if a.Units[i].PathIdx != 0 {
			t.Fatalf("unit %d cursor not reset on re-issue", i)
		}
	}
}

func TestIssueMove_ClampsOutOfRangeTarget(t *testing.T) {
	w := NewWorld(1)
	// Far outside the world: clamps to (0,0), which is border wall, so every
	// unit receives an empty path and holds position. Not an error.
	w.IssueMove(-500, -500)
	for i := range w.Units {
		if len(w.Units[i].Path) != 0 {
			t.Fatalf("unit %d got a path to a wall cell", i)
		}
	}
}

func TestIssueMove_UnreachableTargetLeavesUnitIdle(t *testing.T) {
	g := borderGrid(16, 16)
	for x := 8; x <= 12; x++ {
		g.set(x, 8, TileRock)
		g.set(x, 12, TileRock)
	}
	for y := 8; y <= 12; y++ {
		g.set(8, y, TileRock)
		g.set(12, y, TileRock)
	}
	w := &World{Grid: g, Rng: NewLCG(1)}
	ux, uy := CellToWorld(2, 2)
	w.Units[0] = Unit{X: ux, Y: uy, Alive: true, Path: []Cell{{X: 2, Y: 2}}, PathIdx: 1}

	tx, ty := CellToWorld(10, 10)
	w.IssueMove(tx, ty)
	if len(w.Units[0].Path) != 0 {
		t.Fatal("unreachable target must leave the unit with an empty path")
	}
	if w.Units[0].PathIdx != 0 {
		t.Fatal("cursor must still be reset on an unreachable target")
	}
}

func TestIssueMove_SkipsDeadUnits(t *testing.T) {
	w := NewWorld(1)
	w.Units[2].Alive = false
	tx, ty := CellToWorld(GridCols-4, GridRows/2)
	w.IssueMove(tx, ty)
	if w.Units[2].Path != nil {
		t.Fatal("dead unit must not receive a path")
	}
	if w.Stats.PathRequests != MaxUnits-1 {
		t.Fatalf("path requests = %d, want %d", w.Stats.PathRequests, MaxUnits-1)
	}
}
