package app

import "testing"

func TestButtonContains(t *testing.T) {
	b := button{x: 10, y: 10, w: 40, h: 20}
	cases := []struct {
		mx, my int
		in     bool
	}{
		{10, 10, true},
		{49, 29, true},
		{50, 10, false},
		{10, 30, false},
		{9, 10, false},
		{25, 15, true},
	}
	for _, c := range cases {
		if got := b.contains(c.mx, c.my); got != c.in {
			t.Fatalf("contains(%d,%d) = %v, want %v", c.mx, c.my, got, c.in)
		}
	}
}

func TestNewStartsWithFullSquad(t *testing.T) {
	a := New(7, nil)
	if a.world == nil {
		t.Fatal("app must own a world")
	}
	if got := a.world.AliveUnits(); got == 0 {
		t.Fatalf("fresh world has %d alive units", got)
	}
	if !a.reset.contains(int(a.reset.x)+1, int(a.reset.y)+1) {
		t.Fatal("reset button hitbox is degenerate")
	}
}
