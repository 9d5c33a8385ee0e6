package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/voidforge/skirmish/internal/sim"
)

// button is an axis-aligned HUD hitbox in screen pixels.
type button struct {
	x, y, w, h float32
}

func (b button) contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

func resetButton() button {
	return button{x: sim.WorldW - 80, y: 8, w: 72, h: 20}
}

func (a *App) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	face := basicfont.Face7x13

	units, hostiles := 0, 0
	for i := range snap.Units {
		if snap.Units[i].Alive {
			units++
		}
	}
	for i := range snap.Hostiles {
		if snap.Hostiles[i].Alive {
			hostiles++
		}
	}

	lines := []string{
		fmt.Sprintf("tick %d", snap.Tick),
		fmt.Sprintf("squad %d/%d  hostiles %d/%d", units, sim.MaxUnits, hostiles, sim.MaxHostiles),
		fmt.Sprintf("kills %d  losses %d", snap.Stats.HostilesKilled, snap.Stats.UnitsLost),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 18+i*14, color.White)
	}

	b := a.reset
	vector.FillRect(screen, b.x, b.y, b.w, b.h, color.RGBA{R: 60, G: 60, B: 60, A: 220}, false)
	vector.StrokeRect(screen, b.x, b.y, b.w, b.h, 1.0, color.RGBA{R: 160, G: 160, B: 160, A: 255}, false)
	text.Draw(screen, "RESET", face, int(b.x)+18, int(b.y)+14, color.White)

	if units == 0 {
		text.Draw(screen, "SQUAD DOWN - press RESET", face, sim.WorldW/2-90, sim.WorldH/2, color.White)
	} else if hostiles == 0 {
		text.Draw(screen, "AREA CLEAR", face, sim.WorldW/2-36, sim.WorldH/2, color.White)
	}
}
