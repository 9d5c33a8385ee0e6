package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/voidforge/skirmish/internal/sim"
)

var (
	groundCol     = color.RGBA{R: 30, G: 44, B: 30, A: 255}
	rockCol       = color.RGBA{R: 88, G: 82, B: 70, A: 255}
	wallCol       = color.RGBA{R: 52, G: 50, B: 46, A: 255}
	unitCol       = color.RGBA{R: 70, G: 200, B: 90, A: 255}
	hostileCol    = color.RGBA{R: 210, G: 60, B: 50, A: 255}
	targetRingCol = color.RGBA{R: 255, G: 220, B: 0, A: 200}
	pathCol       = color.RGBA{R: 90, G: 140, B: 220, A: 140}
	friendlyShot  = color.RGBA{R: 240, G: 240, B: 180, A: 255}
	hostileShot   = color.RGBA{R: 255, G: 120, B: 60, A: 255}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(groundCol)
	snap := a.world.Snapshot()

	cs := float32(sim.CellSize)
	for cy := 0; cy < snap.Rows; cy++ {
		for cx := 0; cx < snap.Cols; cx++ {
			tile := snap.Tiles[cy*snap.Cols+cx]
			if tile == sim.TileOpen {
				continue
			}
			fill := rockCol
			if tile == sim.TileWall {
				fill = wallCol
			}
			x0 := float32(cx) * cs
			y0 := float32(cy) * cs
			vector.FillRect(screen, x0, y0, cs, cs, fill, false)
			// Light top-left, dark bottom-right, same relief trick as rocks.
			vector.StrokeLine(screen, x0, y0, x0+cs, y0, 1.0, color.RGBA{R: 118, G: 112, B: 96, A: 160}, false)
			vector.StrokeLine(screen, x0, y0+cs, x0+cs, y0+cs, 1.0, color.RGBA{R: 24, G: 22, B: 18, A: 200}, false)
		}
	}

	for i := range snap.Units {
		u := &snap.Units[i]
		if !u.Alive {
			continue
		}
		for j := 1; j < len(u.Path); j++ {
			ax, ay := sim.CellToWorld(u.Path[j-1].X, u.Path[j-1].Y)
			bx, by := sim.CellToWorld(u.Path[j].X, u.Path[j].Y)
			vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1.0, pathCol, false)
		}
		vector.FillCircle(screen, float32(u.X), float32(u.Y), 6, unitCol, false)
		vector.StrokeCircle(screen, float32(u.X), float32(u.Y), float32(sim.EngageRadius), 0.5,
			color.RGBA{R: 70, G: 200, B: 90, A: 24}, false)
	}

	for i := range snap.Hostiles {
		h := &snap.Hostiles[i]
		if !h.Alive {
			continue
		}
		vector.FillCircle(screen, float32(h.X), float32(h.Y), 7, hostileCol, false)
		if h.Targeted {
			vector.StrokeCircle(screen, float32(h.X), float32(h.Y), 11, 1.5, targetRingCol, false)
		}
	}

	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		fill := friendlyShot
		if p.FromHostile {
			fill = hostileShot
		}
		vector.FillCircle(screen, float32(p.X), float32(p.Y), 2, fill, false)
	}

	a.drawHUD(screen, snap)
}
