package sim

import "math"

// StepInput is the per-tick input sample consumed by Step.
type StepInput struct {
	Fire       bool    // explicit fire intent (secondary button held)
	AimX, AimY float64 // pointer position in world space
}

// Step advances the world by one fixed TickDt. The sub-phases run in a fixed
// order every tick so identical inputs replay identical runs.
func (w *World) Step(in StepInput) {
	w.Tick++
	w.resetTargeted()
	w.moveUnits()
	w.resolveUnitFire(in)
	w.moveHostiles()
	w.advanceProjectiles()
}

func (w *World) resetTargeted() {
	for i := range w.Hostiles {
		w.Hostiles[i].Targeted = false
	}
}

// moveUnits advances each alive unit along its path. Within waypointEps of
// the next waypoint the waypoint is consumed and the unit keeps zero velocity
// for this sub-step; otherwise it moves toward the waypoint at unitSpeed.
func (w *World) moveUnits() {
	for i := range w.Units {
		u := &w.Units[i]
		if !u.Alive {
			continue
		}
		u.VX, u.VY = 0, 0
		if u.PathIdx >= len(u.Path) {
			continue
		}
		wp := u.Path[u.PathIdx]
		tx, ty := CellToWorld(wp.X, wp.Y)
		dx := tx - u.X
		dy := ty - u.Y
		d2 := dx*dx + dy*dy
		if d2 <= waypointEps*waypointEps {
			u.PathIdx++
			continue
		}
		dist := math.Sqrt(d2)
		u.VX = dx / dist * unitSpeed
		u.VY = dy / dist * unitSpeed
		u.X += u.VX * TickDt
		u.Y += u.VY * TickDt
	}
}

// resolveUnitFire runs the per-unit combat decision: explicit fire toward the
// aim point wins over auto-engagement; at most one projectile per unit per
// tick. A full projectile pool leaves the cooldown elapsed so the shot
// retries on a later tick.
func (w *World) resolveUnitFire(in StepInput) {
	for i := range w.Units {
		u := &w.Units[i]
		if !u.Alive {
			continue
		}
		if u.Cooldown > 0 {
			u.Cooldown -= TickDt
		}
		if u.Cooldown > 0 {
			continue
		}
		if in.Fire {
			if w.spawnProjectile(u.X, u.Y, in.AimX, in.AimY, false) {
				u.Cooldown = fireInterval
			}
			continue
		}
		if h := w.nearestHostileInRange(u.X, u.Y); h != nil {
			h.Targeted = true
			if w.spawnProjectile(u.X, u.Y, h.X, h.Y, false) {
				u.Cooldown = fireInterval
			}
		}
	}
}

// nearestHostileInRange returns the closest alive hostile within
// EngageRadius, or nil. Squared distances throughout.
func (w *World) nearestHostileInRange(x, y float64) *Hostile {
	const r2 = EngageRadius * EngageRadius
	var best *Hostile
	bestD2 := math.MaxFloat64
	for i := range w.Hostiles {
		h := &w.Hostiles[i]
		if !h.Alive {
			continue
		}
		dx := h.X - x
		dy := h.Y - y
		d2 := dx*dx + dy*dy
		if d2 > r2 || d2 >= bestD2 {
			continue
		}
		bestD2 = d2
		best = h
	}
	return best
}

// moveHostiles walks every alive hostile toward the centroid of the alive
// units. With no units alive the hostiles stand still.
func (w *World) moveHostiles() {
	cx, cy, ok := w.aliveUnitCentroid()
	if !ok {
		return
	}
	for i := range w.Hostiles {
		h := &w.Hostiles[i]
		if !h.Alive {
			continue
		}
		dx := cx - h.X
		dy := cy - h.Y
		dist := math.Hypot(dx, dy)
		if dist < 1e-6 {
			continue
		}
		h.X += dx / dist * hostileSpeed * TickDt
		h.Y += dy / dist * hostileSpeed * TickDt
	}
}

// advanceProjectiles moves active projectiles, culls out-of-bounds ones, then
// tests collision against the opposing side only. First hit deactivates both
// projectile and victim: single-hit kill, no damage accumulation.
func (w *World) advanceProjectiles() {
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if !p.Alive {
			continue
		}
		p.X += p.VX * TickDt
		p.Y += p.VY * TickDt
		if p.X < 0 || p.Y < 0 || p.X >= WorldW || p.Y >= WorldH {
			p.Alive = false
			continue
		}
		if p.FromHostile {
			for j := range w.Units {
				u := &w.Units[j]
				if !u.Alive {
					continue
				}
				if within(p.X, p.Y, u.X, u.Y, projectileRadius+unitRadius) {
					p.Alive = false
					u.Alive = false
					w.Stats.UnitsLost++
					break
				}
			}
		} else {
			for j := range w.Hostiles {
				h := &w.Hostiles[j]
				if !h.Alive {
					continue
				}
				if within(p.X, p.Y, h.X, h.Y, projectileRadius+hostileRadius) {
					p.Alive = false
					h.Alive = false
					w.Stats.HostilesKilled++
					break
				}
			}
		}
	}
}

func within(ax, ay, bx, by, r float64) bool {
	dx := ax - bx
	dy := ay - by
	return dx*dx+dy*dy <= r*r
}

// AmbientHostileFire runs once per rendered frame, outside the fixed-step
// loop: a low-probability draw that lets one random alive hostile take a
// pot-shot at the squad centroid, keeping pressure on the player independent
// of engagement range.
func (w *World) AmbientHostileFire() {
	if w.Rng.Float64() >= ambientFireChance {
		return
	}
	cx, cy, ok := w.aliveUnitCentroid()
	if !ok {
		return
	}
	alive := make([]int, 0, MaxHostiles)
	for i := range w.Hostiles {
		if w.Hostiles[i].Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return
	}
	h := &w.Hostiles[alive[w.Rng.Intn(len(alive))]]
	w.spawnProjectile(h.X, h.Y, cx, cy, true)
}
