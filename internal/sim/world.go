package sim

import "math"

// Standard battlefield dimensions and entity pool capacities. Pools never
// grow: dead entities keep their slot with Alive=false and the slot is reused
// (projectiles) or stays inactive for the rest of the run (units, hostiles).
const (
	GridCols = 60
	GridRows = 34
	WorldW   = GridCols * CellSize
	WorldH   = GridRows * CellSize

	MaxUnits       = 4
	MaxHostiles    = 24
	MaxProjectiles = 128

	// TickDt is the fixed simulation timestep in seconds.
	TickDt = 1.0 / 60.0

	unitSpeed       = 90.0  // px/s along the path
	hostileSpeed    = 42.0  // px/s toward the unit centroid
	projectileSpeed = 360.0 // px/s

	// EngageRadius is the auto-targeting range in pixels.
	EngageRadius = 220.0

	waypointEps  = 2.0 // px; inside this the next waypoint is consumed
	fireInterval = 0.5 // seconds between shots per unit

	unitRadius       = 6.0
	hostileRadius    = 7.0
	projectileRadius = 2.0

	// ambientFireChance is the per-frame probability that one hostile takes
	// a pot-shot at the squad centroid regardless of engagement range.
	ambientFireChance = 0.008
)

// Unit is one controllable squad member.
type Unit struct {
	X, Y     float64
	VX, VY   float64
	Path     []Cell // owned exclusively by this unit; replaced wholesale
	PathIdx  int    // cursor into Path; always <= len(Path)
	Cooldown float64
	Alive    bool
}

// Hostile converges on the squad. Targeted is transient and reset at the top
// of every tick.
type Hostile struct {
	X, Y     float64
	Alive    bool
	Targeted bool
}

// Projectile lives in a fixed pool slot. FromHostile selects which side it
// can collide with.
type Projectile struct {
	X, Y        float64
	VX, VY      float64
	Alive       bool
	FromHostile bool
}

// Stats accumulates notable events across a run, for the headless report and
// tests.
type Stats struct {
	ShotsFired     int `json:"shots_fired"`
	ShotsDropped   int `json:"shots_dropped"` // projectile pool was full
	HostilesKilled int `json:"hostiles_killed"`
	UnitsLost      int `json:"units_lost"`
	PathRequests   int `json:"path_requests"`
	PathsCapped    int `json:"paths_capped"` // hit the MaxPathLen truncation cap
}

// World owns the grid, the entity pools, and the PRNG state. One value per
// process run; mutated only by Step, IssueMove and AmbientHostileFire, all
// invoked from the single game loop.
type World struct {
	Grid        *Grid
	Units       [MaxUnits]Unit
	Hostiles    [MaxHostiles]Hostile
	Projectiles [MaxProjectiles]Projectile
	Rng         LCG
	Tick        int64
	Stats       Stats
}

// unitSpawns are the fixed squad start cells, inside the spawn pocket that
// GenerateMap keeps clear.
var unitSpawns = [MaxUnits]Cell{{X: 4, Y: 28}, {X: 6, Y: 28}, {X: 4, Y: 30}, {X: 6, Y: 30}}

// NewWorld builds the standard battlefield. The seed drives hostile placement
// and ambient fire only; the map itself is fixed.
func NewWorld(seed uint64) *World {
	w := &World{
		Grid: GenerateMap(GridCols, GridRows),
		Rng:  NewLCG(seed),
	}
	for i := range w.Units {
		wx, wy := CellToWorld(unitSpawns[i].X, unitSpawns[i].Y)
		w.Units[i] = Unit{X: wx, Y: wy, Alive: true}
	}
	for i := range w.Hostiles {
		cx, cy := w.randomHostileCell()
		wx, wy := CellToWorld(cx, cy)
		w.Hostiles[i] = Hostile{X: wx, Y: wy, Alive: true}
	}
	return w
}

// randomHostileCell picks a walkable tile away from the squad spawn corner.
func (w *World) randomHostileCell() (int, int) {
	for {
		cx := w.Rng.Intn(w.Grid.Cols)
		cy := w.Rng.Intn(w.Grid.Rows)
		if w.Grid.IsBlocked(cx, cy) {
			continue
		}
		if cx < GridCols/3 && cy > GridRows/2 {
			continue // too close to the spawn pocket
		}
		return cx, cy
	}
}

// aliveUnitCentroid returns the mean position of alive units. ok is false
// when the whole squad is down.
func (w *World) aliveUnitCentroid() (float64, float64, bool) {
	sx, sy := 0.0, 0.0
	n := 0
	for i := range w.Units {
		if !w.Units[i].Alive {
			continue
		}
		sx += w.Units[i].X
		sy += w.Units[i].Y
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return sx / float64(n), sy / float64(n), true
}

// spawnProjectile fires from (x,y) toward (tx,ty) using the first inactive
// pool slot. Returns false when the pool is exhausted or the direction is
// degenerate; the shot is silently dropped either way.
func (w *World) spawnProjectile(x, y, tx, ty float64, fromHostile bool) bool {
	dx := tx - x
	dy := ty - y
	d2 := dx*dx + dy*dy
	if d2 < 1e-12 {
		return false
	}
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if p.Alive {
			continue
		}
		inv := projectileSpeed / math.Sqrt(d2)
		*p = Projectile{
			X: x, Y: y,
			VX: dx * inv, VY: dy * inv,
			Alive:       true,
			FromHostile: fromHostile,
		}
		w.Stats.ShotsFired++
		return true
	}
	w.Stats.ShotsDropped++
	return false
}

// AliveUnits returns the number of alive units.
func (w *World) AliveUnits() int {
	n := 0
	for i := range w.Units {
		if w.Units[i].Alive {
			n++
		}
	}
	return n
}

// AliveHostiles returns the number of alive hostiles.
func (w *World) AliveHostiles() int {
	n := 0
	for i := range w.Hostiles {
		if w.Hostiles[i].Alive {
			n++
		}
	}
	return n
}
