package sim

// Snapshot is a read-only copy of the renderable world state. Nothing in it
// aliases live World storage, so it is safe to hand to the renderer or to
// other goroutines (the observer server).
type Snapshot struct {
	Tick        int64             `json:"tick"`
	Cols        int               `json:"cols"`
	Rows        int               `json:"rows"`
	Tiles       []Tile            `json:"tiles"`
	Units       []UnitState       `json:"units"`
	Hostiles    []HostileState    `json:"hostiles"`
	Projectiles []ProjectileState `json:"projectiles"`
	Stats       Stats             `json:"stats"`
}

// UnitState is one unit slot. Path holds only the remaining waypoints.
type UnitState struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Alive bool    `json:"alive"`
	Path  []Cell  `json:"path,omitempty"`
}

// HostileState is one hostile slot.
type HostileState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Alive    bool    `json:"alive"`
	Targeted bool    `json:"targeted"`
}

// ProjectileState is one projectile slot.
type ProjectileState struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Alive       bool    `json:"alive"`
	FromHostile bool    `json:"from_hostile"`
}

// Snapshot copies the current world state. Dead slots are included with
// Alive=false; consumers must check the flag before using slot data.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        w.Tick,
		Cols:        w.Grid.Cols,
		Rows:        w.Grid.Rows,
		Tiles:       w.Grid.Tiles(),
		Units:       make([]UnitState, MaxUnits),
		Hostiles:    make([]HostileState, MaxHostiles),
		Projectiles: make([]ProjectileState, 0, MaxProjectiles),
		Stats:       w.Stats,
	}
	for i := range w.Units {
		u := &w.Units[i]
		var rest []Cell
		if u.Alive && u.PathIdx < len(u.Path) {
			rest = append(rest, u.Path[u.PathIdx:]...)
		}
		snap.Units[i] = UnitState{X: u.X, Y: u.Y, Alive: u.Alive, Path: rest}
	}
	for i := range w.Hostiles {
		h := &w.Hostiles[i]
		snap.Hostiles[i] = HostileState{X: h.X, Y: h.Y, Alive: h.Alive, Targeted: h.Targeted}
	}
	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		if !p.Alive {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileState{
			X: p.X, Y: p.Y, Alive: true, FromHostile: p.FromHostile,
		})
	}
	return snap
}
