package sim

// IssueMove orders every alive unit to path toward the world-space target.
// The target is clamped into grid bounds. Each unit's path is replaced
// wholesale and its cursor reset; units with no route receive an empty path
// and simply hold position.
func (w *World) IssueMove(wx, wy float64) {
	gx, gy := WorldToCell(wx, wy)
	gx, gy = w.Grid.ClampCell(gx, gy)
	goal := Cell{X: gx, Y: gy}

	for i := range w.Units {
		u := &w.Units[i]
		if !u.Alive {
			continue
		}
		sx, sy := WorldToCell(u.X, u.Y)
		w.Stats.PathRequests++
		p, capped := FindPath(w.Grid, Cell{X: sx, Y: sy}, goal)
		if capped {
			w.Stats.PathsCapped++
		}
		u.Path = p
		u.PathIdx = 0
	}
}
