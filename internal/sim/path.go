package sim

import "container/heap"

// MaxPathLen caps the number of waypoints a single path may carry. Longer
// paths are truncated at the cap; the unit simply stops early. Accepted
// degraded behaviour, never an error.
const MaxPathLen = 256

// Cell is an integer grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type pathNode struct {
	cell   Cell
	g      float64 // cumulative step cost from start
	f      float64 // g + heuristic estimate to goal
	parent *pathNode
	seq    int // insertion order, breaks f ties (stable expansion)
	index  int // heap index
}

type frontier []*pathNode

func (fr frontier) Len() int { return len(fr) }
func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	return fr[i].seq < fr[j].seq
}
func (fr frontier) Swap(i, j int) {
	fr[i], fr[j] = fr[j], fr[i]
	fr[i].index = i
	fr[j].index = j
}
func (fr *frontier) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*fr)
	*fr = append(*fr, n)
}
func (fr *frontier) Pop() any {
	old := *fr
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*fr = old[:len(old)-1]
	return n
}

var pathDirs = [8]struct {
	dx, dy int
	cost   float64
}{
	{1, 0, 1.0}, {-1, 0, 1.0}, {0, 1, 1.0}, {0, -1, 1.0},
	{1, 1, 1.4}, {1, -1, 1.4}, {-1, 1, 1.4}, {-1, -1, 1.4},
}

// manhattan is the search heuristic. It is NOT admissible for 8-way movement
// with 1.4-cost diagonals, so the search can return slightly non-optimal
// paths in some layouts. That is a known, accepted approximation: the
// resulting path shapes are part of the sim's observable behaviour, so do not
// "fix" this to octile without re-deriving the scenario expectations.
func manhattan(a, b Cell) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// FindPath runs a cost-first search over the 8-connected grid and returns the
// waypoint sequence start→goal inclusive, or nil when the goal is blocked or
// unreachable (a normal outcome, not an error). capped reports whether the
// result was truncated at MaxPathLen. All scratch state is call-scoped, so
// concurrent calls for different units are independent.
func FindPath(g *Grid, start, goal Cell) (path []Cell, capped bool) {
	if g.IsBlocked(goal.X, goal.Y) {
		return nil, false
	}

	key := func(c Cell) int { return c.Y*g.Cols + c.X }

	seq := 0
	startNode := &pathNode{cell: start, f: manhattan(start, goal)}
	fr := &frontier{startNode}
	heap.Init(fr)

	closed := make(map[int]bool)
	best := map[int]float64{key(start): 0}

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*pathNode)
		if cur.cell == goal {
			return buildPath(cur)
		}
		k := key(cur.cell)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range pathDirs {
			n := Cell{X: cur.cell.X + d.dx, Y: cur.cell.Y + d.dy}
			if g.IsBlocked(n.X, n.Y) {
				continue
			}
			nk := key(n)
			if closed[nk] {
				continue
			}
			ng := cur.g + d.cost
			if prev, ok := best[nk]; ok && ng >= prev {
				continue
			}
			best[nk] = ng
			seq++
			heap.Push(fr, &pathNode{
				cell:   n,
				g:      ng,
				f:      ng + manhattan(n, goal),
				parent: cur,
				seq:    seq,
			})
		}
	}
	return nil, false
}

// buildPath walks parent links goal→start, reverses into start→goal order,
// and truncates at MaxPathLen keeping the start-side prefix. The second
// result reports whether truncation happened.
func buildPath(end *pathNode) ([]Cell, bool) {
	var cells []Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	if len(cells) > MaxPathLen {
		return cells[:MaxPathLen], true
	}
	return cells, false
}

// PathCost sums the per-step costs of a waypoint sequence (1.0 cardinal,
// 1.4 diagonal).
func PathCost(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		if path[i].X != path[i-1].X && path[i].Y != path[i-1].Y {
			total += 1.4
		} else {
			total += 1.0
		}
	}
	return total
}
