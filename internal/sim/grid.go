package sim

// Tile classifies one cell of the battlefield grid.
type Tile uint8

const (
	TileOpen Tile = iota // walkable ground
	TileRock             // interior obstacle
	TileWall             // perimeter wall
)

// CellSize is the width/height of one grid cell in world pixels.
const CellSize = 16

// Grid is the static battlefield tile map. Row-major, immutable once
// GenerateMap returns.
type Grid struct {
	Cols  int
	Rows  int
	tiles []Tile
}

// NewGrid creates an all-open grid.
func NewGrid(cols, rows int) *Grid {
	return &Grid{Cols: cols, Rows: rows, tiles: make([]Tile, cols*rows)}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// Classify returns the tile at (x, y). Fails closed: any out-of-range
// coordinate reports TileWall so movement and search treat it as blocked.
func (g *Grid) Classify(x, y int) Tile {
	if !g.inBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.Cols+x]
}

// IsBlocked returns true for obstacle tiles and out-of-range coordinates.
func (g *Grid) IsBlocked(x, y int) bool {
	return g.Classify(x, y) != TileOpen
}

func (g *Grid) set(x, y int, t Tile) {
	if !g.inBounds(x, y) {
		return
	}
	g.tiles[y*g.Cols+x] = t
}

// ClampCell clamps a cell coordinate into grid bounds.
func (g *Grid) ClampCell(x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if x >= g.Cols {
		x = g.Cols - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.Rows {
		y = g.Rows - 1
	}
	return x, y
}

// Tiles returns a copy of the tile contents for snapshots.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// WorldToCell converts world pixel coordinates to grid cell coordinates.
func WorldToCell(wx, wy float64) (int, int) {
	return int(wx) / CellSize, int(wy) / CellSize
}

// CellToWorld converts grid cell coordinates to the world pixel centre.
func CellToWorld(cx, cy int) (float64, float64) {
	return float64(cx*CellSize) + float64(CellSize)/2, float64(cy*CellSize) + float64(CellSize)/2
}

// mapSeed fixes the obstacle layout. The map content never varies between
// runs so path shapes stay reproducible.
const mapSeed = 0x5eed5eed

// GenerateMap builds the standard battlefield: a wall border, scattered rock
// clusters, two open road lanes crossing the interior, and a cleared spawn
// pocket connected to the roads.
func GenerateMap(cols, rows int) *Grid {
	g := NewGrid(cols, rows)

	for x := 0; x < cols; x++ {
		g.set(x, 0, TileWall)
		g.set(x, rows-1, TileWall)
	}
	for y := 0; y < rows; y++ {
		g.set(0, y, TileWall)
		g.set(cols-1, y, TileWall)
	}

	rng := NewLCG(mapSeed)
	clusters := (cols * rows) / 78
	for i := 0; i < clusters; i++ {
		cx := 2 + rng.Intn(cols-4)
		cy := 2 + rng.Intn(rows-4)
		w := 1 + rng.Intn(4)
		h := 1 + rng.Intn(3)
		for y := cy; y < cy+h && y < rows-1; y++ {
			for x := cx; x < cx+w && x < cols-1; x++ {
				g.set(x, y, TileRock)
			}
		}
	}

	// Road lanes carved after the clusters guarantee open routes across the
	// interior regardless of where the blobs landed.
	roadY := rows / 2
	roadX := cols / 2
	for x := 1; x < cols-1; x++ {
		g.set(x, roadY, TileOpen)
	}
	for y := 1; y < rows-1; y++ {
		g.set(roadX, y, TileOpen)
	}

	// Spawn pocket for the squad, plus a connector lane up to the horizontal
	// road so the squad is never boxed in at start.
	for y := rows - 8; y < rows-2; y++ {
		for x := 2; x < 9; x++ {
			g.set(x, y, TileOpen)
		}
	}
	for y := roadY; y < rows-2; y++ {
		g.set(4, y, TileOpen)
	}

	return g
}
