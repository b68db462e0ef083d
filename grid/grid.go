package grid

import "fmt"

// Grid is a fixed-shape, mutable-content terrain field. Terrain content is
// mutated by the generation pipeline; the obstruction flags are mutated by
// the consumer during play. The shape never changes after construction —
// replace the whole Grid on map regeneration.
type Grid struct {
	width, height int
	terrain       []Terrain // row-major, index = y*width + x
	obstructed    []bool    // row-major, parallel to terrain
}

// New constructs a width×height Grid with every cell set to Grass and no
// obstructions. Returns ErrBadDimensions if either extent is below
// MinDimension.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}

	return &Grid{
		width:      width,
		height:     height,
		terrain:    make([]Terrain, width*height), // zero value is Grass
		obstructed: make([]bool, width*height),
	}, nil
}

// Width returns the horizontal extent of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical extent of the grid.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsBorder reports whether the in-bounds cell (x,y) lies on the outer edge
// of the grid. Panics if (x,y) is out of bounds.
func (g *Grid) IsBorder(x, y int) bool {
	g.mustContain(x, y)

	return x == 0 || x == g.width-1 || y == 0 || y == g.height-1
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// CoordinateAt converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) CoordinateAt(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// TerrainAt returns the terrain identifier of cell (x,y).
// Panics if (x,y) is out of bounds.
func (g *Grid) TerrainAt(x, y int) Terrain {
	g.mustContain(x, y)

	return g.terrain[g.Index(x, y)]
}

// SetTerrain overwrites the terrain identifier of cell (x,y).
// Panics if (x,y) is out of bounds or t is outside the enumeration.
func (g *Grid) SetTerrain(x, y int, t Terrain) {
	g.mustContain(x, y)
	if !t.Valid() {
		panic(fmt.Sprintf("grid: invalid terrain value %d at (%d,%d)", t, x, y))
	}
	g.terrain[g.Index(x, y)] = t
}

// Obstructed reports whether cell (x,y) currently carries an obstruction.
// Panics if (x,y) is out of bounds.
func (g *Grid) Obstructed(x, y int) bool {
	g.mustContain(x, y)

	return g.obstructed[g.Index(x, y)]
}

// SetObstructed toggles the obstruction flag of cell (x,y). The terrain
// identifier is untouched. Panics if (x,y) is out of bounds.
func (g *Grid) SetObstructed(x, y int, present bool) {
	g.mustContain(x, y)
	g.obstructed[g.Index(x, y)] = present
}

// mustContain panics with a descriptive message when (x,y) is out of bounds.
// Out-of-range coordinates reaching an accessor indicate a caller bug, not
// game state, so we fail loudly instead of clamping.
func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinates (%d,%d) out of range for %d×%d grid", x, y, g.width, g.height))
	}
}
