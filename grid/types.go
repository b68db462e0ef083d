// Package grid defines the core Terrain and Cell types plus sentinel errors
// for the grid subpackage of github.com/katalvlaran/wardgrid.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a requested grid smaller than MinDimension
	// on either axis.
	ErrBadDimensions = errors.New("grid: width and height must each be at least 1")
)

// MinDimension is the smallest allowed grid extent on either axis.
// A 1×1 grid has no neighbor pairs but is considered valid.
const MinDimension = 1

// Terrain is the closed category of a cell's ground type.
// The zero value is Grass so a freshly allocated field needs no fill pass.
type Terrain int

const (
	// Grass is the default terrain: open ground, freely traversable.
	Grass Terrain = iota
	// Road marks carved corridors, the cheapest terrain to traverse.
	Road
	// Forest is traversable at an elevated cost.
	Forest
	// Swamp is traversable only at a steep cost.
	Swamp
	// Stone is effectively impassable.
	Stone

	// terrainCount bounds the enumeration; keep it last.
	terrainCount
)

// terrainNames maps Terrain values to their canonical labels.
var terrainNames = [terrainCount]string{"grass", "road", "forest", "swamp", "stone"}

// String returns the canonical lower-case label for t,
// or "terrain(?)" for values outside the enumeration.
func (t Terrain) String() string {
	if t < 0 || t >= terrainCount {
		return "terrain(?)"
	}

	return terrainNames[t]
}

// Valid reports whether t is a member of the closed enumeration.
func (t Terrain) Valid() bool { return t >= 0 && t < terrainCount }

// Cell addresses one grid position by integer coordinates.
type Cell struct {
	X, Y int
}

// Manhattan returns the Manhattan distance |a.X−b.X| + |a.Y−b.Y| between two
// cells: the exact step count of any monotone 4-connected walk between them.
// Complexity: O(1).
func Manhattan(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Directions4 lists the four orthogonal neighbor offsets in the fixed
// exploration order (west, east, north, south) used by every wardgrid
// traversal. The order is load-bearing for reproducible searches.
var Directions4 = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
