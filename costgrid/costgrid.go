package costgrid

import (
	"fmt"

	"github.com/katalvlaran/wardgrid/grid"
)

// CostGrid holds one traversal cost per cell, owned exclusively by the
// pathfinding subsystem. It never holds terrain identifiers: after the
// initial build (or an explicit Resync) it is mutated only through SetCost
// and SetObstruction.
type CostGrid struct {
	width, height int
	base          []int // row-major base cost snapshot taken at build time
	cost          []int // row-major effective cost; invariant: cost[i] ≥ base[i]
	threshold     int   // costs ≥ threshold are non-traversable
	surcharge     int   // added while a cell is obstructed
}

// NewFromGrid builds a CostGrid from the finished terrain grid g, honoring
// any obstruction flags already present on it. Returns ErrNilGrid for a nil
// grid and ErrOptionViolation for invalid options.
// Complexity: O(W×H) time and memory.
func NewFromGrid(g *grid.Grid, opts ...Option) (*CostGrid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cg := &CostGrid{
		width:     g.Width(),
		height:    g.Height(),
		base:      make([]int, g.Width()*g.Height()),
		cost:      make([]int, g.Width()*g.Height()),
		threshold: o.ImpassableThreshold,
		surcharge: o.ObstructionSurcharge,
	}
	cg.snapshot(g)

	return cg, nil
}

// Resync re-derives every cell's base and effective cost from g in one
// sweep. Use it when the consumer has mutated several obstructions (or the
// terrain itself) and wants a single bulk synchronization instead of
// per-cell SetObstruction calls. Returns ErrNilGrid for a nil grid.
// Complexity: O(W×H).
func (cg *CostGrid) Resync(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	cg.snapshot(g)

	return nil
}

// snapshot copies base costs and obstruction surcharges out of g.
func (cg *CostGrid) snapshot(g *grid.Grid) {
	var idx int
	for y := 0; y < cg.height; y++ {
		for x := 0; x < cg.width; x++ {
			idx = g.Index(x, y)
			cg.base[idx] = BaseCost(g.TerrainAt(x, y))
			cg.cost[idx] = cg.base[idx]
			if g.Obstructed(x, y) {
				cg.cost[idx] += cg.surcharge
			}
		}
	}
}

// Width returns the horizontal extent of the cost field.
func (cg *CostGrid) Width() int { return cg.width }

// Height returns the vertical extent of the cost field.
func (cg *CostGrid) Height() int { return cg.height }

// InBounds reports whether (x,y) lies within the cost field.
// Complexity: O(1).
func (cg *CostGrid) InBounds(x, y int) bool {
	return x >= 0 && x < cg.width && y >= 0 && y < cg.height
}

// Cost returns the effective traversal cost of entering cell (x,y).
// Panics if (x,y) is out of bounds.
func (cg *CostGrid) Cost(x, y int) int {
	cg.mustContain(x, y)

	return cg.cost[y*cg.width+x]
}

// BaseCostAt returns the base cost snapshot of cell (x,y), before any
// obstruction surcharge. Panics if (x,y) is out of bounds.
func (cg *CostGrid) BaseCostAt(x, y int) int {
	cg.mustContain(x, y)

	return cg.base[y*cg.width+x]
}

// SetCost overwrites the effective cost of cell (x,y). The value may not
// drop below the cell's base cost; that would let an obstruction toggle
// make terrain cheaper than it ever was. Panics on out-of-bounds
// coordinates or a value below the base cost.
func (cg *CostGrid) SetCost(x, y, value int) {
	cg.mustContain(x, y)
	idx := y*cg.width + x
	if value < cg.base[idx] {
		panic(fmt.Sprintf("costgrid: cost %d below base %d at (%d,%d)", value, cg.base[idx], x, y))
	}
	cg.cost[idx] = value
}

// SetObstruction recomputes the effective cost of cell (x,y) as base cost
// plus the configured surcharge when present is true, or back to the bare
// base cost when false. Toggling is idempotent per state.
// Panics if (x,y) is out of bounds.
func (cg *CostGrid) SetObstruction(x, y int, present bool) {
	cg.mustContain(x, y)
	idx := y*cg.width + x
	cg.cost[idx] = cg.base[idx]
	if present {
		cg.cost[idx] += cg.surcharge
	}
}

// Traversable reports whether cell (x,y) can be entered at all, i.e. its
// effective cost is below the impassable threshold.
// Panics if (x,y) is out of bounds.
func (cg *CostGrid) Traversable(x, y int) bool {
	cg.mustContain(x, y)

	return cg.cost[y*cg.width+x] < cg.threshold
}

// ImpassableThreshold returns the configured non-traversable cost boundary.
func (cg *CostGrid) ImpassableThreshold() int { return cg.threshold }

// mustContain panics with a descriptive message when (x,y) is out of bounds.
func (cg *CostGrid) mustContain(x, y int) {
	if !cg.InBounds(x, y) {
		panic(fmt.Sprintf("costgrid: coordinates (%d,%d) out of range for %d×%d grid", x, y, cg.width, cg.height))
	}
}
