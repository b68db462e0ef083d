// Package regiongrow implements randomized flood-fill painting of clustered
// terrain regions, the first stage of the wardgrid generation pipeline.
package regiongrow

import (
	"math/rand"

	"github.com/katalvlaran/wardgrid/grid"
)

// Grow paints up to targetSize cells with terrain t, flooding outward from
// seed. A cell is painted only if its current terrain is in the allowed
// source set; each successfully painted cell's four neighbors join the
// frontier independently with the configured growth probability, producing
// organic, non-convex region shapes.
//
// Returns the number of cells actually painted. An under-sized cluster
// (frontier exhausted before targetSize) is not an error, and a
// non-positive targetSize paints nothing and leaves the grid untouched.
//
// Complexity: O(W×H) worst-case time and memory.
func Grow(g *grid.Grid, seed grid.Cell, t grid.Terrain, targetSize int, opts ...Option) (int, error) {
	// 1) Validate inputs before touching state.
	if g == nil {
		return 0, ErrNilGrid
	}
	if !t.Valid() {
		return 0, ErrInvalidTerrain
	}
	if !g.InBounds(seed.X, seed.Y) {
		return 0, ErrSeedOutOfBounds
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 3) Degenerate request: nothing to paint.
	if targetSize <= 0 {
		return 0, nil
	}

	f := &filler{
		g:       g,
		paint:   t,
		target:  targetSize,
		allowed: sourceSet(o.AllowedSources),
		prob:    o.GrowthProbability,
		rng:     o.Rand,
		visited: make(map[grid.Cell]bool, targetSize*2),
		queue:   make([]grid.Cell, 0, targetSize),
	}

	// 4) Seed the frontier and flood.
	f.visited[seed] = true
	f.queue = append(f.queue, seed)
	f.flood()

	return f.painted, nil
}

// filler encapsulates mutable flood-fill state for a single Grow call.
type filler struct {
	g       *grid.Grid
	paint   grid.Terrain
	target  int
	allowed map[grid.Terrain]bool
	prob    float64
	rng     *rand.Rand
	visited map[grid.Cell]bool
	queue   []grid.Cell
	painted int
}

// flood processes the frontier until the target size is reached or the
// queue drains. Cells are screened at dequeue time: a cell whose terrain is
// not an allowed source is dropped without expanding its neighbors, so
// clusters naturally stop at stone and road boundaries.
func (f *filler) flood() {
	var c grid.Cell
	for len(f.queue) > 0 && f.painted < f.target {
		// 1) Dequeue the oldest frontier cell (FIFO keeps growth breadth-first).
		c = f.queue[0]
		f.queue = f.queue[1:]

		// 2) Skip cells this layer may not overwrite.
		if !f.allowed[f.g.TerrainAt(c.X, c.Y)] {
			continue
		}

		// 3) Paint and count.
		f.g.SetTerrain(c.X, c.Y, f.paint)
		f.painted++

		// 4) Enqueue each orthogonal neighbor independently with probability
		//    prob. The per-neighbor coin flip, not the visited set, is what
		//    produces ragged organic outlines.
		for _, d := range grid.Directions4 {
			n := grid.Cell{X: c.X + d.X, Y: c.Y + d.Y}
			if !f.g.InBounds(n.X, n.Y) || f.visited[n] {
				continue
			}
			if f.rng.Float64() < f.prob {
				f.visited[n] = true
				f.queue = append(f.queue, n)
			}
		}
	}
}

// sourceSet converts a terrain list into a membership set.
func sourceSet(sources []grid.Terrain) map[grid.Terrain]bool {
	set := make(map[grid.Terrain]bool, len(sources))
	for _, s := range sources {
		set[s] = true
	}

	return set
}
