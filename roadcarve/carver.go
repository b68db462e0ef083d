package roadcarve

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/wardgrid/grid"
)

// Carver carves road corridors onto a single grid. It is cheap to construct
// and carries no per-carve state; each CarvePrimary/CarveSecondary call runs
// an independent search.
type Carver struct {
	g               *grid.Grid
	rng             *rand.Rand
	branchProb      float64
	primaryBudget   int
	secondaryBudget int
}

// NewCarver constructs a Carver over g. Iteration budgets default to
// DefaultPrimaryIterationFactor× and DefaultSecondaryIterationFactor× the
// grid area unless overridden via WithIterationBounds.
// Returns ErrNilGrid or ErrOptionViolation on invalid input.
func NewCarver(g *grid.Grid, opts ...Option) (*Carver, error) {
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

	area := g.Width() * g.Height()
	if o.PrimaryIterations == 0 {
		o.PrimaryIterations = DefaultPrimaryIterationFactor * area
	}
	if o.SecondaryIterations == 0 {
		o.SecondaryIterations = DefaultSecondaryIterationFactor * area
	}

	return &Carver{
		g:               g,
		rng:             o.Rand,
		branchProb:      o.BranchProbability,
		primaryBudget:   o.PrimaryIterations,
		secondaryBudget: o.SecondaryIterations,
	}, nil
}

// CarvePrimary searches a curved corridor from start to goal. A random
// directional bias is drawn once per call and bends the route; with the
// configured branch probability a dequeued cell expands one random neighbor
// instead of all neighbors in score order.
//
// The returned path ends at the goal on success. When the iteration budget
// runs out first, the single-cell path {start} is returned — the caller
// must treat that as "no corridor carved".
func (cv *Carver) CarvePrimary(start, goal grid.Cell) ([]grid.Cell, error) {
	if err := cv.checkEndpoints(start, goal); err != nil {
		return nil, err
	}
	r := &carve{
		cv:     cv,
		mode:   modePrimary,
		start:  start,
		goal:   goal,
		bias:   grid.Directions4[cv.rng.Intn(len(grid.Directions4))],
		budget: cv.primaryBudget,
	}

	return r.run(), nil
}

// CarveSecondary searches a corridor from start that terminates either at
// the goal or on the first existing road cell it reaches, strongly
// preferring convergence with prior corridors. No random branching is
// applied: secondary routes should merge quickly, not wander.
//
// Degraded result on budget exhaustion is the same single-cell path as
// CarvePrimary.
func (cv *Carver) CarveSecondary(start, goal grid.Cell) ([]grid.Cell, error) {
	if err := cv.checkEndpoints(start, goal); err != nil {
		return nil, err
	}
	r := &carve{
		cv:     cv,
		mode:   modeSecondary,
		start:  start,
		goal:   goal,
		budget: cv.secondaryBudget,
	}

	return r.run(), nil
}

// Apply paints path onto the grid: every cell whose current terrain is
// grass, forest or road becomes road. Swamp and stone cells are left
// untouched, truncating the visible corridor at the forbidden boundary.
// Panics if any path cell is out of bounds.
func (cv *Carver) Apply(path []grid.Cell) {
	var t grid.Terrain
	for _, c := range path {
		t = cv.g.TerrainAt(c.X, c.Y)
		if t == grid.Grass || t == grid.Forest || t == grid.Road {
			cv.g.SetTerrain(c.X, c.Y, grid.Road)
		}
	}
}

// checkEndpoints validates that both carve endpoints lie on the grid.
func (cv *Carver) checkEndpoints(start, goal grid.Cell) error {
	for _, c := range [2]grid.Cell{start, goal} {
		if !cv.g.InBounds(c.X, c.Y) {
			return fmt.Errorf("%w: (%d,%d)", ErrCellOutOfBounds, c.X, c.Y)
		}
	}

	return nil
}

// carveMode selects the scoring and termination rules of a single carve.
type carveMode int

const (
	modePrimary carveMode = iota
	modeSecondary
)

// carve encapsulates the mutable state of one corridor search: a FIFO work
// queue with score-sorted insertion, a visited set, and parent links for
// path reconstruction. Each cell is enqueued at most once, so parents are
// final when written.
type carve struct {
	cv     *Carver
	mode   carveMode
	start  grid.Cell
	goal   grid.Cell
	bias   grid.Cell // biased direction offset; primary mode only
	budget int

	visited map[grid.Cell]bool
	parent  map[grid.Cell]grid.Cell
	queue   []grid.Cell
}

// scored pairs a candidate cell with its preference score for sorting.
type scored struct {
	cell  grid.Cell
	score float64
}

// run drives the search loop until a termination cell is dequeued or the
// iteration budget is exhausted.
func (r *carve) run() []grid.Cell {
	r.visited = map[grid.Cell]bool{r.start: true}
	r.parent = make(map[grid.Cell]grid.Cell)
	r.queue = append(r.queue, r.start)

	var cur grid.Cell
	for iterations := 0; len(r.queue) > 0 && iterations < r.budget; iterations++ {
		// 1) Dequeue the oldest entry. FIFO order keeps several branches
		//    alive simultaneously; the first to terminate wins.
		cur = r.queue[0]
		r.queue = r.queue[1:]

		// 2) Termination check happens at dequeue time so the winning
		//    branch is the one that actually surfaced first.
		if r.done(cur) {
			return r.reconstruct(cur)
		}

		// 3) Expand neighbors, sorted or randomized by mode.
		r.expand(cur)
	}

	// Budget exhausted: degraded single-cell result.
	return []grid.Cell{r.start}
}

// done reports whether cur satisfies this mode's termination rule.
func (r *carve) done(cur grid.Cell) bool {
	if cur == r.goal {
		return true
	}
	// Secondary carves also terminate on any existing road cell other than
	// the start itself: that is the convergence point.
	if r.mode == modeSecondary && cur != r.start {
		return r.cv.g.TerrainAt(cur.X, cur.Y) == grid.Road
	}

	return false
}

// expand scores the unvisited in-bounds neighbors of cur and enqueues them.
// In primary mode, with probability branchProb a single uniformly random
// candidate is enqueued instead — the twist-and-turn injector. Otherwise
// all candidates enter the queue in ascending score order.
func (r *carve) expand(cur grid.Cell) {
	candidates := make([]scored, 0, len(grid.Directions4))
	var n grid.Cell
	for _, d := range grid.Directions4 {
		n = grid.Cell{X: cur.X + d.X, Y: cur.Y + d.Y}
		if !r.cv.g.InBounds(n.X, n.Y) || r.visited[n] {
			continue
		}
		candidates = append(candidates, scored{cell: n, score: r.score(n, d)})
	}
	if len(candidates) == 0 {
		return
	}

	if r.mode == modePrimary && r.cv.rng.Float64() < r.cv.branchProb {
		pick := candidates[r.cv.rng.Intn(len(candidates))]
		r.enqueue(pick.cell, cur)

		return
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })
	for _, cand := range candidates {
		r.enqueue(cand.cell, cur)
	}
}

// enqueue marks n visited, records its parent, and appends it to the queue.
func (r *carve) enqueue(n, from grid.Cell) {
	r.visited[n] = true
	r.parent[n] = from
	r.queue = append(r.queue, n)
}

// score computes the preference value of stepping from the current cell in
// direction d onto n. Lower is better.
func (r *carve) score(n, d grid.Cell) float64 {
	var s float64
	switch r.cv.g.TerrainAt(n.X, n.Y) {
	case grid.Grass:
		s = prefGrass
	case grid.Road:
		if r.mode == modeSecondary {
			s = prefRoadSecondary
		} else {
			s = prefRoadPrimary
		}
	case grid.Forest:
		s = prefForest
	default: // swamp, stone
		s = prefForbidden
	}

	switch r.mode {
	case modePrimary:
		// Curve the route toward the per-carve biased direction.
		if d == r.bias {
			s -= directionBiasBonus
		}
	case modeSecondary:
		// Nudge converging corridors toward the goal on otherwise equal
		// terrain.
		s += distanceTieBreak * float64(grid.Manhattan(n, r.goal))
	}

	return s
}

// reconstruct walks the parent links from end back to start and reverses
// the result into start→end order.
func (r *carve) reconstruct(end grid.Cell) []grid.Cell {
	path := []grid.Cell{end}
	cur := end
	for cur != r.start {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
