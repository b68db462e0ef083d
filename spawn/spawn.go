// Package spawn implements border spawn-cell selection for the wardgrid
// generation pipeline.
package spawn

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wardgrid/grid"
)

// Sentinel errors for spawn selection.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("spawn: grid is nil")

	// ErrGoalOutOfBounds is returned when the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("spawn: goal cell out of bounds")

	// ErrOptionViolation is returned for a negative count or minimum distance.
	ErrOptionViolation = errors.New("spawn: invalid option supplied")
)

// defaultRandSeed seeds the fallback RNG when no WithRand option is given.
const defaultRandSeed = 1

// SpawnSet is an ordered sequence of spawn cells plus the single goal cell.
// Order matters: Cells[0] is the primary spawn whose corridor the remaining
// spawns converge into.
type SpawnSet struct {
	Cells []grid.Cell
	Goal  grid.Cell
}

// Len returns the number of spawn cells in the set.
func (s SpawnSet) Len() int { return len(s.Cells) }

// Primary returns the first spawn cell and true, or a zero Cell and false
// when the set is empty.
func (s SpawnSet) Primary() (grid.Cell, bool) {
	if len(s.Cells) == 0 {
		return grid.Cell{}, false
	}

	return s.Cells[0], true
}

// Secondaries returns every spawn cell after the primary. The returned slice
// aliases the set; callers must not mutate it.
func (s SpawnSet) Secondaries() []grid.Cell {
	if len(s.Cells) <= 1 {
		return nil
	}

	return s.Cells[1:]
}

// Option configures Select via functional arguments.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand supplies a custom random source for sampling; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// Select picks up to count spawn cells on the border of g, uniformly at
// random without replacement from the admissible set: border cells whose
// terrain is grass or forest and whose Manhattan distance to goal is at
// least minDistance. Returns fewer than count cells (possibly none) when
// the admissible set is smaller; that degradation is the caller's to
// detect via SpawnSet.Len, not an error.
//
// Complexity: O(W×H) time, O(candidates) memory.
func Select(g *grid.Grid, goal grid.Cell, count, minDistance int, opts ...Option) (SpawnSet, error) {
	// 1) Validate inputs.
	if g == nil {
		return SpawnSet{}, ErrNilGrid
	}
	if !g.InBounds(goal.X, goal.Y) {
		return SpawnSet{}, fmt.Errorf("%w: (%d,%d)", ErrGoalOutOfBounds, goal.X, goal.Y)
	}
	if count < 0 {
		return SpawnSet{}, fmt.Errorf("%w: count cannot be negative (%d)", ErrOptionViolation, count)
	}
	if minDistance < 0 {
		return SpawnSet{}, fmt.Errorf("%w: minDistance cannot be negative (%d)", ErrOptionViolation, minDistance)
	}

	o := options{rng: rand.New(rand.NewSource(defaultRandSeed))}
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Collect admissible border candidates in a fixed scan order.
	candidates := collectCandidates(g, goal, minDistance)

	// 3) Degraded case: fewer candidates than requested → take them all.
	if len(candidates) <= count {
		return SpawnSet{Cells: candidates, Goal: goal}, nil
	}

	// 4) Uniform sample without replacement: the first count entries of a
	//    random permutation over the candidate indices.
	cells := make([]grid.Cell, 0, count)
	for _, idx := range o.rng.Perm(len(candidates))[:count] {
		cells = append(cells, candidates[idx])
	}

	return SpawnSet{Cells: cells, Goal: goal}, nil
}

// collectCandidates scans the grid for border cells admissible as spawns.
// Only grass and forest qualify: swamp and stone borders would strand the
// road carver before it leaves the spawn.
func collectCandidates(g *grid.Grid, goal grid.Cell, minDistance int) []grid.Cell {
	var candidates []grid.Cell
	var t grid.Terrain
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if !g.IsBorder(x, y) {
				continue
			}
			t = g.TerrainAt(x, y)
			if t != grid.Grass && t != grid.Forest {
				continue
			}
			if grid.Manhattan(grid.Cell{X: x, Y: y}, goal) < minDistance {
				continue
			}
			candidates = append(candidates, grid.Cell{X: x, Y: y})
		}
	}

	return candidates
}
