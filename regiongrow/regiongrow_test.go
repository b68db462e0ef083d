package regiongrow_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wardgrid/grid"
	"github.com/katalvlaran/wardgrid/regiongrow"
)

// mustGrid builds a width×height all-grass grid or fails the test.
func mustGrid(t *testing.T, width, height int) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// countTerrain tallies the cells carrying terrain want.
func countTerrain(g *grid.Grid, want grid.Terrain) int {
	var n int
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.TerrainAt(x, y) == want {
				n++
			}
		}
	}

	return n
}

// TestGrow_Validation covers the sentinel error paths.
func TestGrow_Validation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	seed := grid.Cell{X: 2, Y: 2}

	if _, err := regiongrow.Grow(nil, seed, grid.Forest, 4); !errors.Is(err, regiongrow.ErrNilGrid) {
		t.Errorf("nil grid error = %v; want ErrNilGrid", err)
	}
	if _, err := regiongrow.Grow(g, grid.Cell{X: 9, Y: 0}, grid.Forest, 4); !errors.Is(err, regiongrow.ErrSeedOutOfBounds) {
		t.Errorf("out-of-bounds seed error = %v; want ErrSeedOutOfBounds", err)
	}
	if _, err := regiongrow.Grow(g, seed, grid.Terrain(42), 4); !errors.Is(err, regiongrow.ErrInvalidTerrain) {
		t.Errorf("invalid terrain error = %v; want ErrInvalidTerrain", err)
	}
	if _, err := regiongrow.Grow(g, seed, grid.Forest, 4, regiongrow.WithGrowthProbability(1.5)); !errors.Is(err, regiongrow.ErrOptionViolation) {
		t.Errorf("bad probability error = %v; want ErrOptionViolation", err)
	}
	if _, err := regiongrow.Grow(g, seed, grid.Forest, 4, regiongrow.WithAllowedSources()); !errors.Is(err, regiongrow.ErrOptionViolation) {
		t.Errorf("empty sources error = %v; want ErrOptionViolation", err)
	}
}

// TestGrow_ZeroTarget verifies that a zero target paints nothing and leaves
// the grid untouched.
func TestGrow_ZeroTarget(t *testing.T) {
	g := mustGrid(t, 5, 5)
	painted, err := regiongrow.Grow(g, grid.Cell{X: 2, Y: 2}, grid.Forest, 0)
	if err != nil {
		t.Fatalf("Grow error: %v", err)
	}
	if painted != 0 {
		t.Errorf("painted = %d; want 0", painted)
	}
	if n := countTerrain(g, grid.Forest); n != 0 {
		t.Errorf("forest cells = %d after zero-target grow; want 0", n)
	}
}

// TestGrow_ZeroProbability paints exactly the seed: no neighbor ever joins
// the frontier.
func TestGrow_ZeroProbability(t *testing.T) {
	g := mustGrid(t, 5, 5)
	painted, err := regiongrow.Grow(g, grid.Cell{X: 2, Y: 2}, grid.Forest, 10,
		regiongrow.WithGrowthProbability(0))
	if err != nil {
		t.Fatalf("Grow error: %v", err)
	}
	if painted != 1 {
		t.Errorf("painted = %d; want 1 (seed only)", painted)
	}
	if g.TerrainAt(2, 2) != grid.Forest {
		t.Error("seed cell not painted")
	}
}

// TestGrow_FullProbability floods deterministically: with p=1 the fill is
// plain BFS and paints exactly the target size on a large-enough field.
func TestGrow_FullProbability(t *testing.T) {
	g := mustGrid(t, 9, 9)
	const target = 12
	painted, err := regiongrow.Grow(g, grid.Cell{X: 4, Y: 4}, grid.Swamp, target,
		regiongrow.WithGrowthProbability(1))
	if err != nil {
		t.Fatalf("Grow error: %v", err)
	}
	if painted != target {
		t.Errorf("painted = %d; want %d", painted, target)
	}
	if n := countTerrain(g, grid.Swamp); n != target {
		t.Errorf("swamp cells = %d; want %d", n, target)
	}
}

// TestGrow_RespectsAllowedSources verifies that a restricted layer never
// paints over terrain outside its source set and that such cells do not
// expand the frontier.
func TestGrow_RespectsAllowedSources(t *testing.T) {
	g := mustGrid(t, 7, 7)
	// Wall of stone splitting the field at x=3.
	for y := 0; y < 7; y++ {
		g.SetTerrain(3, y, grid.Stone)
	}

	painted, err := regiongrow.Grow(g, grid.Cell{X: 1, Y: 3}, grid.Swamp, 100,
		regiongrow.WithGrowthProbability(1),
		regiongrow.WithAllowedSources(grid.Grass, grid.Forest),
	)
	if err != nil {
		t.Fatalf("Grow error: %v", err)
	}

	// The left half has 3×7 = 21 grass cells; the wall stops the flood.
	if painted != 21 {
		t.Errorf("painted = %d; want 21 (left half only)", painted)
	}
	for y := 0; y < 7; y++ {
		if g.TerrainAt(3, y) != grid.Stone {
			t.Fatalf("stone wall overwritten at (3,%d)", y)
		}
		for x := 4; x < 7; x++ {
			if g.TerrainAt(x, y) == grid.Swamp {
				t.Fatalf("swamp leaked past the wall to (%d,%d)", x, y)
			}
		}
	}
}

// TestGrow_UndersizedClusterAccepted checks the documented degradation: a
// frontier exhausted before the target is not an error.
func TestGrow_UndersizedClusterAccepted(t *testing.T) {
	g := mustGrid(t, 5, 5)
	// Box the seed in with stone so only the seed itself is paintable.
	for _, c := range []grid.Cell{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}} {
		g.SetTerrain(c.X, c.Y, grid.Stone)
	}
	painted, err := regiongrow.Grow(g, grid.Cell{X: 2, Y: 2}, grid.Forest, 50,
		regiongrow.WithGrowthProbability(1))
	if err != nil {
		t.Fatalf("Grow error: %v", err)
	}
	if painted != 1 {
		t.Errorf("painted = %d; want 1 (boxed-in seed)", painted)
	}
}

// TestGrow_LayeringOverwrite mirrors the generation pipeline's layering
// rule: a later layer overwrites an earlier one only where its source set
// allows.
func TestGrow_LayeringOverwrite(t *testing.T) {
	g := mustGrid(t, 9, 9)
	rng := rand.New(rand.NewSource(3))

	if _, err := regiongrow.Grow(g, grid.Cell{X: 4, Y: 4}, grid.Forest, 15,
		regiongrow.WithGrowthProbability(1), regiongrow.WithRand(rng)); err != nil {
		t.Fatalf("forest layer error: %v", err)
	}
	forestBefore := countTerrain(g, grid.Forest)

	// Swamp may reclaim forest ground (forest is in its source set).
	if _, err := regiongrow.Grow(g, grid.Cell{X: 4, Y: 4}, grid.Swamp, 5,
		regiongrow.WithGrowthProbability(1), regiongrow.WithRand(rng),
		regiongrow.WithAllowedSources(grid.Grass, grid.Forest)); err != nil {
		t.Fatalf("swamp layer error: %v", err)
	}

	if got := countTerrain(g, grid.Swamp); got != 5 {
		t.Errorf("swamp cells = %d; want 5", got)
	}
	if got := countTerrain(g, grid.Forest); got >= forestBefore {
		t.Errorf("forest cells = %d; want fewer than %d (swamp overwrote some)", got, forestBefore)
	}
}
