package spawn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wardgrid/grid"
	"github.com/katalvlaran/wardgrid/spawn"
)

// mustGrid builds a width×height all-grass grid or fails the test.
func mustGrid(t *testing.T, width, height int) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height)
	require.NoError(t, err)

	return g
}

// TestSelect_Validation covers the sentinel error paths.
func TestSelect_Validation(t *testing.T) {
	g := mustGrid(t, 8, 8)
	goal := grid.Cell{X: 7, Y: 7}

	_, err := spawn.Select(nil, goal, 3, 4)
	assert.ErrorIs(t, err, spawn.ErrNilGrid)
	_, err = spawn.Select(g, grid.Cell{X: 8, Y: 0}, 3, 4)
	assert.ErrorIs(t, err, spawn.ErrGoalOutOfBounds)
	_, err = spawn.Select(g, goal, -1, 4)
	assert.ErrorIs(t, err, spawn.ErrOptionViolation)
	_, err = spawn.Select(g, goal, 3, -1)
	assert.ErrorIs(t, err, spawn.ErrOptionViolation)
}

// TestSelect_AdmissibilityInvariants verifies the three spawn invariants on
// every selected cell: border position, grass-or-forest terrain, and the
// minimum Manhattan distance to the goal.
func TestSelect_AdmissibilityInvariants(t *testing.T) {
	g := mustGrid(t, 12, 12)
	// Scatter some non-admissible terrain on the border.
	g.SetTerrain(0, 0, grid.Stone)
	g.SetTerrain(5, 0, grid.Swamp)
	g.SetTerrain(0, 5, grid.Forest)
	goal := grid.Cell{X: 11, Y: 11}
	const minDistance = 8

	set, err := spawn.Select(g, goal, 4, minDistance, spawn.WithRand(rand.New(rand.NewSource(11))))
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())
	assert.Equal(t, goal, set.Goal)

	seen := make(map[grid.Cell]bool, set.Len())
	for _, c := range set.Cells {
		assert.True(t, g.IsBorder(c.X, c.Y), "spawn %v not on border", c)
		terrain := g.TerrainAt(c.X, c.Y)
		assert.Contains(t, []grid.Terrain{grid.Grass, grid.Forest}, terrain, "spawn %v terrain %v", c, terrain)
		assert.GreaterOrEqual(t, grid.Manhattan(c, goal), minDistance, "spawn %v too close to goal", c)
		assert.False(t, seen[c], "spawn %v selected twice", c)
		seen[c] = true
	}
}

// TestSelect_TruncatesWhenFewCandidates checks the documented degradation:
// the result is cut to the admissible set, never padded.
func TestSelect_TruncatesWhenFewCandidates(t *testing.T) {
	g := mustGrid(t, 6, 6)
	// Stone out the whole border except two grass cells far from the goal.
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if g.IsBorder(x, y) {
				g.SetTerrain(x, y, grid.Stone)
			}
		}
	}
	g.SetTerrain(0, 0, grid.Grass)
	g.SetTerrain(0, 1, grid.Forest)

	set, err := spawn.Select(g, grid.Cell{X: 5, Y: 5}, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len(), "only two admissible cells exist")
}

// TestSelect_ZeroCount returns an empty set without error.
func TestSelect_ZeroCount(t *testing.T) {
	g := mustGrid(t, 6, 6)
	set, err := spawn.Select(g, grid.Cell{X: 5, Y: 5}, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, set.Len())

	_, ok := set.Primary()
	assert.False(t, ok, "empty set has no primary")
	assert.Nil(t, set.Secondaries())
}

// TestSelect_MinDistanceExcludesNearBorder verifies the distance filter by
// demanding the maximum possible distance.
func TestSelect_MinDistanceExcludesNearBorder(t *testing.T) {
	g := mustGrid(t, 8, 8)
	goal := grid.Cell{X: 7, Y: 7}

	// Only (0,0) sits at Manhattan distance 14.
	set, err := spawn.Select(g, goal, 3, 14)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, set.Cells[0])
}

// TestSpawnSet_PrimarySecondaries pins the ordering contract: the first
// selected cell is the primary, the rest are secondaries.
func TestSpawnSet_PrimarySecondaries(t *testing.T) {
	set := spawn.SpawnSet{
		Cells: []grid.Cell{{X: 0, Y: 3}, {X: 5, Y: 0}, {X: 0, Y: 7}},
		Goal:  grid.Cell{X: 9, Y: 9},
	}
	primary, ok := set.Primary()
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 0, Y: 3}, primary)
	assert.Equal(t, []grid.Cell{{X: 5, Y: 0}, {X: 0, Y: 7}}, set.Secondaries())
}

// TestSelect_SamplesWithoutReplacement draws repeatedly with different
// seeds and checks no duplicate ever appears.
func TestSelect_SamplesWithoutReplacement(t *testing.T) {
	g := mustGrid(t, 10, 10)
	goal := grid.Cell{X: 9, Y: 9}
	for seed := int64(0); seed < 8; seed++ {
		set, err := spawn.Select(g, goal, 6, 5, spawn.WithRand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		seen := make(map[grid.Cell]bool, set.Len())
		for _, c := range set.Cells {
			require.False(t, seen[c], "seed %d: duplicate spawn %v", seed, c)
			seen[c] = true
		}
	}
}
