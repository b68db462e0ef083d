package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wardgrid/astar"
	"github.com/katalvlaran/wardgrid/costgrid"
	"github.com/katalvlaran/wardgrid/grid"
)

// benchPlanner builds a size×size planner with mixed traversable terrain.
func benchPlanner(b *testing.B, size int) *astar.Planner {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	g, err := grid.New(size, size)
	if err != nil {
		b.Fatalf("grid.New: %v", err)
	}
	terrains := []grid.Terrain{grid.Road, grid.Grass, grid.Grass, grid.Forest, grid.Swamp}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.SetTerrain(x, y, terrains[rng.Intn(len(terrains))])
		}
	}
	cg, err := costgrid.NewFromGrid(g)
	if err != nil {
		b.Fatalf("costgrid.NewFromGrid: %v", err)
	}
	p, err := astar.NewPlanner(cg)
	if err != nil {
		b.Fatalf("astar.NewPlanner: %v", err)
	}

	return p
}

// BenchmarkFindPath_32 measures repeated corner-to-corner queries on a
// 32×32 grid, exercising the in-place node-table reset.
func BenchmarkFindPath_32(b *testing.B) {
	p := benchPlanner(b, 32)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 31, Y: 31}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.FindPath(start, goal); err != nil {
			b.Fatalf("FindPath: %v", err)
		}
	}
}

// BenchmarkFindPath_128 is the same query on a 128×128 grid.
func BenchmarkFindPath_128(b *testing.B) {
	p := benchPlanner(b, 128)
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 127, Y: 127}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.FindPath(start, goal); err != nil {
			b.Fatalf("FindPath: %v", err)
		}
	}
}
