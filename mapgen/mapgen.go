package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wardgrid/astar"
	"github.com/katalvlaran/wardgrid/costgrid"
	"github.com/katalvlaran/wardgrid/grid"
	"github.com/katalvlaran/wardgrid/regiongrow"
	"github.com/katalvlaran/wardgrid/roadcarve"
	"github.com/katalvlaran/wardgrid/spawn"
)

// Map bundles the products of one generation run. Exactly one session owns
// a Map; regeneration replaces it wholesale.
type Map struct {
	// Grid is the finished terrain field. The consumer reads terrain for
	// rendering and toggles obstruction flags through SetObstruction only.
	Grid *grid.Grid
	// Spawns is the ordered spawn set; Cells[0] is the primary spawn.
	Spawns spawn.SpawnSet
	// Costs is the traversal-cost layer derived from Grid.
	Costs *costgrid.CostGrid
	// Planner answers shortest-path queries over Costs.
	Planner *astar.Planner
}

// SetObstruction toggles an obstruction on cell (x,y), updating the grid
// flag and recomputing the cell's cost (base plus surcharge when present)
// in one step. Paths returned before the toggle are not invalidated; the
// consumer re-issues FindPath for any agent whose route may cross (x,y).
// Panics if (x,y) is out of bounds.
func (m *Map) SetObstruction(x, y int, present bool) {
	m.Grid.SetObstructed(x, y, present)
	m.Costs.SetObstruction(x, y, present)
}

// FindPath is shorthand for m.Planner.FindPath.
func (m *Map) FindPath(start, goal grid.Cell) ([]grid.Cell, error) {
	return m.Planner.FindPath(start, goal)
}

// Goal returns the goal cell, fixed at the grid's far corner.
func (m *Map) Goal() grid.Cell { return m.Spawns.Goal }

// Generate runs the full pipeline and returns a fresh Map:
//
//  1. allocate an all-grass width×height grid;
//  2. paint the cluster layers in order;
//  3. select border spawns (degrades silently to fewer than requested);
//  4. carve the primary corridor from the first spawn to the goal at
//     (width−1, height−1), then a converging corridor from every later
//     spawn;
//  5. promote the goal cell to road, and every grass spawn to road (forest
//     spawns keep their terrain — traffic may originate on forest);
//  6. derive the cost grid and planner.
//
// Returns ErrMapTooSmall for dimensions below MinMapDimension and
// ErrOptionViolation for invalid options.
func Generate(width, height int, opts ...Option) (*Map, error) {
	// 1) Validate dimensions and options.
	if width < MinMapDimension || height < MinMapDimension {
		return nil, fmt.Errorf("%w: got %d×%d, need at least %d×%d",
			ErrMapTooSmall, width, height, MinMapDimension, MinMapDimension)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Fresh all-grass field.
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	// 3) Clustered terrain layers, fixed order.
	if err = paintLayers(g, o.Layers, o.Rand); err != nil {
		return nil, err
	}

	// 4) Spawn selection happens before carving: admissibility is judged on
	//    pre-carve terrain.
	goal := grid.Cell{X: width - 1, Y: height - 1}
	spawns, err := spawn.Select(g, goal, o.SpawnCount, o.MinSpawnDistance, spawn.WithRand(o.Rand))
	if err != nil {
		return nil, err
	}

	// 5) Road carving: primary first, then converging secondaries.
	if err = carveRoads(g, spawns, o); err != nil {
		return nil, err
	}

	// 6) The goal is always road; grass spawns are promoted, forest spawns
	//    keep their terrain.
	g.SetTerrain(goal.X, goal.Y, grid.Road)
	for _, s := range spawns.Cells {
		if g.TerrainAt(s.X, s.Y) == grid.Grass {
			g.SetTerrain(s.X, s.Y, grid.Road)
		}
	}

	// 7) Cost layer and planner over the finished field.
	costs, err := costgrid.NewFromGrid(g, costOptions(o)...)
	if err != nil {
		return nil, err
	}
	planner, err := astar.NewPlanner(costs)
	if err != nil {
		return nil, err
	}

	return &Map{Grid: g, Spawns: spawns, Costs: costs, Planner: planner}, nil
}

// paintLayers seeds and grows every cluster of every layer. Seeds stay
// ClusterSeedMargin cells inside the border; under-sized clusters are
// accepted silently.
func paintLayers(g *grid.Grid, layers []ClusterSpec, rng *rand.Rand) error {
	var clusters, size int
	var seed grid.Cell
	for _, layer := range layers {
		clusters = intBetween(rng, layer.MinClusters, layer.MaxClusters)
		for i := 0; i < clusters; i++ {
			seed = grid.Cell{
				X: ClusterSeedMargin + rng.Intn(g.Width()-2*ClusterSeedMargin),
				Y: ClusterSeedMargin + rng.Intn(g.Height()-2*ClusterSeedMargin),
			}
			size = intBetween(rng, layer.MinSize, layer.MaxSize)

			growOpts := []regiongrow.Option{
				regiongrow.WithGrowthProbability(layer.GrowthProbability),
				regiongrow.WithRand(rng),
			}
			if len(layer.AllowedSources) > 0 {
				growOpts = append(growOpts, regiongrow.WithAllowedSources(layer.AllowedSources...))
			}
			if _, err := regiongrow.Grow(g, seed, layer.Terrain, size, growOpts...); err != nil {
				return err
			}
		}
	}

	return nil
}

// carveRoads runs the primary and secondary carves and paints their paths.
// A degraded single-cell carve result paints nothing beyond the spawn.
func carveRoads(g *grid.Grid, spawns spawn.SpawnSet, o Options) error {
	primary, ok := spawns.Primary()
	if !ok {
		return nil // no admissible spawns at all; the degraded map stands
	}

	carveOpts := []roadcarve.Option{roadcarve.WithRand(o.Rand)}
	if o.BranchProbability >= 0 {
		carveOpts = append(carveOpts, roadcarve.WithBranchProbability(o.BranchProbability))
	}
	if o.PrimaryIterations > 0 {
		carveOpts = append(carveOpts, roadcarve.WithIterationBounds(o.PrimaryIterations, o.SecondaryIterations))
	}
	carver, err := roadcarve.NewCarver(g, carveOpts...)
	if err != nil {
		return err
	}

	path, err := carver.CarvePrimary(primary, spawns.Goal)
	if err != nil {
		return err
	}
	carver.Apply(path)

	for _, s := range spawns.Secondaries() {
		if path, err = carver.CarveSecondary(s, spawns.Goal); err != nil {
			return err
		}
		carver.Apply(path)
	}

	return nil
}

// costOptions translates the generation options into costgrid options,
// leaving defaults in place where the caller did not override.
func costOptions(o Options) []costgrid.Option {
	var opts []costgrid.Option
	if o.ImpassableThreshold > 0 {
		opts = append(opts, costgrid.WithImpassableThreshold(o.ImpassableThreshold))
	}
	if o.ObstructionSurcharge >= 0 {
		opts = append(opts, costgrid.WithObstructionSurcharge(o.ObstructionSurcharge))
	}

	return opts
}

// intBetween draws a uniform integer from [lo, hi] inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}
