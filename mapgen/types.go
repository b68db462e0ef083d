// Package mapgen defines the generation configuration surface: cluster
// layer specifications, tunable options, and sentinel errors.
package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wardgrid/grid"
)

// Sentinel errors for map generation.
var (
	// ErrMapTooSmall indicates dimensions below MinMapDimension.
	ErrMapTooSmall = errors.New("mapgen: map dimensions below minimum")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mapgen: invalid option supplied")
)

// MinMapDimension is the smallest supported extent on either axis. Cluster
// seeds are drawn from the interior margin [ClusterSeedMargin, dim−3], which
// needs at least this much room.
const MinMapDimension = 5

// ClusterSeedMargin keeps cluster seed points off the border so regions
// grow inward instead of hugging the edge.
const ClusterSeedMargin = 2

// Default spawn constraints.
const (
	// DefaultSpawnCount is the number of border spawn cells requested.
	DefaultSpawnCount = 3
	// DefaultMinSpawnDistance is the minimum Manhattan distance from any
	// spawn to the goal corner.
	DefaultMinSpawnDistance = 8
)

// defaultRandSeed seeds the fallback RNG when neither WithRand nor WithSeed
// is given, keeping unconfigured runs reproducible.
const defaultRandSeed = 1

// Default cluster layer parameters, in layering order. Later layers may
// overwrite earlier ones subject to their allowed-source filter; swamp is
// restricted to grass/forest so a forest→swamp→forest cycle cannot occur.
const (
	forestMinClusters, forestMaxClusters = 6, 7
	forestMinSize, forestMaxSize         = 12, 20
	forestGrowthProbability              = 0.6

	swampMinClusters, swampMaxClusters = 5, 6
	swampMinSize, swampMaxSize         = 10, 18
	swampGrowthProbability             = 0.6

	stoneMinClusters, stoneMaxClusters = 4, 5
	stoneMinSize, stoneMaxSize         = 15, 30
	// Stone grows with a higher probability for denser, rounder mountains.
	stoneGrowthProbability = 0.7
)

// ClusterSpec describes one terrain layer of the generation pipeline: how
// many clusters to seed, how large each may grow, and over which terrains.
type ClusterSpec struct {
	// Terrain is the paint applied by this layer.
	Terrain grid.Terrain
	// MinClusters..MaxClusters bounds the cluster count (inclusive).
	MinClusters, MaxClusters int
	// MinSize..MaxSize bounds each cluster's target size (inclusive).
	MinSize, MaxSize int
	// GrowthProbability is the per-neighbor frontier chance.
	GrowthProbability float64
	// AllowedSources restricts what this layer may paint over; nil means
	// the regiongrow default (grass, forest, swamp).
	AllowedSources []grid.Terrain
}

// validate reports the first violated constraint of the spec, or nil.
func (cs ClusterSpec) validate() error {
	switch {
	case !cs.Terrain.Valid():
		return fmt.Errorf("%w: cluster terrain %d invalid", ErrOptionViolation, cs.Terrain)
	case cs.MinClusters < 0 || cs.MaxClusters < cs.MinClusters:
		return fmt.Errorf("%w: cluster count range [%d,%d]", ErrOptionViolation, cs.MinClusters, cs.MaxClusters)
	case cs.MinSize < 0 || cs.MaxSize < cs.MinSize:
		return fmt.Errorf("%w: cluster size range [%d,%d]", ErrOptionViolation, cs.MinSize, cs.MaxSize)
	case cs.GrowthProbability < 0 || cs.GrowthProbability > 1:
		return fmt.Errorf("%w: growth probability %g", ErrOptionViolation, cs.GrowthProbability)
	}

	return nil
}

// DefaultClusterLayers returns the standard three-layer terrain recipe in
// its fixed order: forest, swamp (grass/forest sources only), stone.
func DefaultClusterLayers() []ClusterSpec {
	return []ClusterSpec{
		{
			Terrain:           grid.Forest,
			MinClusters:       forestMinClusters,
			MaxClusters:       forestMaxClusters,
			MinSize:           forestMinSize,
			MaxSize:           forestMaxSize,
			GrowthProbability: forestGrowthProbability,
		},
		{
			Terrain:           grid.Swamp,
			MinClusters:       swampMinClusters,
			MaxClusters:       swampMaxClusters,
			MinSize:           swampMinSize,
			MaxSize:           swampMaxSize,
			GrowthProbability: swampGrowthProbability,
			AllowedSources:    []grid.Terrain{grid.Grass, grid.Forest},
		},
		{
			Terrain:           grid.Stone,
			MinClusters:       stoneMinClusters,
			MaxClusters:       stoneMaxClusters,
			MinSize:           stoneMinSize,
			MaxSize:           stoneMaxSize,
			GrowthProbability: stoneGrowthProbability,
		},
	}
}

// Options aggregates every generation knob. All fields have deterministic
// defaults; zero iteration bounds mean "derive from the grid area".
type Options struct {
	Rand                 *rand.Rand
	SpawnCount           int
	MinSpawnDistance     int
	ImpassableThreshold  int // 0 → costgrid default
	ObstructionSurcharge int // −1 → costgrid default
	BranchProbability    float64
	PrimaryIterations    int
	SecondaryIterations  int
	Layers               []ClusterSpec

	// internal error recorded during option parsing
	err error
}

// Option configures Generate via functional arguments. Invalid values are
// recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns the documented defaults with a deterministic
// random source.
func DefaultOptions() Options {
	return Options{
		Rand:                 rand.New(rand.NewSource(defaultRandSeed)),
		SpawnCount:           DefaultSpawnCount,
		MinSpawnDistance:     DefaultMinSpawnDistance,
		ObstructionSurcharge: -1,
		BranchProbability:    -1, // resolved to the roadcarve default
		Layers:               DefaultClusterLayers(),
	}
}

// WithRand supplies a custom random source for the whole pipeline; nil is
// ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))):
// a fully reproducible generation run.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithSpawnCount sets how many border spawns to request. Must be ≥ 0; the
// realized count may be smaller when few border cells qualify.
func WithSpawnCount(count int) Option {
	return func(o *Options) {
		if count < 0 {
			o.err = fmt.Errorf("%w: SpawnCount cannot be negative (%d)", ErrOptionViolation, count)

			return
		}
		o.SpawnCount = count
	}
}

// WithMinSpawnDistance sets the minimum Manhattan distance from any spawn
// to the goal. Must be ≥ 0.
func WithMinSpawnDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MinSpawnDistance cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MinSpawnDistance = d
	}
}

// WithImpassableThreshold forwards a custom threshold to the cost grid.
// Must be positive.
func WithImpassableThreshold(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: ImpassableThreshold must be positive (%d)", ErrOptionViolation, threshold)

			return
		}
		o.ImpassableThreshold = threshold
	}
}

// WithObstructionSurcharge forwards a custom obstruction surcharge to the
// cost grid. Must be ≥ 0.
func WithObstructionSurcharge(surcharge int) Option {
	return func(o *Options) {
		if surcharge < 0 {
			o.err = fmt.Errorf("%w: ObstructionSurcharge cannot be negative (%d)", ErrOptionViolation, surcharge)

			return
		}
		o.ObstructionSurcharge = surcharge
	}
}

// WithBranchProbability forwards a custom random-branch chance to the road
// carver. Must lie in [0,1].
func WithBranchProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: BranchProbability must be in [0,1] (%g)", ErrOptionViolation, p)

			return
		}
		o.BranchProbability = p
	}
}

// WithIterationBounds forwards explicit carve iteration budgets to the road
// carver. Both must be positive.
func WithIterationBounds(primary, secondary int) Option {
	return func(o *Options) {
		if primary <= 0 || secondary <= 0 {
			o.err = fmt.Errorf("%w: iteration bounds must be positive (%d, %d)", ErrOptionViolation, primary, secondary)

			return
		}
		o.PrimaryIterations = primary
		o.SecondaryIterations = secondary
	}
}

// WithClusterLayers replaces the default terrain recipe. Layers are applied
// in the given order; an empty list means no region painting at all (an
// all-grass map). Every spec is validated eagerly.
func WithClusterLayers(layers ...ClusterSpec) Option {
	return func(o *Options) {
		for _, cs := range layers {
			if err := cs.validate(); err != nil {
				o.err = err

				return
			}
		}
		o.Layers = append([]ClusterSpec(nil), layers...)
	}
}
