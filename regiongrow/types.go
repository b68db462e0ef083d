// Package regiongrow defines tunable options and sentinel errors for the
// flood-fill region painter of github.com/katalvlaran/wardgrid.
package regiongrow

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wardgrid/grid"
)

// Sentinel errors for Grow execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("regiongrow: grid is nil")

	// ErrSeedOutOfBounds is returned when the seed cell lies outside the grid.
	ErrSeedOutOfBounds = errors.New("regiongrow: seed cell out of bounds")

	// ErrInvalidTerrain is returned when the paint terrain is outside the
	// closed enumeration.
	ErrInvalidTerrain = errors.New("regiongrow: invalid paint terrain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("regiongrow: invalid option supplied")
)

// DefaultGrowthProbability is the chance that a painted cell's neighbor is
// enqueued for growth. 0.6 yields mid-sized organic blobs; raise it for
// denser, rounder clusters.
const DefaultGrowthProbability = 0.6

// defaultRandSeed seeds the fallback RNG when no WithRand option is given,
// keeping unseeded runs reproducible.
const defaultRandSeed = 1

// Options holds parameters customizing a single Grow call.
type Options struct {
	// GrowthProbability is the independent chance, per neighbor, of joining
	// the frontier. Must lie in [0,1].
	GrowthProbability float64

	// AllowedSources lists the terrains Grow may paint over. Defaults to
	// grass, forest and swamp: stone never yields ground and road corridors
	// are carved after all region layers, so neither is a default source.
	AllowedSources []grid.Terrain

	// Rand supplies the randomness for frontier growth. Defaults to a
	// deterministic source so unseeded runs stay reproducible.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// Option configures Grow behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Grow is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - GrowthProbability = DefaultGrowthProbability
//   - AllowedSources = {Grass, Forest, Swamp}
//   - deterministic Rand source.
func DefaultOptions() Options {
	return Options{
		GrowthProbability: DefaultGrowthProbability,
		AllowedSources:    []grid.Terrain{grid.Grass, grid.Forest, grid.Swamp},
		Rand:              rand.New(rand.NewSource(defaultRandSeed)),
	}
}

// WithGrowthProbability sets the per-neighbor growth chance.
// Values outside [0,1] cause ErrOptionViolation.
func WithGrowthProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: GrowthProbability must be in [0,1] (%g)", ErrOptionViolation, p)

			return
		}
		o.GrowthProbability = p
	}
}

// WithAllowedSources restricts painting to cells whose current terrain is in
// the given set. An empty set causes ErrOptionViolation — Grow with nothing
// to paint over is always a caller mistake.
func WithAllowedSources(sources ...grid.Terrain) Option {
	return func(o *Options) {
		if len(sources) == 0 {
			o.err = fmt.Errorf("%w: AllowedSources cannot be empty", ErrOptionViolation)

			return
		}
		o.AllowedSources = append([]grid.Terrain(nil), sources...)
	}
}

// WithRand supplies a custom random source; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
