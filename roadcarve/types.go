// Package roadcarve defines scoring constants, tunable options, and sentinel
// errors for the corridor carver of github.com/katalvlaran/wardgrid.
package roadcarve

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for carver construction and execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to NewCarver.
	ErrNilGrid = errors.New("roadcarve: grid is nil")

	// ErrCellOutOfBounds is returned when a start or goal cell lies outside
	// the grid.
	ErrCellOutOfBounds = errors.New("roadcarve: cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("roadcarve: invalid option supplied")
)

// Neighbor preference scores. Lower is more attractive; candidates are
// expanded in ascending score order. Forbidden terrain still enters the
// queue (last), so a boxed-in search can climb over it rather than stall —
// Apply simply refuses to paint it afterwards.
const (
	prefGrass         = 0.0   // open ground, the preferred carving medium
	prefRoadPrimary   = 0.5   // existing road: acceptable merge point
	prefRoadSecondary = -10.0 // existing road: the convergence target
	prefForest        = 1.0   // carvable, but grass wins ties
	prefForbidden     = 999.0 // swamp and stone: avoid unless cornered
)

// directionBiasBonus is subtracted from the score of the per-carve biased
// direction, bending primary corridors into curves.
const directionBiasBonus = 0.3

// distanceTieBreak weights the remaining Manhattan distance to the goal in
// secondary scoring, nudging converging corridors goalward.
const distanceTieBreak = 0.1

// DefaultBranchProbability is the chance a dequeued cell expands one
// uniformly random neighbor (ignoring scores) instead of all neighbors in
// score order. Applies to primary carves only.
const DefaultBranchProbability = 0.3

// Iteration budgets as multiples of the grid area. Primary carves get the
// larger budget: they must reach the far corner, while secondaries usually
// terminate early on the first road cell they touch.
const (
	DefaultPrimaryIterationFactor   = 3
	DefaultSecondaryIterationFactor = 2
)

// defaultRandSeed seeds the fallback RNG when no WithRand option is given.
const defaultRandSeed = 1

// Options holds the tunable parameters of a Carver.
type Options struct {
	// BranchProbability is the per-dequeue chance of a random expansion
	// during primary carving. Must lie in [0,1].
	BranchProbability float64

	// PrimaryIterations and SecondaryIterations bound the respective carve
	// loops. Zero means "derive from the grid area" using the default
	// factors above; explicit values must be positive.
	PrimaryIterations   int
	SecondaryIterations int

	// Rand supplies the randomness for bias selection and branch rolls.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// Option configures a Carver via functional arguments. Invalid values are
// recorded internally and surfaced as ErrOptionViolation by NewCarver.
type Option func(*Options)

// DefaultOptions returns Options with the documented defaults and a
// deterministic random source.
func DefaultOptions() Options {
	return Options{
		BranchProbability: DefaultBranchProbability,
		Rand:              rand.New(rand.NewSource(defaultRandSeed)),
	}
}

// WithBranchProbability sets the random-expansion chance for primary
// carving. Values outside [0,1] cause ErrOptionViolation.
func WithBranchProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: BranchProbability must be in [0,1] (%g)", ErrOptionViolation, p)

			return
		}
		o.BranchProbability = p
	}
}

// WithIterationBounds overrides the derived iteration budgets. Both values
// must be positive.
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

// WithRand supplies a custom random source; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
