// Package costgrid defines the terrain base-cost table, tunable options, and
// sentinel errors for the cost layer of github.com/katalvlaran/wardgrid.
package costgrid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wardgrid/grid"
)

// Sentinel errors for costgrid operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed where one is required.
	ErrNilGrid = errors.New("costgrid: grid is nil")

	// ErrOptionViolation indicates an invalid Option value was supplied.
	ErrOptionViolation = errors.New("costgrid: invalid option supplied")
)

// Base traversal costs per terrain. Road stays the cheapest so carved
// corridors dominate every optimal route; Stone sits at the impassable
// threshold and is never traversed.
const (
	CostRoad   = 1
	CostGrass  = 2
	CostForest = 4
	CostSwamp  = 6
	CostStone  = 100
)

// DefaultImpassableThreshold marks costs at or above this value as
// non-traversable.
const DefaultImpassableThreshold = 100

// DefaultObstructionSurcharge is added to a cell's base cost while an
// obstruction is present on it.
const DefaultObstructionSurcharge = 20

// baseCosts maps each Terrain to its base traversal cost.
var baseCosts = map[grid.Terrain]int{
	grid.Road:   CostRoad,
	grid.Grass:  CostGrass,
	grid.Forest: CostForest,
	grid.Swamp:  CostSwamp,
	grid.Stone:  CostStone,
}

// BaseCost returns the base traversal cost of terrain t from the fixed
// terrain→cost table. Unknown terrain values fall back to CostStone so a
// malformed input can never open a cheap route.
func BaseCost(t grid.Terrain) int {
	if c, ok := baseCosts[t]; ok {
		return c
	}

	return CostStone
}

// Options holds the tunable parameters of a CostGrid.
type Options struct {
	// ImpassableThreshold marks costs ≥ this value as non-traversable.
	// Must be > 0.
	ImpassableThreshold int
	// ObstructionSurcharge is added to the base cost while a cell is
	// obstructed. Must be ≥ 0.
	ObstructionSurcharge int

	// internal error recorded during option parsing
	err error
}

// Option configures CostGrid construction via functional arguments.
// Invalid values are recorded internally and surfaced as
// ErrOptionViolation by NewFromGrid.
type Option func(*Options)

// DefaultOptions returns Options with the documented defaults:
// threshold 100, surcharge 20.
func DefaultOptions() Options {
	return Options{
		ImpassableThreshold:  DefaultImpassableThreshold,
		ObstructionSurcharge: DefaultObstructionSurcharge,
	}
}

// WithImpassableThreshold sets the cost value at or above which a cell is
// classified as non-traversable. Must be positive.
func WithImpassableThreshold(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: ImpassableThreshold must be positive (%d)", ErrOptionViolation, threshold)

			return
		}
		o.ImpassableThreshold = threshold
	}
}

// WithObstructionSurcharge sets the cost added while a cell is obstructed.
// Must be non-negative.
func WithObstructionSurcharge(surcharge int) Option {
	return func(o *Options) {
		if surcharge < 0 {
			o.err = fmt.Errorf("%w: ObstructionSurcharge cannot be negative (%d)", ErrOptionViolation, surcharge)

			return
		}
		o.ObstructionSurcharge = surcharge
	}
}
