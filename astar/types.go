// Package astar defines the planner's result types and sentinel errors.
package astar

import "errors"

// Sentinel errors for planner construction and path queries.
// ErrUntraversable and ErrNoPath are recoverable outcomes, not defects:
// the consumer is expected to handle them as game state.
var (
	// ErrNilCostGrid is returned if a nil cost grid is passed to NewPlanner.
	ErrNilCostGrid = errors.New("astar: cost grid is nil")

	// ErrUntraversable is returned when the start or goal endpoint is out of
	// bounds or classified non-traversable by the cost grid.
	ErrUntraversable = errors.New("astar: endpoint not traversable")

	// ErrNoPath is returned when the frontier is exhausted without reaching
	// the goal.
	ErrNoPath = errors.New("astar: no path between endpoints")
)

// Stats carries informational counters from the most recent FindPath call.
// They never influence search behavior.
type Stats struct {
	// NodesExpanded counts cells popped from the open set and settled.
	NodesExpanded int
	// NodesEvaluated counts neighbor relaxation attempts.
	NodesEvaluated int
	// LastPathLength is the cell count of the last returned path, zero when
	// the last query failed.
	LastPathLength int
}
