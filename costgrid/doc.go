// Package costgrid derives and owns the per-cell traversal costs the A*
// planner consumes, decoupling path search from terrain semantics.
//
// What:
//
//   - CostGrid holds exactly one integer cost per cell, built once from a
//     grid.Grid via the fixed terrain base-cost table (road=1, grass=2,
//     forest=4, swamp=6, stone=100).
//   - SetObstruction adds or removes a fixed surcharge on top of the cell's
//     base cost; the base itself never drops.
//   - Traversable classifies a cell as passable when its cost is below the
//     impassable threshold (default 100).
//
// Why:
//
//   - After the initial build, CostGrid performs no terrain lookups of its
//     own. Obstruction policy (barricades, temporary blocks) lives entirely
//     in the consumer, which mutates costs through this seam and re-queries
//     the planner afterwards.
//
// Complexity:
//
//   - NewFromGrid / Resync: O(W×H).
//   - Cost, SetCost, SetObstruction, Traversable: O(1).
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed to NewFromGrid or Resync.
//   - ErrOptionViolation: an invalid option value was supplied.
//
// Out-of-bounds coordinates on any accessor panic; they indicate a caller
// bug, not game state.
package costgrid
