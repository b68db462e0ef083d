// Package roadcarve carves connective road corridors from spawn cells
// toward the goal using a stochastic, direction-biased search.
//
// What:
//
//   - CarvePrimary routes the first spawn to the goal with a per-carve
//     random directional bias, yielding visually curved roads.
//   - CarveSecondary routes every later spawn toward the goal with a strong
//     preference for touching an existing road cell, so secondary corridors
//     merge into the primary network instead of running parallel to it.
//   - Apply paints a returned path onto the grid, overwriting only grass,
//     forest and road cells — swamp and stone are never painted, so a search
//     that was forced through them stops the corridor at the boundary.
//
// Why this is not a shortest-path search:
//
//   - The carver keeps a FIFO work queue whose entries are inserted in
//     score-sorted order, and with a configurable probability it expands a
//     uniformly random neighbor instead. Multiple branches stay live at
//     once and the first to satisfy the goal condition wins. The hybrid
//     deliberately trades optimality for organic curvature; the strict A*
//     planner in package astar answers the gameplay queries.
//
// Degradation:
//
//   - Every carve is bounded by a configured iteration budget (a small
//     multiple of the grid area). When the budget is exhausted the
//     single-cell path {start} is returned and the caller must treat it as
//     "no corridor carved".
//
// Complexity:
//
//   - One carve: O(maxIterations) dequeues, O(W×H) memory.
//
// Errors:
//
//   - ErrNilGrid, ErrCellOutOfBounds, ErrOptionViolation.
package roadcarve
