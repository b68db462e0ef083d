// Package spawn selects admissible spawn cells on the grid border and
// bundles them with the goal cell as a SpawnSet.
//
// What:
//
//   - Select collects every border cell whose terrain is grass or forest and
//     whose Manhattan distance to the goal meets the configured minimum,
//     then draws the requested count uniformly at random without
//     replacement.
//   - When fewer admissible border cells exist than requested, the result is
//     truncated — never padded with invalid cells. The caller checks the
//     returned cardinality, not an error.
//   - The first selected cell is the primary spawn: the road carver routes
//     it straight to the goal, and later spawns merge into its corridor.
//
// Complexity:
//
//   - Select: O(W×H) to scan the border candidates, O(count) to sample.
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - ErrGoalOutOfBounds: goal cell outside the grid.
//   - ErrOptionViolation: negative count or minimum distance.
package spawn
