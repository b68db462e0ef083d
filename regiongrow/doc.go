// Package regiongrow paints clustered terrain regions onto a grid.Grid
// using a randomized breadth-first flood fill.
//
// What:
//
//   - Grow floods outward from a seed cell, painting each reachable cell
//     whose current terrain is in the allowed-source set.
//   - Each painted cell's four neighbors are enqueued independently with the
//     configured growth probability, so region outlines come out organic and
//     non-convex rather than diamond-shaped.
//   - Growth stops when the target size is reached or the frontier runs dry;
//     an under-sized cluster is accepted silently, never an error.
//
// Why:
//
//   - Layered calls build a believable map: forest clusters first, then
//     swamp (restricted to grass/forest so it cannot reclaim ground from a
//     later layer), then dense stone mountains. Later layers may overwrite
//     earlier ones subject to their own allowed-source filter.
//
// Complexity:
//
//   - Grow: O(W×H) worst-case time and memory (each cell enqueued at most
//     once thanks to the visited set).
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - ErrSeedOutOfBounds: seed cell outside the grid.
//   - ErrInvalidTerrain: paint terrain outside the enumeration.
//   - ErrOptionViolation: invalid option value (e.g. probability outside [0,1]).
package regiongrow
