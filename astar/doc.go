// Package astar implements A* shortest-path search over a costgrid.CostGrid,
// built for many repeated queries per session as obstruction costs mutate.
//
// What:
//
//   - Planner owns an index-addressed node table (one entry per grid cell)
//     that is reset in place at the start of every FindPath call — no
//     per-query node allocation.
//   - Edge cost of entering a cell is that cell's CostGrid value; the
//     heuristic is Manhattan distance. Every cell costs at least 1 to
//     enter, so Manhattan distance never overestimates and optimality holds.
//   - The open set is a container/heap min-heap ordered by f = g + h with
//     ties broken by insertion sequence number, making results reproducible
//     across runs. Improved nodes are re-pushed lazily; stale entries are
//     skipped on pop (the same lazy decrease-key discipline as classic
//     Dijkstra implementations).
//
// Failure is a normal outcome:
//
//   - FindPath returns ErrUntraversable when either endpoint is out of
//     bounds or non-traversable, and ErrNoPath when the frontier drains
//     without reaching the goal (e.g. the goal is currently boxed in by
//     obstructions). Callers route around it; nothing is logged or panicked.
//
// Diagnostics:
//
//   - Stats exposes nodes expanded, neighbor evaluations, and the last path
//     length. Informational only; never affects search results.
//
// Complexity:
//
//   - FindPath: O(C log C) time with C = W×H cells, O(C) memory (retained
//     across calls).
package astar
