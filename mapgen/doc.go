// Package mapgen is the single consumer entry point of wardgrid: it runs
// the full generation pipeline and hands back everything a game session
// needs to render terrain and route traffic.
//
// What:
//
//   - Generate paints clustered terrain layers in a fixed order (forest,
//     then swamp restricted to grass/forest, then dense stone), selects
//     border spawn cells, carves a primary road corridor from the first
//     spawn to the goal at the far corner plus converging corridors from
//     every later spawn, promotes the goal and grass spawns to road, and
//     derives the cost grid and A* planner from the finished field.
//   - Map bundles the four products: Grid, Spawns, Costs, Planner.
//   - Map.SetObstruction is the one mutation seam during play: it keeps the
//     grid flag and the cost grid in sync. The core never invalidates
//     previously returned paths — after toggling, the consumer re-issues
//     FindPath for any agent whose route may cross the changed cell.
//
// Degradation, not failure:
//
//   - Fewer admissible spawns than requested yields a smaller SpawnSet; a
//     carve that exhausts its budget yields no corridor for that spawn.
//     Both are silent; callers inspect the result. Retry policy (e.g.
//     regenerate when the spawn count is too low) belongs to the consumer.
//
// Errors:
//
//   - ErrMapTooSmall: dimensions below MinMapDimension.
//   - ErrOptionViolation: invalid option value.
//
// Complexity: Generate is O(W×H) in memory and O(W×H) expected time, with
// the carving stage bounded by its iteration budgets.
package mapgen
