// Package wardgrid generates playable grid maps — clustered terrain regions
// connected by carved roads from multiple spawn points to one goal — and
// answers shortest-path queries over them as obstructions toggle at runtime.
//
// 🚀 What is wardgrid?
//
//	A pure-Go map-generation and pathfinding core that brings together:
//		• grid/       — terrain substrate: terrain identifiers + obstruction flags
//		• regiongrow/ — randomized flood-fill painting of organic terrain clusters
//		• spawn/      — admissible border spawn selection
//		• roadcarve/  — stochastic, direction-biased corridor carving with merging
//		• costgrid/   — terrain-derived traversal costs with obstruction surcharges
//		• astar/      — deterministic A* planner with an in-place-reset node table
//		• mapgen/     — the one entry point tying the pipeline together
//
// ✨ Design at a glance:
//
//   - Two different searches on purpose: roadcarve trades optimality for
//     organic curvature during generation; astar answers strict
//     shortest-path queries during play. They are never unified.
//   - Single-threaded by contract — each Map is owned by one session, so no
//     locks anywhere.
//   - Degradation over exceptions: too few spawn candidates or an exhausted
//     carve budget produce smaller results, not errors. Out-of-bounds
//     coordinates, by contrast, are caller bugs and panic loudly.
//
// Quick start:
//
//	m, err := mapgen.Generate(32, 32, mapgen.WithSeed(7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	route, err := m.FindPath(m.Spawns.Cells[0], m.Goal())
//	m.SetObstruction(4, 4, true) // player drops a barricade
//	route, err = m.FindPath(m.Spawns.Cells[0], m.Goal())
//
//	go get github.com/katalvlaran/wardgrid
package wardgrid
