// Package grid provides the terrain substrate shared by every wardgrid
// component: a fixed-size 2D field of terrain identifiers plus a per-cell
// obstruction flag.
//
// What:
//
//   - Grid wraps a width×height field of Terrain values (row-major slice).
//   - Exactly one Terrain per cell at all times; fresh grids are all Grass.
//   - A boolean obstruction flag per cell, toggled by the consumer during
//     play without changing the cell's terrain.
//   - Cell, Manhattan, border and bounds helpers used by all generators.
//
// Why:
//
//   - Map generation: regiongrow paints clusters, roadcarve paints corridors.
//   - Pathfinding: costgrid derives traversal costs from the finished field.
//
// Complexity:
//
//   - All accessors: O(1).
//   - Construction: O(W×H) time and memory.
//
// Errors:
//
//   - ErrBadDimensions: width or height below MinDimension.
//
// Out-of-bounds coordinates passed to any accessor indicate a caller bug and
// panic rather than clamp; use InBounds to guard speculative coordinates.
package grid
