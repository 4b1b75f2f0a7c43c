// Package astar finds shortest paths on 2-D grids of free and blocked cells
// with the A* algorithm under unit step cost and 4-directional movement.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one loop iteration at a time to drive UIs or debugging tools.
//
// Both share one state machine, so draining a Stepper and rebuilding the path
// from its final snapshot gives the same path Search returns. The open set is
// a binary heap keyed by (f, g, cell) that tolerates duplicate entries; stale
// entries for closed cells are dropped when popped.
package astar
