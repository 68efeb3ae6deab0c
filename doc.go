// Package astar finds shortest weighted paths on rectangular grids whose
// cells carry individual traversal costs.
//
// It exposes three entry points:
//
//   - FindPath: run the search to completion and get a Result.
//   - Session: advance the search a bounded number of expansions at a time
//     to drive animations or debugging tools.
//   - FindPaths: run many independent queries over one grid on a bounded
//     number of goroutines.
//
// Movement is 8-connected. Moving between two cells costs the average of
// their weights, scaled by √2 on diagonals; negative weights are walls. The
// open set is a PriorityQueue that updates priorities in place, so a cell
// is never queued twice.
package astar
