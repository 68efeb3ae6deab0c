package astar

import "math"

// IsWall reports whether a weight marks an impassable cell.
func IsWall(weight float64) bool { return weight < 0 }

// EdgeCost is the cost of moving from the center of one cell to the center
// of an adjacent cell: half of each cell's weight, each scaled by √2 when
// the move is diagonal. A wall destination returns its own (negative)
// weight so the caller can skip it.
func EdgeCost(from, to Point, weights []float64, width int) float64 {
	toWeight := weights[to.Index(width)]
	if IsWall(toWeight) {
		return toWeight
	}
	fromWeight := weights[from.Index(width)]

	if from.X != to.X && from.Y != to.Y {
		fromWeight *= math.Sqrt2
		toWeight *= math.Sqrt2
	}

	return fromWeight/2 + toWeight/2
}

// Heuristic is the Euclidean distance between two cells scaled by the
// cheapest terrain weight and the multiplier. It stays admissible as long as
// minWeight is the true minimum weight and multiplier is at most 1.
func Heuristic(from, to Point, multiplier, minWeight float64) float64 {
	dx := float64(from.X - to.X)
	dy := float64(from.Y - to.Y)
	mw2 := minWeight * minWeight

	return math.Sqrt((dx*dx*mw2 + dy*dy*mw2) * multiplier)
}

// MinWeight returns the smallest weight over all passable cells, or 0 when
// every cell is a wall.
func MinWeight(weights []float64) float64 {
	lowest := math.Inf(1)
	for _, weight := range weights {
		if !IsWall(weight) && weight < lowest {
			lowest = weight
		}
	}
	if math.IsInf(lowest, 1) {
		return 0
	}
	return lowest
}
