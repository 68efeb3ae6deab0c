package astar

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestEdgeCost(t *testing.T) {
	// 3x2 grid
	weights := []float64{
		1, 2, -1,
		3, 4, 5,
	}
	tests := []struct {
		name     string
		from, to Point
		want     float64
	}{
		{"horizontal", Point{0, 0}, Point{1, 0}, 1.5},
		{"vertical", Point{1, 0}, Point{1, 1}, 3},
		{"diagonal", Point{0, 0}, Point{1, 1}, 2.5 * math.Sqrt2},
		{"into wall", Point{1, 0}, Point{2, 0}, -1},
		{"diagonal into wall", Point{1, 1}, Point{2, 0}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EdgeCost(tt.from, tt.to, weights, 3); !almostEqual(got, tt.want) {
				t.Errorf("EdgeCost(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestEdgeCostSymmetric(t *testing.T) {
	weights := []float64{1, 7, 3, 2.5}
	a, b := Point{0, 0}, Point{1, 1}
	if EdgeCost(a, b, weights, 2) != EdgeCost(b, a, weights, 2) {
		t.Errorf("Expected symmetric cost between %v and %v", a, b)
	}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		name                  string
		from, to              Point
		multiplier, minWeight float64
		want                  float64
	}{
		{"same cell", Point{3, 3}, Point{3, 3}, 1, 1, 0},
		{"straight", Point{0, 0}, Point{9, 0}, 1, 1, 9},
		{"pythagoras", Point{0, 0}, Point{3, 4}, 1, 1, 5},
		{"min weight", Point{0, 0}, Point{3, 4}, 1, 2, 10},
		{"multiplier", Point{0, 0}, Point{3, 4}, 4, 1, 10},
		{"zero min weight", Point{0, 0}, Point{3, 4}, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heuristic(tt.from, tt.to, tt.multiplier, tt.minWeight)
			if !almostEqual(got, tt.want) {
				t.Errorf("Heuristic = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeuristicNeverOverestimatesUniformGrid(t *testing.T) {
	// octile distance is the true cost on a uniform 8-connected grid
	goal := Point{7, 3}
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			dx := math.Abs(float64(x - goal.X))
			dy := math.Abs(float64(y - goal.Y))
			octile := math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
			if h := Heuristic(Point{x, y}, goal, 1, 1); h > octile+epsilon {
				t.Errorf("Heuristic from (%d,%d) = %v exceeds true cost %v", x, y, h, octile)
			}
		}
	}
}

func TestMinWeight(t *testing.T) {
	if got := MinWeight([]float64{3, -1, 2.5, 7}); got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}
	if got := MinWeight([]float64{-1, -2}); got != 0 {
		t.Errorf("Expected 0 for an all-wall grid, got %v", got)
	}
	if got := MinWeight(nil); got != 0 {
		t.Errorf("Expected 0 for no weights, got %v", got)
	}
}
