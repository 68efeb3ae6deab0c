package astar

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every error caused by malformed search input.
var ErrInvalidInput = errors.New("invalid input")

// Point is a cell coordinate on the grid.
type Point struct {
	X int
	Y int
}

// Index returns the linear cell index of p on a grid of the given width.
func (p Point) Index(width int) int { return ToIndex(width, p.X, p.Y) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// ToIndex maps a coordinate to its cell index. The caller guarantees x < width.
func ToIndex(width, x, y int) int { return y*width + x }

// FromIndex is the inverse of ToIndex.
func FromIndex(width, index int) Point {
	return Point{X: index % width, Y: index / width}
}

// Grid is a flattened per-cell weight array. Weights are read only for the
// engine; a negative weight marks a wall.
type Grid struct {
	Width   int
	Height  int
	Weights []float64
}

// Validate checks the dimensions and the length of the weight array.
func (g Grid) Validate() error {
	if err := validateDimensions(g.Width, g.Height); err != nil {
		return err
	}
	if len(g.Weights) != g.Width*g.Height {
		return fmt.Errorf("%w: %d weights for a %dx%d grid", ErrInvalidInput, len(g.Weights), g.Width, g.Height)
	}
	return nil
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool { return inBounds(p, g.Width, g.Height) }

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidInput, width, height)
	}
	return nil
}

func inBounds(p Point, width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Neighbors returns the indices of the in-bounds 8-connected neighbors of p,
// row by row from the top left. Cells never wrap onto the adjacent row.
func Neighbors(p Point, width, height int) []int {
	index := p.Index(width)
	neighbors := make([]int, 0, 8)

	if p.Y > 0 {
		top := index - width
		if p.X > 0 {
			neighbors = append(neighbors, top-1)
		}
		neighbors = append(neighbors, top)
		if p.X < width-1 {
			neighbors = append(neighbors, top+1)
		}
	}

	if p.X > 0 {
		neighbors = append(neighbors, index-1)
	}
	if p.X < width-1 {
		neighbors = append(neighbors, index+1)
	}

	if p.Y < height-1 {
		bottom := index + width
		if p.X > 0 {
			neighbors = append(neighbors, bottom-1)
		}
		neighbors = append(neighbors, bottom)
		if p.X < width-1 {
			neighbors = append(neighbors, bottom+1)
		}
	}

	return neighbors
}
