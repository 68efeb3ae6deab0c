// Package terrain turns scenario descriptions into weight grids.
package terrain

import (
	"errors"
	"fmt"

	astar "github.com/pdrpinto/terrain-astar"
	"github.com/pdrpinto/terrain-astar/internal/config"
)

// Wall is the weight given to impassable cells.
const Wall = -1.0

var (
	ErrEmpty   = errors.New("terrain: no rows")
	ErrRagged  = errors.New("terrain: rows differ in length")
	ErrUnknown = errors.New("terrain: unknown glyph")
	ErrRange   = errors.New("terrain: brightness outside 0..255")
)

// Normalize maps value linearly from [inputMin, inputMax] onto
// [outputMin, outputMax].
func Normalize(inputMin, inputMax, outputMin, outputMax, value float64) float64 {
	return outputMin + (value-inputMin)*(outputMax-outputMin)/(inputMax-inputMin)
}

// BrightnessOptions controls how grayscale values become weights.
type BrightnessOptions struct {
	MinWeight float64
	MaxWeight float64
	// WallBelow is a brightness in 0..1; darker cells become walls.
	WallBelow float64
}

// FromBrightness converts grayscale rows into weights. Bright cells are
// cheap, dark cells expensive: the inverted brightness is normalized into
// [MinWeight, MaxWeight].
func FromBrightness(rows [][]int, opts BrightnessOptions) (astar.Grid, error) {
	width, err := rectangular(len(rows), func(y int) int { return len(rows[y]) })
	if err != nil {
		return astar.Grid{}, err
	}

	grid := astar.Grid{Width: width, Height: len(rows), Weights: make([]float64, width*len(rows))}
	for y, row := range rows {
		for x, value := range row {
			if value < 0 || value > 255 {
				return astar.Grid{}, fmt.Errorf("%w: %d at (%d,%d)", ErrRange, value, x, y)
			}
			brightness := float64(value) / 255
			weight := Wall
			if brightness >= opts.WallBelow {
				weight = Normalize(0, 1, opts.MinWeight, opts.MaxWeight, 1-brightness)
			}
			grid.Weights[astar.ToIndex(width, x, y)] = weight
		}
	}
	return grid, nil
}

// FromRows converts an ASCII map into weights, one glyph per cell.
func FromRows(rows []string, legend map[string]float64) (astar.Grid, error) {
	glyphs := make([][]rune, len(rows))
	for y, row := range rows {
		glyphs[y] = []rune(row)
	}
	width, err := rectangular(len(glyphs), func(y int) int { return len(glyphs[y]) })
	if err != nil {
		return astar.Grid{}, err
	}

	grid := astar.Grid{Width: width, Height: len(rows), Weights: make([]float64, width*len(rows))}
	for y, row := range glyphs {
		for x, glyph := range row {
			weight, ok := legend[string(glyph)]
			if !ok {
				return astar.Grid{}, fmt.Errorf("%w %q at (%d,%d)", ErrUnknown, glyph, x, y)
			}
			grid.Weights[astar.ToIndex(width, x, y)] = weight
		}
	}
	return grid, nil
}

// FromConfig builds the grid described by a scenario terrain section.
func FromConfig(cfg config.TerrainConfig) (astar.Grid, error) {
	if len(cfg.Rows) > 0 {
		return FromRows(cfg.Rows, cfg.Legend)
	}
	return FromBrightness(cfg.Brightness, BrightnessOptions{
		MinWeight: cfg.MinWeight,
		MaxWeight: cfg.MaxWeight,
		WallBelow: cfg.WallBelow,
	})
}

func rectangular(height int, rowLength func(y int) int) (int, error) {
	if height == 0 || rowLength(0) == 0 {
		return 0, ErrEmpty
	}
	width := rowLength(0)
	for y := 1; y < height; y++ {
		if rowLength(y) != width {
			return 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, rowLength(y), width)
		}
	}
	return width, nil
}
