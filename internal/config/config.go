package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a path finding scenario: a terrain, search parameters and the
// queries to run on it.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Search  SearchConfig  `yaml:"search"`
	Queries []QueryConfig `yaml:"queries"`
}

// TerrainConfig describes the cost model. Exactly one of Rows or Brightness
// is set.
type TerrainConfig struct {
	// Rows is an ASCII map, one string per grid row, glyphs looked up in Legend.
	Rows   []string           `yaml:"rows"`
	Legend map[string]float64 `yaml:"legend"`
	// Brightness holds grayscale values 0..255, one slice per grid row.
	Brightness [][]int `yaml:"brightness"`
	MinWeight  float64 `yaml:"min_weight"`
	MaxWeight  float64 `yaml:"max_weight"`
	WallBelow  float64 `yaml:"wall_below"` // brightness in 0..1
}

// SearchConfig holds the parameters shared by every query.
type SearchConfig struct {
	Multiplier    float64 `yaml:"multiplier"`
	TicksPerFrame int     `yaml:"ticks_per_frame"` // 0 runs each query in one shot
	Workers       int     `yaml:"workers"`
}

// QueryConfig is a start/goal pair given as [x, y].
type QueryConfig struct {
	From [2]int `yaml:"from"`
	To   [2]int `yaml:"to"`
}

// DefaultLegend maps the usual terrain glyphs to weights.
func DefaultLegend() map[string]float64 {
	return map[string]float64{
		".": 1,
		",": 2,
		"~": 4,
		"^": 8,
		"#": -1,
	}
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(cfg.Terrain.Rows) == 0 && len(cfg.Terrain.Brightness) == 0 {
		return nil, fmt.Errorf("config: terrain needs rows or brightness")
	}
	if len(cfg.Terrain.Rows) > 0 && len(cfg.Terrain.Brightness) > 0 {
		return nil, fmt.Errorf("config: terrain rows and brightness are exclusive")
	}

	// Set defaults if not provided
	if cfg.Terrain.Legend == nil {
		cfg.Terrain.Legend = DefaultLegend()
	}
	if cfg.Terrain.MinWeight == 0 {
		cfg.Terrain.MinWeight = 1
	}
	if cfg.Terrain.MaxWeight == 0 {
		cfg.Terrain.MaxWeight = 10
	}
	if cfg.Terrain.MaxWeight < cfg.Terrain.MinWeight {
		return nil, fmt.Errorf("config: max_weight %v below min_weight %v", cfg.Terrain.MaxWeight, cfg.Terrain.MinWeight)
	}
	if cfg.Search.Multiplier == 0 {
		cfg.Search.Multiplier = 1
	}
	if cfg.Search.TicksPerFrame < 0 {
		cfg.Search.TicksPerFrame = 0
	}

	return &cfg, nil
}
