package main

import (
	"context"
	"testing"

	astar "github.com/pdrpinto/terrain-astar"
	"github.com/pdrpinto/terrain-astar/internal/config"
	"github.com/pdrpinto/terrain-astar/internal/terrain"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func loadScenario(t *testing.T) (*config.Config, astar.Grid) {
	t.Helper()
	cfg, err := config.Load("testdata/scenario.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	grid, err := terrain.FromConfig(cfg.Terrain)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	return cfg, grid
}

func TestRunScenarioOneShotAndFramesAgree(t *testing.T) {
	cfg, grid := loadScenario(t)
	log, _ := test.NewNullLogger()

	oneShot, err := runScenario(context.Background(), grid, cfg, log)
	if err != nil {
		t.Fatalf("one shot: %v", err)
	}

	cfg.Search.TicksPerFrame = 5
	framed, err := runScenario(context.Background(), grid, cfg, log)
	if err != nil {
		t.Fatalf("framed: %v", err)
	}

	if len(oneShot) != len(cfg.Queries) || len(framed) != len(cfg.Queries) {
		t.Fatalf("Expected %d results, got %d and %d", len(cfg.Queries), len(oneShot), len(framed))
	}
	for i := range oneShot {
		if !oneShot[i].Found {
			t.Errorf("query %d: expected a path", i)
		}
		if oneShot[i].TotalDistance != framed[i].TotalDistance {
			t.Errorf("query %d: one shot %v, framed %v", i, oneShot[i].TotalDistance, framed[i].TotalDistance)
		}
	}
}

func TestReport(t *testing.T) {
	log, hook := test.NewNullLogger()
	grid := astar.Grid{Width: 3, Height: 1, Weights: []float64{1, 1, 1}}
	result, err := astar.FindPath(astar.Point{X: 0, Y: 0}, astar.Point{X: 2, Y: 0}, grid)
	if err != nil {
		t.Fatal(err)
	}
	report(log, grid, result)
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.InfoLevel || entry.Message != "path found" {
		t.Fatalf("Expected a path found entry, got %v", entry)
	}
	if entry.Data["route"] != "(0,0) (1,0) (2,0)" || entry.Data["distance"] != "2.0000" {
		t.Errorf("Unexpected fields %v", entry.Data)
	}

	report(log, grid, astar.Result{From: 0, To: 2})
	if entry := hook.LastEntry(); entry.Level != logrus.WarnLevel {
		t.Errorf("Expected a warning for a missing path, got %v", entry.Level)
	}
}
