package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	astar "github.com/pdrpinto/terrain-astar"
	"github.com/pdrpinto/terrain-astar/internal/config"
	"github.com/pdrpinto/terrain-astar/internal/logger"
	"github.com/pdrpinto/terrain-astar/internal/terrain"
	"github.com/pdrpinto/terrain-astar/internal/watch"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	var configPath string
	var watchConfig bool
	flag.StringVar(&configPath, "config", "scenario.yaml", "Path to the scenario YAML file")
	flag.BoolVar(&watchConfig, "watch", false, "Re-run the scenario whenever the file changes")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runFile(ctx, configPath); err != nil {
		logger.Log.WithError(err).Error("scenario failed")
		if !watchConfig {
			os.Exit(1)
		}
	}
	if !watchConfig {
		return
	}

	watcher, err := watch.NewWatcher(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to watch scenario")
	}
	defer watcher.Close()

	logger.Log.WithField("file", configPath).Info("watching scenario for changes")
	for {
		select {
		case <-ctx.Done():
			return
		case name, ok := <-watcher.Events:
			if !ok {
				return
			}
			logger.Log.WithField("file", name).Info("scenario changed, re-running")
			if err := runFile(ctx, configPath); err != nil {
				logger.Log.WithError(err).Error("scenario failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.WithError(err).Warn("watcher error")
		}
	}
}

func runFile(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	grid, err := terrain.FromConfig(cfg.Terrain)
	if err != nil {
		return err
	}
	results, err := runScenario(ctx, grid, cfg, logger.Log)
	if err != nil {
		return err
	}
	for _, result := range results {
		report(logger.Log, grid, result)
	}
	return nil
}

// runScenario runs every query of the scenario, either in one shot on a
// worker pool or frame by frame when ticks_per_frame is set.
func runScenario(ctx context.Context, grid astar.Grid, cfg *config.Config, log logrus.FieldLogger) ([]astar.Result, error) {
	queries := make([]astar.Query, len(cfg.Queries))
	for i, q := range cfg.Queries {
		queries[i] = astar.Query{
			From: astar.Point{X: q.From[0], Y: q.From[1]},
			To:   astar.Point{X: q.To[0], Y: q.To[1]},
		}
	}
	options := []astar.Option{
		astar.WithHeuristicMultiplier(cfg.Search.Multiplier),
		astar.WithLogger(log),
	}
	if cfg.Search.Workers > 0 {
		options = append(options, astar.WithWorkers(cfg.Search.Workers))
	}

	if cfg.Search.TicksPerFrame == 0 {
		return astar.FindPaths(ctx, grid, queries, options...)
	}

	results := make([]astar.Result, 0, len(queries))
	for _, query := range queries {
		session, err := astar.NewSession(query.From, query.To, grid.Width, grid.Height, options...)
		if err != nil {
			return nil, err
		}
		frame := 0
		for !session.Done() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, _, err := session.Tick(cfg.Search.TicksPerFrame, grid.Weights); err != nil {
				return nil, err
			}
			frame++
			snapshot := session.Snapshot()
			log.WithFields(logrus.Fields{
				"frame":   frame,
				"open":    len(snapshot.Open),
				"visited": len(snapshot.Visited),
				"steps":   snapshot.Steps,
			}).Debug("frame")
		}
		results = append(results, session.Result())
	}
	return results, nil
}

func report(log logrus.FieldLogger, grid astar.Grid, result astar.Result) {
	entry := log.WithFields(logrus.Fields{
		"from":     astar.FromIndex(grid.Width, result.From).String(),
		"to":       astar.FromIndex(grid.Width, result.To).String(),
		"expanded": result.ExpandedNodes,
		"visited":  len(result.Visited),
	})
	if !result.Found {
		entry.Warn("no path")
		return
	}
	entry.WithFields(logrus.Fields{
		"distance": fmt.Sprintf("%.4f", result.TotalDistance),
		"length":   len(result.Route),
		"route":    formatRoute(grid.Width, result.Route),
	}).Info("path found")
}

func formatRoute(width int, route []int) string {
	parts := make([]string, len(route))
	for i, index := range route {
		parts[i] = astar.FromIndex(width, index).String()
	}
	return strings.Join(parts, " ")
}
