package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair of a batch.
type Query struct {
	From Point
	To   Point
}

// FindPaths runs one independent search per query over the same weight
// array, at most NumberOfWorkers at a time. Every search owns its own
// session; the grid is shared read only. Results are returned in query
// order. Queries that have not started when ctx is cancelled are skipped
// and the context error is returned.
func FindPaths(ctx context.Context, grid Grid, queries []Query, options ...Option) ([]Result, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	searchOptions := buildOptions(options)
	if searchOptions.MinWeight <= 0 {
		options = append(options[:len(options):len(options)], WithMinWeight(MinWeight(grid.Weights)))
	}

	// sessions are created up front so malformed queries fail before any work
	sessions := make([]*Session, len(queries))
	for i, query := range queries {
		session, err := NewSession(query.From, query.To, grid.Width, grid.Height, options...)
		if err != nil {
			return nil, err
		}
		sessions[i] = session
	}

	results := make([]Result, len(queries))
	group, groupContext := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, session := range sessions {
		i, session := i, session
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			results[i] = session.run(grid.Weights)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
