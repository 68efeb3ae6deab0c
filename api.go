package astar

import (
	"io"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
)

// VisitedRecord is the best known cost from the start to a cell and the
// cell that cost was reached from. The start cell is its own predecessor.
type VisitedRecord struct {
	Score       float64
	Predecessor int
}

// CellSet is an unordered set of cell indices.
type CellSet map[int]struct{}

func (set CellSet) Contains(index int) bool {
	_, ok := set[index]
	return ok
}

func (set CellSet) Len() int { return len(set) }

// Sorted returns the indices in ascending order.
func (set CellSet) Sorted() []int {
	indices := make([]int, 0, len(set))
	for index := range set {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

// Result contains the outcome of a search.
//
// Path holds the cells walked from the goal back to the start through
// predecessor links. It includes the start and excludes the goal; callers
// that need the full ordered route use Route.
type Result struct {
	From          int
	To            int
	TotalDistance float64
	Path          CellSet
	Route         []int
	Visited       map[int]VisitedRecord
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	HeuristicMultiplier float64
	// MinWeight scales the heuristic. Zero or less means it is computed from
	// the weight array on first use.
	MinWeight       float64
	Logger          logrus.FieldLogger
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristicMultiplier scales the heuristic. Values above 1 trade
// optimality for fewer expansions.
func WithHeuristicMultiplier(multiplier float64) Option {
	return func(options *Options) { options.HeuristicMultiplier = multiplier }
}

// WithMinWeight sets the cheapest terrain weight used by the heuristic.
func WithMinWeight(minWeight float64) Option {
	return func(options *Options) { options.MinWeight = minWeight }
}

// WithLogger sets where search progress is logged at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithWorkers specifies how many searches FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

var discardLogger = func() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}()

func buildOptions(options []Option) Options {
	searchOptions := Options{
		HeuristicMultiplier: 1,
		Logger:              discardLogger,
		NumberOfWorkers:     runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = discardLogger
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// FindPath runs the search from start to goal to completion. A missing path
// is reported through Result.Found, errors are reserved for malformed input.
func FindPath(start, goal Point, grid Grid, options ...Option) (Result, error) {
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}
	session, err := NewSession(start, goal, grid.Width, grid.Height, options...)
	if err != nil {
		return Result{}, err
	}
	return session.run(grid.Weights), nil
}
