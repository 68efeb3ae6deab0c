package astar

import (
	"fmt"

	"github.com/pdrpinto/terrain-astar/internal"
	"github.com/sirupsen/logrus"
)

const initialCapacity = 1000

// Snapshot exposes the state of a session between ticks.
type Snapshot struct {
	// Current is the cell expanded last, -1 before the first expansion.
	Current  int
	Open     []int
	Visited  map[int]VisitedRecord
	Done     bool
	Found    bool
	Distance float64
	Path     CellSet
	Steps    int
}

// Session is a single path query that can be advanced a bounded number of
// expansions at a time. All state is owned by the session; the weight array
// passed to Tick is only read.
//
// A Session is not safe for concurrent use.
type Session struct {
	start, goal   Point
	from, to      int
	width, height int

	multiplier     float64
	minWeight      float64
	minWeightFixed bool
	minWeightReady bool
	logger         logrus.FieldLogger

	openSet *PriorityQueue[int, float64]
	visited map[int]VisitedRecord
	path    CellSet

	current int
	steps   int
	started bool
	done    bool
	found   bool
}

// NewSession creates a session in its initialized state: the start cell is
// queued and recorded with score 0.
func NewSession(start, goal Point, width, height int, options ...Option) (*Session, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if !inBounds(start, width, height) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidInput, start, width, height)
	}
	if !inBounds(goal, width, height) {
		return nil, fmt.Errorf("%w: goal %v outside %dx%d grid", ErrInvalidInput, goal, width, height)
	}

	opts := buildOptions(options)
	logger := opts.Logger.WithFields(logrus.Fields{
		"from": start.String(),
		"to":   goal.String(),
	})
	s := &Session{
		start: start, goal: goal,
		from: start.Index(width), to: goal.Index(width),
		width: width, height: height,
		multiplier:     opts.HeuristicMultiplier,
		minWeight:      opts.MinWeight,
		minWeightFixed: opts.MinWeight > 0,
		logger:         logger,
		openSet:        NewPriorityQueue[int, float64](initialCapacity),
		visited:        make(map[int]VisitedRecord, initialCapacity),
	}
	s.initialize()
	return s, nil
}

func (s *Session) initialize() {
	s.visited[s.from] = VisitedRecord{Score: 0, Predecessor: s.from}
	if err := s.openSet.Push(s.from, Heuristic(s.start, s.goal, s.multiplier, s.minWeight)); err != nil {
		panic(err)
	}
	s.current = -1
}

// Reset discards all search progress and returns the session to its
// initialized state for the same start and goal.
func (s *Session) Reset() {
	s.openSet.Clear()
	clear(s.visited)
	s.path = nil
	s.steps = 0
	s.started, s.done, s.found = false, false, false
	if !s.minWeightFixed {
		s.minWeight = 0
		s.minWeightReady = false
	}
	s.initialize()
}

// Tick expands at most maxSteps cells. It returns the total distance and
// true once the goal has been reached; otherwise the session keeps its
// state and a later call resumes where this one stopped. A budget below one
// still performs a single expansion.
func (s *Session) Tick(maxSteps int, weights []float64) (float64, bool, error) {
	if len(weights) != s.width*s.height {
		return 0, false, fmt.Errorf("%w: %d weights for a %dx%d grid", ErrInvalidInput, len(weights), s.width, s.height)
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	s.prepare(weights)
	distance, found := s.advance(maxSteps, weights)
	return distance, found, nil
}

// run advances the session until it is done and returns the result. The
// visited map is handed over without copying, so the session must not be
// used afterwards.
func (s *Session) run(weights []float64) Result {
	s.prepare(weights)
	s.advance(0, weights)
	return s.result(s.visited)
}

// prepare resolves the heuristic weight and rejects a walled-in start before
// the first expansion.
func (s *Session) prepare(weights []float64) {
	if !s.minWeightReady {
		if !s.minWeightFixed {
			s.minWeight = MinWeight(weights)
		}
		s.minWeightReady = true
	}
	if s.started {
		return
	}
	s.started = true
	if IsWall(weights[s.from]) {
		s.openSet.Clear()
		s.done = true
		s.logger.Debug("start cell is a wall")
	}
}

// advance expands cells until the goal is popped, the open set runs dry or
// limit expansions were made. A limit of zero means no limit.
func (s *Session) advance(limit int, weights []float64) (float64, bool) {
	if s.done {
		return s.Distance()
	}
	remaining := limit
	for {
		current, ok := s.openSet.Pop()
		if !ok {
			s.done = true
			s.logger.WithField("steps", s.steps).Debug("open set exhausted, no path")
			return 0, false
		}
		s.current = current

		if current == s.to {
			s.finish()
			return s.visited[s.to].Score, true
		}

		s.expand(current, weights)
		s.steps++

		if limit > 0 {
			remaining--
			if remaining == 0 {
				return 0, false
			}
		}
	}
}

func (s *Session) expand(current int, weights []float64) {
	currentScore := s.visited[current].Score
	currentPoint := FromIndex(s.width, current)

	for _, neighborIndex := range Neighbors(currentPoint, s.width, s.height) {
		neighborPoint := FromIndex(s.width, neighborIndex)
		weight := EdgeCost(currentPoint, neighborPoint, weights, s.width)
		if IsWall(weight) {
			continue
		}

		tentativeG := currentScore + weight
		if record, seen := s.visited[neighborIndex]; seen && record.Score <= tentativeG {
			continue
		}
		s.visited[neighborIndex] = VisitedRecord{Score: tentativeG, Predecessor: current}

		tentativeF := tentativeG + Heuristic(neighborPoint, s.goal, s.multiplier, s.minWeight)
		if !s.openSet.ChangePriority(neighborIndex, tentativeF) {
			if err := s.openSet.Push(neighborIndex, tentativeF); err != nil {
				panic(err)
			}
		}
	}
}

func (s *Session) finish() {
	s.done = true
	s.found = true
	s.path = CellSet(internal.CollectPredecessors(s.predecessor, s.to))
	s.logger.WithFields(logrus.Fields{
		"steps":    s.steps,
		"distance": s.visited[s.to].Score,
		"visited":  len(s.visited),
	}).Debug("path found")
}

func (s *Session) predecessor(index int) (int, bool) {
	record, ok := s.visited[index]
	return record.Predecessor, ok
}

func (s *Session) result(visited map[int]VisitedRecord) Result {
	result := Result{
		From:          s.from,
		To:            s.to,
		ExpandedNodes: s.steps,
		Found:         s.found,
		Visited:       visited,
	}
	if s.found {
		result.TotalDistance = s.visited[s.to].Score
		result.Path = s.path
		result.Route = internal.ReconstructPath(s.predecessor, s.to)
	}
	return result
}

// Result returns the outcome so far. Path and Route are only set once the
// goal was reached.
func (s *Session) Result() Result {
	result := s.result(s.Visited())
	result.Path = s.Path()
	return result
}

// Distance returns the goal's score once the goal was reached.
func (s *Session) Distance() (float64, bool) {
	if !s.found {
		return 0, false
	}
	return s.visited[s.to].Score, true
}

// Visited returns a copy of the current visited records.
func (s *Session) Visited() map[int]VisitedRecord {
	visited := make(map[int]VisitedRecord, len(s.visited))
	for index, record := range s.visited {
		visited[index] = record
	}
	return visited
}

// Open returns the cells currently in the open set, in no particular order.
func (s *Session) Open() []int { return s.openSet.Keys() }

// Path returns the reconstructed path set, or nil while the goal has not
// been reached.
func (s *Session) Path() CellSet {
	if s.path == nil {
		return nil
	}
	path := make(CellSet, len(s.path))
	for index := range s.path {
		path[index] = struct{}{}
	}
	return path
}

// Route returns the ordered cells from start to goal, or nil while the goal
// has not been reached.
func (s *Session) Route() []Point {
	if !s.found {
		return nil
	}
	indices := internal.ReconstructPath(s.predecessor, s.to)
	route := make([]Point, len(indices))
	for i, index := range indices {
		route[i] = FromIndex(s.width, index)
	}
	return route
}

func (s *Session) Done() bool  { return s.done }
func (s *Session) Found() bool { return s.found }
func (s *Session) Steps() int  { return s.steps }

// Snapshot copies the current state for rendering or debugging.
func (s *Session) Snapshot() Snapshot {
	distance, _ := s.Distance()
	return Snapshot{
		Current:  s.current,
		Open:     s.Open(),
		Visited:  s.Visited(),
		Done:     s.done,
		Found:    s.found,
		Distance: distance,
		Path:     s.Path(),
		Steps:    s.steps,
	}
}
