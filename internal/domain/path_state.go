package domain

import (
	m "sequence.dev/pkg/sequence/internal/model"
)

// PathStatus is the derived phase of a path.
type PathStatus int

// Available PathStatus values.
const (
	StatusEmpty PathStatus = iota
	StatusInProgress
	StatusComplete
)

func (s PathStatus) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusInProgress:
		return "in progress"
	case StatusComplete:
		return "complete"
	}

	return "unknown"
}

// PathGameState tracks a path being drawn over one level and enforces the
// movement rules. It is owned by a single session and performs no locking;
// callers that share it across goroutines must serialize access themselves.
type PathGameState struct {
	level         m.Level
	maxNodeNumber int

	currentPath   []m.GridPosition
	visitedCells  map[m.GridPosition]struct{}
	currentNumber int
	isComplete    bool
}

// move records what a successful append changed so it can be undone.
type move struct {
	pathLen        int
	previousNumber int
	previousDone   bool
}

// NewPathGameState creates an empty path bound to level.
// The level should have passed Validate.
func NewPathGameState(level m.Level) *PathGameState {
	return &PathGameState{
		level:         level,
		maxNodeNumber: level.MaxNodeNumber(),
		visitedCells:  make(map[m.GridPosition]struct{}),
	}
}

// Level returns the level this state is bound to.
func (s *PathGameState) Level() m.Level {
	return s.level
}

// CurrentPath returns a copy of the path in visit order.
func (s *PathGameState) CurrentPath() []m.GridPosition {
	path := make([]m.GridPosition, len(s.currentPath))
	copy(path, s.currentPath)

	return path
}

// VisitedCells returns a copy of the set of cells on the path.
func (s *PathGameState) VisitedCells() map[m.GridPosition]struct{} {
	visited := make(map[m.GridPosition]struct{}, len(s.visitedCells))
	for pos := range s.visitedCells {
		visited[pos] = struct{}{}
	}

	return visited
}

// IsVisited reports whether pos is on the path.
func (s *PathGameState) IsVisited(pos m.GridPosition) bool {
	_, ok := s.visitedCells[pos]
	return ok
}

// CurrentNumber is the highest node reached so far, 0 before the path starts.
func (s *PathGameState) CurrentNumber() int {
	return s.currentNumber
}

// IsComplete reports whether the last node has been reached.
func (s *PathGameState) IsComplete() bool {
	return s.isComplete
}

// Len returns the number of cells on the path.
func (s *PathGameState) Len() int {
	return len(s.currentPath)
}

// Last returns the most recently added cell.
func (s *PathGameState) Last() (m.GridPosition, bool) {
	if len(s.currentPath) == 0 {
		return m.GridPosition{}, false
	}

	return s.currentPath[len(s.currentPath)-1], true
}

// IndexOf returns the index of the first occurrence of pos in the path, or -1.
func (s *PathGameState) IndexOf(pos m.GridPosition) int {
	for i, p := range s.currentPath {
		if p == pos {
			return i
		}
	}

	return -1
}

// Status derives the current phase from the path data.
func (s *PathGameState) Status() PathStatus {
	switch {
	case s.isComplete:
		return StatusComplete
	case len(s.currentPath) == 0:
		return StatusEmpty
	default:
		return StatusInProgress
	}
}

// Reset clears the path.
func (s *PathGameState) Reset() {
	s.currentPath = nil
	s.visitedCells = make(map[m.GridPosition]struct{})
	s.currentNumber = 0
	s.isComplete = false
}

// AddPosition extends the path by pos. On failure it returns one of the
// model.PathError values and leaves the state unchanged. Checks run in
// this order: bounds, start at node 1, revisit, adjacency, node sequence.
func (s *PathGameState) AddPosition(pos m.GridPosition) error {
	_, err := s.apply(pos)
	return err
}

// CanAddPosition reports whether AddPosition(pos) would succeed. The
// state is left exactly as it was.
func (s *PathGameState) CanAddPosition(pos m.GridPosition) bool {
	mv, err := s.apply(pos)
	if err != nil {
		return false
	}

	s.undo(mv)

	return true
}

// RemoveLastPosition drops the last cell of the path. If that cell was a
// node, the current number falls back to the node before it. It is a
// no-op on an empty path.
func (s *PathGameState) RemoveLastPosition() {
	if len(s.currentPath) == 0 {
		return
	}

	last := s.currentPath[len(s.currentPath)-1]
	s.currentPath = s.currentPath[:len(s.currentPath)-1]
	delete(s.visitedCells, last)

	if number, ok := s.level.NodeNumber(last); ok {
		s.currentNumber = number - 1
	}

	s.isComplete = false
}

// ClearPathAfter truncates the path so that pos becomes its last cell.
// Nothing happens if pos is not on the path.
func (s *PathGameState) ClearPathAfter(pos m.GridPosition) {
	index := s.IndexOf(pos)
	if index < 0 {
		return
	}

	removed := s.currentPath[index+1:]
	for _, p := range removed {
		delete(s.visitedCells, p)

		if number, ok := s.level.NodeNumber(p); ok {
			s.currentNumber = min(s.currentNumber, number-1)
		}
	}

	s.currentPath = s.currentPath[:index+1]
	s.isComplete = false
}

func (s *PathGameState) apply(pos m.GridPosition) (move, error) {
	if err := s.check(pos); err != nil {
		return move{}, err
	}

	mv := move{
		pathLen:        len(s.currentPath),
		previousNumber: s.currentNumber,
		previousDone:   s.isComplete,
	}

	if len(s.currentPath) == 0 {
		s.currentNumber = 1
	} else if number, ok := s.level.NodeNumber(pos); ok {
		s.currentNumber = number
	}

	s.currentPath = append(s.currentPath, pos)
	s.visitedCells[pos] = struct{}{}
	s.checkCompletion()

	return mv, nil
}

func (s *PathGameState) check(pos m.GridPosition) error {
	if !pos.IsWithinBounds(s.level.GridSize) {
		return m.ErrOutOfBounds
	}

	if len(s.currentPath) == 0 {
		start, ok := s.level.Position(1)
		if !ok || start != pos {
			return m.ErrMustStartAtOne
		}

		return nil
	}

	if s.IsVisited(pos) {
		return m.ErrCellAlreadyVisited
	}

	if !pos.IsAdjacent(s.currentPath[len(s.currentPath)-1]) {
		return m.ErrNotAdjacent
	}

	if number, ok := s.level.NodeNumber(pos); ok && number != s.currentNumber+1 {
		return m.ErrSkipNumber
	}

	return nil
}

// undo reverts exactly the cells appended by mv and restores the counters.
func (s *PathGameState) undo(mv move) {
	for _, p := range s.currentPath[mv.pathLen:] {
		delete(s.visitedCells, p)
	}

	s.currentPath = s.currentPath[:mv.pathLen]
	s.currentNumber = mv.previousNumber
	s.isComplete = mv.previousDone
}

func (s *PathGameState) checkCompletion() {
	s.isComplete = s.currentNumber == s.maxNodeNumber
}
