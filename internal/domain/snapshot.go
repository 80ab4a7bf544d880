package domain

import (
	m "sequence.dev/pkg/sequence/internal/model"
)

// Snapshot is a read-only copy of a path state for renderers and observers.
type Snapshot struct {
	LevelID       string
	LevelName     string
	GridSize      int
	MaxNodeNumber int
	Path          []m.GridPosition
	Visited       map[m.GridPosition]struct{}
	CurrentNumber int
	Complete      bool
	Status        PathStatus
}

// Snapshot captures the current state.
func (s *PathGameState) Snapshot() Snapshot {
	return Snapshot{
		LevelID:       s.level.ID,
		LevelName:     s.level.Name,
		GridSize:      s.level.GridSize,
		MaxNodeNumber: s.maxNodeNumber,
		Path:          s.CurrentPath(),
		Visited:       s.VisitedCells(),
		CurrentNumber: s.currentNumber,
		Complete:      s.isComplete,
		Status:        s.Status(),
	}
}

// IsVisited reports whether pos is in the captured visited set.
func (s Snapshot) IsVisited(pos m.GridPosition) bool {
	_, ok := s.Visited[pos]
	return ok
}
