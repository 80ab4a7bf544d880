package domain

import (
	"errors"
	"fmt"
	"log/slog"

	m "sequence.dev/pkg/sequence/internal/model"
)

var (
	// ErrInvalidLevel is returned when a session is asked to play a level
	// that fails model.Level.Check.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrNoLevels is returned when a session is created from an empty catalog.
	ErrNoLevels = errors.New("no levels available")
)

// Observer is notified after every change to a session's path.
type Observer interface {
	StateChanged(snapshot Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(snapshot Snapshot)

// StateChanged implements Observer.
func (f ObserverFunc) StateChanged(snapshot Snapshot) {
	f(snapshot)
}

// Session is one player's attempt at the levels of a catalog. It owns the
// current PathGameState and replaces it whenever the level changes.
// Like PathGameState it is not safe for concurrent use.
type Session struct {
	catalog   *Catalog
	state     *PathGameState
	observers []Observer
}

// NewSession starts a session on the catalog's current level.
func NewSession(catalog *Catalog) (*Session, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrNoLevels
	}

	s := &Session{catalog: catalog}
	if err := s.load(catalog.Index()); err != nil {
		return nil, err
	}

	return s, nil
}

// Subscribe registers an observer. It is not called for past changes.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Catalog returns the session's level catalog.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// State returns the path state for the current level.
func (s *Session) State() *PathGameState {
	return s.state
}

// Level returns the level being played.
func (s *Session) Level() m.Level {
	return s.state.Level()
}

// Snapshot captures the current path state.
func (s *Session) Snapshot() Snapshot {
	return s.state.Snapshot()
}

// AddPosition forwards to PathGameState.AddPosition and notifies observers on success.
func (s *Session) AddPosition(pos m.GridPosition) error {
	if err := s.state.AddPosition(pos); err != nil {
		slog.Debug("move rejected", "level", s.Level().ID, "position", pos.String(), "reason", reasonCode(err))
		return err
	}

	slog.Debug("move accepted", "level", s.Level().ID, "position", pos.String(), "current", s.state.CurrentNumber())
	s.notify()

	return nil
}

// CanAddPosition probes a move without changing anything.
func (s *Session) CanAddPosition(pos m.GridPosition) bool {
	return s.state.CanAddPosition(pos)
}

// Touch applies a drag sample, see PathGameState.Touch.
func (s *Session) Touch(pos m.GridPosition) TouchResult {
	result := s.state.Touch(pos)

	switch result.Outcome {
	case TouchExtended, TouchTruncated:
		slog.Debug("touch", "level", s.Level().ID, "position", pos.String(), "outcome", result.Outcome.String())
		s.notify()
	case TouchRejected:
		slog.Debug("touch rejected", "level", s.Level().ID, "position", pos.String(), "reason", reasonCode(result.Err))
	case TouchIgnored:
	}

	return result
}

// RemoveLastPosition undoes the last step.
func (s *Session) RemoveLastPosition() {
	if s.state.Len() == 0 {
		return
	}

	s.state.RemoveLastPosition()
	s.notify()
}

// ClearPathAfter cuts the path back to pos. Cutting at the head of a
// complete path removes nothing but still clears completion.
func (s *Session) ClearPathAfter(pos m.GridPosition) {
	length, complete := s.state.Len(), s.state.IsComplete()

	s.state.ClearPathAfter(pos)

	if s.state.Len() != length || s.state.IsComplete() != complete {
		s.notify()
	}
}

// Reset clears the path of the current level.
func (s *Session) Reset() {
	s.state.Reset()
	slog.Debug("path reset", "level", s.Level().ID)
	s.notify()
}

// NextLevel moves to the next playable level of the catalog, skipping
// levels that fail model.Level.Check. It reports false when no playable
// level follows; the error then names the first invalid level skipped.
func (s *Session) NextLevel() (bool, error) {
	return s.step(1)
}

// PreviousLevel moves to the previous playable level, see NextLevel.
func (s *Session) PreviousLevel() (bool, error) {
	return s.step(-1)
}

func (s *Session) step(delta int) (bool, error) {
	var skipped error

	for index := s.catalog.Index() + delta; index >= 0 && index < s.catalog.Len(); index += delta {
		err := s.load(index)
		if err == nil {
			return true, nil
		}

		slog.Warn("skipping invalid level", "index", index, "error", err)

		if skipped == nil {
			skipped = err
		}
	}

	return false, skipped
}

// SelectLevel jumps to the level at index.
func (s *Session) SelectLevel(index int) error {
	if index < 0 || index >= s.catalog.Len() {
		return fmt.Errorf("level index %d out of range [0,%d)", index, s.catalog.Len())
	}

	return s.load(index)
}

func (s *Session) load(index int) error {
	level := s.catalog.levels[index]
	if err := level.Check(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLevel, level.Name, err)
	}

	s.catalog.Select(index)
	s.state = NewPathGameState(level)

	slog.Info("level loaded", "level", level.ID, "name", level.Name, "grid", level.GridSize, "nodes", level.MaxNodeNumber())
	s.notify()

	return nil
}

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}

	snapshot := s.state.Snapshot()
	for _, o := range s.observers {
		o.StateChanged(snapshot)
	}
}

func reasonCode(err error) string {
	var pathErr m.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code()
	}

	return err.Error()
}
