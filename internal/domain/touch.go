package domain

import (
	m "sequence.dev/pkg/sequence/internal/model"
)

// TouchOutcome describes what a touch did to the path.
type TouchOutcome int

// Available TouchOutcome values.
const (
	TouchRejected TouchOutcome = iota
	TouchExtended
	TouchTruncated
	TouchIgnored
)

func (o TouchOutcome) String() string {
	switch o {
	case TouchRejected:
		return "rejected"
	case TouchExtended:
		return "extended"
	case TouchTruncated:
		return "truncated"
	case TouchIgnored:
		return "ignored"
	}

	return "unknown"
}

// TouchResult is the outcome of a touch plus the rejection reason, if any.
type TouchResult struct {
	Position m.GridPosition
	Outcome  TouchOutcome
	Err      error
}

// Touch applies a drag sample that has already been resolved to a cell.
// Touching an earlier path cell cuts the path back to it, touching the
// last cell does nothing, and any other cell is offered to AddPosition.
func (s *PathGameState) Touch(pos m.GridPosition) TouchResult {
	result := TouchResult{Position: pos}

	if index := s.IndexOf(pos); index >= 0 {
		if index < len(s.currentPath)-1 {
			s.ClearPathAfter(pos)
			result.Outcome = TouchTruncated

			return result
		}

		result.Outcome = TouchIgnored

		return result
	}

	if err := s.AddPosition(pos); err != nil {
		result.Outcome = TouchRejected
		result.Err = err

		return result
	}

	result.Outcome = TouchExtended

	return result
}
