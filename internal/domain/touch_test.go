package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "sequence.dev/pkg/sequence/internal/model"
)

func TestPathGameState_Touch(t *testing.T) {
	s := NewPathGameState(tutorialLevel())

	result := s.Touch(m.Pos(1, 1))
	assert.Equal(t, TouchRejected, result.Outcome)
	assert.Equal(t, m.ErrMustStartAtOne, result.Err)

	result = s.Touch(m.Pos(0, 0))
	assert.Equal(t, TouchExtended, result.Outcome)
	require.NoError(t, result.Err)

	for _, pos := range []m.GridPosition{m.Pos(0, 1), m.Pos(0, 2), m.Pos(0, 3)} {
		assert.Equal(t, TouchExtended, s.Touch(pos).Outcome)
	}

	assert.Equal(t, 2, s.CurrentNumber())

	result = s.Touch(m.Pos(0, 3))
	assert.Equal(t, TouchIgnored, result.Outcome)
	assert.Len(t, s.CurrentPath(), 4)

	result = s.Touch(m.Pos(0, 1))
	assert.Equal(t, TouchTruncated, result.Outcome)
	assert.Len(t, s.CurrentPath(), 2)
	assert.Equal(t, 1, s.CurrentNumber())

	result = s.Touch(m.Pos(2, 2))
	assert.Equal(t, TouchRejected, result.Outcome)
	assert.Equal(t, m.ErrNotAdjacent, result.Err)
}

func TestTouchOutcome_String(t *testing.T) {
	assert.Equal(t, "rejected", TouchRejected.String())
	assert.Equal(t, "extended", TouchExtended.String())
	assert.Equal(t, "truncated", TouchTruncated.String())
	assert.Equal(t, "ignored", TouchIgnored.String())
	assert.Equal(t, "unknown", TouchOutcome(42).String())
}
