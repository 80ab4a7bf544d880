package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedID(id string) IDGenerator {
	return func() string { return id }
}

func TestNewLevel_GeneratesID(t *testing.T) {
	level := NewLevel("Test", 4, map[int]GridPosition{1: Pos(0, 0)})
	assert.NotEmpty(t, level.ID)

	other := NewLevel("Test", 4, map[int]GridPosition{1: Pos(0, 0)})
	assert.NotEqual(t, level.ID, other.ID)
}

func TestNewLevel_Options(t *testing.T) {
	level := NewLevel("Test", 4, nil, WithIDGenerator(fixedID("gen")))
	assert.Equal(t, "gen", level.ID)

	level = NewLevel("Test", 4, nil, WithID("explicit"), WithIDGenerator(fixedID("gen")))
	assert.Equal(t, "explicit", level.ID)
}

func TestNewLevel_CopiesNodes(t *testing.T) {
	nodes := map[int]GridPosition{1: Pos(0, 0)}
	level := NewLevel("Test", 4, nodes, WithID("x"))

	nodes[2] = Pos(1, 1)
	assert.Len(t, level.Nodes, 1)
}

func TestLevel_Check(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		nodes   map[int]GridPosition
		wantErr error
	}{
		{
			name:  "valid",
			size:  4,
			nodes: map[int]GridPosition{1: Pos(0, 0), 2: Pos(0, 3), 3: Pos(3, 3)},
		},
		{
			name:  "single node",
			size:  1,
			nodes: map[int]GridPosition{1: Pos(0, 0)},
		},
		{
			name:    "empty",
			size:    4,
			nodes:   map[int]GridPosition{},
			wantErr: ErrNoNodes,
		},
		{
			name:    "does not start at one",
			size:    4,
			nodes:   map[int]GridPosition{2: Pos(0, 0), 3: Pos(1, 1)},
			wantErr: ErrNotSequential,
		},
		{
			name:    "gap",
			size:    4,
			nodes:   map[int]GridPosition{1: Pos(0, 0), 2: Pos(1, 1), 4: Pos(2, 2)},
			wantErr: ErrNotSequential,
		},
		{
			name:    "out of bounds",
			size:    4,
			nodes:   map[int]GridPosition{1: Pos(0, 0), 2: Pos(4, 0)},
			wantErr: ErrNodeOutOfBounds,
		},
		{
			name:    "negative coordinate",
			size:    4,
			nodes:   map[int]GridPosition{1: Pos(0, -1)},
			wantErr: ErrNodeOutOfBounds,
		},
		{
			name:    "duplicate position",
			size:    4,
			nodes:   map[int]GridPosition{1: Pos(0, 0), 2: Pos(0, 0)},
			wantErr: ErrDuplicatePosition,
		},
		{
			name:    "sequence checked before bounds",
			size:    2,
			nodes:   map[int]GridPosition{1: Pos(9, 9), 3: Pos(0, 0)},
			wantErr: ErrNotSequential,
		},
		{
			name:    "bounds checked before duplicates",
			size:    2,
			nodes:   map[int]GridPosition{1: Pos(5, 5), 2: Pos(5, 5)},
			wantErr: ErrNodeOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := NewLevel(tt.name, tt.size, tt.nodes, WithID(tt.name))
			err := level.Check()

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, level.Validate())

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.False(t, level.Validate())
		})
	}
}

func TestLevel_Lookups(t *testing.T) {
	level := NewLevel("Test", 4, map[int]GridPosition{
		1: Pos(0, 0),
		2: Pos(0, 3),
		3: Pos(3, 3),
	}, WithID("lookups"))

	assert.Equal(t, 3, level.MaxNodeNumber())
	assert.Equal(t, []int{1, 2, 3}, level.NodeNumbers())

	pos, ok := level.Position(2)
	require.True(t, ok)
	assert.Equal(t, Pos(0, 3), pos)

	_, ok = level.Position(4)
	assert.False(t, ok)

	number, ok := level.NodeNumber(Pos(3, 3))
	require.True(t, ok)
	assert.Equal(t, 3, number)

	_, ok = level.NodeNumber(Pos(1, 1))
	assert.False(t, ok)
}

func TestLevel_MaxNodeNumberEmpty(t *testing.T) {
	assert.Equal(t, 0, Level{}.MaxNodeNumber())
}

func TestLevel_ColorForNode(t *testing.T) {
	level := Level{}

	assert.Equal(t, 0, level.ColorForNode(1))
	assert.Equal(t, 7, level.ColorForNode(8))
	assert.Equal(t, 0, level.ColorForNode(9))
	assert.Equal(t, ColorBlue, PaletteColorFor(1))
	assert.Equal(t, ColorRed, PaletteColorFor(10))
	assert.Equal(t, ColorCyan, PaletteColorFor(0))
}

func TestPathError_Descriptions(t *testing.T) {
	seen := map[string]bool{}

	for _, e := range PathErrors {
		assert.NotEqual(t, "unknown path error", e.Error())
		assert.False(t, seen[e.Code()], "duplicate code %s", e.Code())
		seen[e.Code()] = true
	}

	assert.Equal(t, "notAdjacent", ErrNotAdjacent.Code())
	assert.Equal(t, "Path must start at node 1", ErrMustStartAtOne.Error())

	var err error = ErrSkipNumber
	assert.True(t, errors.Is(err, ErrSkipNumber))
	assert.False(t, errors.Is(err, ErrNotAdjacent))
}
