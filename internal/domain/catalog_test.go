package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "sequence.dev/pkg/sequence/internal/model"
)

func sequentialIDs() m.IDGenerator {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("level-%d", n)
	}
}

func TestDefaultLevels_AreValid(t *testing.T) {
	levels := DefaultLevels(m.WithIDGenerator(sequentialIDs()))
	require.Len(t, levels, 4)

	names := []string{"Tutorial", "Classic", "Zigzag", "Corners"}
	for i, level := range levels {
		assert.Equal(t, names[i], level.Name)
		assert.Equal(t, fmt.Sprintf("level-%d", i+1), level.ID)
		assert.NoError(t, level.Check(), level.Name)
	}

	assert.Equal(t, 8, levels[1].MaxNodeNumber())
}

func TestCatalog_Navigation(t *testing.T) {
	c := NewCatalog(DefaultLevels(m.WithIDGenerator(sequentialIDs())))

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "Tutorial", current.Name)
	assert.False(t, c.HasPrevious())
	assert.False(t, c.Previous())

	assert.True(t, c.Next())
	assert.True(t, c.Next())
	assert.True(t, c.Next())
	assert.False(t, c.Next(), "next must clamp at the last level")
	assert.Equal(t, 3, c.Index())

	current, _ = c.Current()
	assert.Equal(t, "Corners", current.Name)

	assert.True(t, c.Previous())
	assert.Equal(t, 2, c.Index())
}

func TestCatalog_Add(t *testing.T) {
	c := NewCatalog(nil)

	_, ok := c.Current()
	assert.False(t, ok)

	c.Add(tutorialLevel())
	assert.Equal(t, 1, c.Len())

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "test", current.ID)
}

func TestCatalog_Select(t *testing.T) {
	c := NewCatalog(DefaultLevels())

	assert.True(t, c.Select(2))
	assert.Equal(t, 2, c.Index())
	assert.False(t, c.Select(4))
	assert.False(t, c.Select(-1))
	assert.Equal(t, 2, c.Index())
}

func TestCatalog_Find(t *testing.T) {
	c := NewCatalog(DefaultLevels(m.WithIDGenerator(sequentialIDs())))

	tests := []struct {
		ref   string
		want  int
		found bool
	}{
		{"level-3", 2, true},
		{"classic", 1, true},
		{"  Corners ", 3, true},
		{"1", 0, true},
		{"4", 3, true},
		{"5", 0, false},
		{"0", 0, false},
		{"", 0, false},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := c.Find(tt.ref)
			assert.Equal(t, tt.found, ok)

			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCatalog_LevelsIsACopy(t *testing.T) {
	c := NewCatalog(DefaultLevels())

	levels := c.Levels()
	levels[0].Name = "changed"

	current, _ := c.Current()
	assert.Equal(t, "Tutorial", current.Name)
}
