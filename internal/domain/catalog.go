package domain

import (
	"strconv"
	"strings"

	m "sequence.dev/pkg/sequence/internal/model"
)

// DefaultLevels returns the built-in levels. Options are passed to every
// model.NewLevel call, e.g. to inject an ID generator.
func DefaultLevels(opts ...m.LevelOption) []m.Level {
	return []m.Level{
		m.NewLevel("Tutorial", 4, map[int]m.GridPosition{
			1: m.Pos(0, 0),
			2: m.Pos(0, 3),
			3: m.Pos(3, 3),
		}, opts...),
		m.NewLevel("Classic", 6, map[int]m.GridPosition{
			1: m.Pos(0, 0),
			2: m.Pos(5, 5),
			3: m.Pos(4, 1),
			4: m.Pos(2, 1),
			5: m.Pos(3, 5),
			6: m.Pos(3, 2),
			7: m.Pos(1, 5),
			8: m.Pos(2, 3),
		}, opts...),
		m.NewLevel("Zigzag", 5, map[int]m.GridPosition{
			1: m.Pos(0, 0),
			2: m.Pos(0, 4),
			3: m.Pos(2, 4),
			4: m.Pos(2, 0),
			5: m.Pos(4, 0),
			6: m.Pos(4, 4),
		}, opts...),
		m.NewLevel("Corners", 6, map[int]m.GridPosition{
			1: m.Pos(0, 0),
			2: m.Pos(0, 5),
			3: m.Pos(5, 5),
			4: m.Pos(5, 0),
			5: m.Pos(2, 2),
		}, opts...),
	}
}

// Catalog is an ordered list of levels with a cursor on the one being played.
type Catalog struct {
	levels []m.Level
	index  int
}

// NewCatalog creates a catalog positioned on the first level.
func NewCatalog(levels []m.Level) *Catalog {
	copied := make([]m.Level, len(levels))
	copy(copied, levels)

	return &Catalog{levels: copied}
}

// Levels returns a copy of the catalog contents.
func (c *Catalog) Levels() []m.Level {
	levels := make([]m.Level, len(c.levels))
	copy(levels, c.levels)

	return levels
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Index returns the zero-based position of the current level.
func (c *Catalog) Index() int {
	return c.index
}

// Current returns the selected level, false if the catalog is empty.
func (c *Catalog) Current() (m.Level, bool) {
	if c.index < 0 || c.index >= len(c.levels) {
		return m.Level{}, false
	}

	return c.levels[c.index], true
}

// HasNext reports whether Next would move.
func (c *Catalog) HasNext() bool {
	return c.index < len(c.levels)-1
}

// HasPrevious reports whether Previous would move.
func (c *Catalog) HasPrevious() bool {
	return c.index > 0
}

// Next moves to the following level. It reports whether the cursor moved.
func (c *Catalog) Next() bool {
	if !c.HasNext() {
		return false
	}

	c.index++

	return true
}

// Previous moves to the preceding level. It reports whether the cursor moved.
func (c *Catalog) Previous() bool {
	if !c.HasPrevious() {
		return false
	}

	c.index--

	return true
}

// Select moves the cursor to index.
func (c *Catalog) Select(index int) bool {
	if index < 0 || index >= len(c.levels) {
		return false
	}

	c.index = index

	return true
}

// Add appends a level.
func (c *Catalog) Add(level m.Level) {
	c.levels = append(c.levels, level)
}

// Find resolves ref as a level ID, a case-insensitive name or a 1-based
// index, in that order, and returns the zero-based index.
func (c *Catalog) Find(ref string) (int, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, false
	}

	for i, level := range c.levels {
		if level.ID == ref {
			return i, true
		}
	}

	for i, level := range c.levels {
		if strings.EqualFold(level.Name, ref) {
			return i, true
		}
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(c.levels) {
		return n - 1, true
	}

	return 0, false
}
