// Package model defines the data structures for sequence puzzles.
package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Level structure violations reported by Level.Check.
var (
	ErrNoNodes           = errors.New("level has no nodes")
	ErrNotSequential     = errors.New("node numbers are not sequential from 1")
	ErrNodeOutOfBounds   = errors.New("node lies outside the grid")
	ErrDuplicatePosition = errors.New("two nodes share a position")
)

// Level is a static puzzle description. Treat it as immutable once built:
// a single Level may be shared by any number of game states.
type Level struct {
	ID       string
	Name     string
	GridSize int
	Nodes    map[int]GridPosition
}

// IDGenerator produces identifiers for levels built without one.
type IDGenerator func() string

// LevelOption customizes NewLevel.
type LevelOption func(*levelConfig)

type levelConfig struct {
	id    string
	newID IDGenerator
}

// WithID sets an explicit level identifier.
func WithID(id string) LevelOption {
	return func(c *levelConfig) {
		c.id = id
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) LevelOption {
	return func(c *levelConfig) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// NewLevel builds a level. The node map is copied. When no ID is given
// one is generated, by default a random UUID.
//
// NewLevel does not validate; callers must check Validate before use.
func NewLevel(name string, gridSize int, nodes map[int]GridPosition, opts ...LevelOption) Level {
	cfg := levelConfig{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := cfg.id
	if id == "" {
		id = cfg.newID()
	}

	copied := make(map[int]GridPosition, len(nodes))
	for number, pos := range nodes {
		copied[number] = pos
	}

	return Level{
		ID:       id,
		Name:     name,
		GridSize: gridSize,
		Nodes:    copied,
	}
}

// Validate reports whether the level is well formed. See Check.
func (l Level) Validate() bool {
	return l.Check() == nil
}

// Check verifies, in order, that the level has nodes, that node numbers
// run 1..K without gaps, that every node is on the grid and that no two
// nodes share a cell. The first violation is returned.
func (l Level) Check() error {
	if len(l.Nodes) == 0 {
		return ErrNoNodes
	}

	numbers := l.NodeNumbers()
	for i, number := range numbers {
		if number != i+1 {
			return fmt.Errorf("%w: expected %d, found %d", ErrNotSequential, i+1, number)
		}
	}

	for _, number := range numbers {
		pos := l.Nodes[number]
		if !pos.IsWithinBounds(l.GridSize) {
			return fmt.Errorf("%w: node %d at %s on %dx%d grid", ErrNodeOutOfBounds, number, pos, l.GridSize, l.GridSize)
		}
	}

	seen := make(map[GridPosition]int, len(l.Nodes))
	for _, number := range numbers {
		pos := l.Nodes[number]
		if other, ok := seen[pos]; ok {
			return fmt.Errorf("%w: nodes %d and %d at %s", ErrDuplicatePosition, other, number, pos)
		}

		seen[pos] = number
	}

	return nil
}

// NodeNumbers returns the node numbers in ascending order.
func (l Level) NodeNumbers() []int {
	numbers := make([]int, 0, len(l.Nodes))
	for number := range l.Nodes {
		numbers = append(numbers, number)
	}

	sort.Ints(numbers)

	return numbers
}

// MaxNodeNumber returns the highest node number, or 0 for a level without nodes.
func (l Level) MaxNodeNumber() int {
	maxNumber := 0
	for number := range l.Nodes {
		if number > maxNumber {
			maxNumber = number
		}
	}

	return maxNumber
}

// Position returns the cell holding node number.
func (l Level) Position(number int) (GridPosition, bool) {
	pos, ok := l.Nodes[number]
	return pos, ok
}

// NodeNumber returns the number of the node at pos, if any.
func (l Level) NodeNumber(pos GridPosition) (int, bool) {
	for number, nodePos := range l.Nodes {
		if nodePos == pos {
			return number, true
		}
	}

	return 0, false
}

// ColorForNode returns the palette index used to draw node number.
func (l Level) ColorForNode(number int) int {
	return PaletteIndex(number)
}
