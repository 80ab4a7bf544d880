package model

import (
	"fmt"
	"strconv"
	"strings"
)

// GridPosition identifies a single cell of a square puzzle grid.
// It is comparable, so it can be used directly as a map key.
type GridPosition struct {
	Row int
	Col int
}

// Pos is shorthand for GridPosition{Row: row, Col: col}.
func Pos(row, col int) GridPosition {
	return GridPosition{Row: row, Col: col}
}

// IsAdjacent reports whether other is one step away horizontally or
// vertically. Diagonal neighbours and the position itself are not adjacent.
func (p GridPosition) IsAdjacent(other GridPosition) bool {
	rowDiff := abs(p.Row - other.Row)
	colDiff := abs(p.Col - other.Col)

	return (rowDiff == 1 && colDiff == 0) || (rowDiff == 0 && colDiff == 1)
}

// IsWithinBounds reports whether the position lies on a gridSize x gridSize grid.
func (p GridPosition) IsWithinBounds(gridSize int) bool {
	return p.Row >= 0 && p.Row < gridSize && p.Col >= 0 && p.Col < gridSize
}

// DirectionTo returns the direction of an adjacent cell.
// The boolean is false when other is not adjacent.
func (p GridPosition) DirectionTo(other GridPosition) (Direction, bool) {
	if !p.IsAdjacent(other) {
		return DirectionNone, false
	}

	switch {
	case other.Row < p.Row:
		return DirectionUp, true
	case other.Row > p.Row:
		return DirectionDown, true
	case other.Col < p.Col:
		return DirectionLeft, true
	default:
		return DirectionRight, true
	}
}

// Neighbor returns the cell one step away in the given direction.
func (p GridPosition) Neighbor(d Direction) GridPosition {
	switch d {
	case DirectionUp:
		return GridPosition{Row: p.Row - 1, Col: p.Col}
	case DirectionDown:
		return GridPosition{Row: p.Row + 1, Col: p.Col}
	case DirectionLeft:
		return GridPosition{Row: p.Row, Col: p.Col - 1}
	case DirectionRight:
		return GridPosition{Row: p.Row, Col: p.Col + 1}
	case DirectionNone:
	}

	return p
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ParsePosition parses "row,col", optionally wrapped in parentheses.
func ParsePosition(s string) (GridPosition, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return GridPosition{}, fmt.Errorf("invalid position %q: want row,col", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return GridPosition{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return GridPosition{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}

	return GridPosition{Row: row, Col: col}, nil
}

// ParsePositions parses every argument with ParsePosition.
func ParsePositions(args []string) ([]GridPosition, error) {
	positions := make([]GridPosition, 0, len(args))

	for _, arg := range args {
		pos, err := ParsePosition(arg)
		if err != nil {
			return nil, err
		}

		positions = append(positions, pos)
	}

	return positions, nil
}

// Direction is one of the four cardinal moves on the grid.
type Direction int

// Available Direction values.
const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionNone:
	}

	return "none"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
