package model

// PathError is the reason a cell could not be added to the path.
// The set of values is closed; compare with == or errors.Is.
type PathError int

// Path errors in the order AddPosition checks them.
const (
	ErrOutOfBounds PathError = iota + 1
	ErrMustStartAtOne
	ErrCellAlreadyVisited
	ErrNotAdjacent
	ErrSkipNumber
)

// PathErrors lists every PathError in precedence order.
var PathErrors = []PathError{
	ErrOutOfBounds,
	ErrMustStartAtOne,
	ErrCellAlreadyVisited,
	ErrNotAdjacent,
	ErrSkipNumber,
}

func (e PathError) Error() string {
	switch e {
	case ErrOutOfBounds:
		return "Position is outside the grid"
	case ErrMustStartAtOne:
		return "Path must start at node 1"
	case ErrCellAlreadyVisited:
		return "Cannot revisit cells"
	case ErrNotAdjacent:
		return "Can only move to adjacent cells"
	case ErrSkipNumber:
		return "Must visit nodes in sequence"
	}

	return "unknown path error"
}

// Code returns a short machine-friendly name, e.g. "notAdjacent".
func (e PathError) Code() string {
	switch e {
	case ErrOutOfBounds:
		return "outOfBounds"
	case ErrMustStartAtOne:
		return "mustStartAtOne"
	case ErrCellAlreadyVisited:
		return "cellAlreadyVisited"
	case ErrNotAdjacent:
		return "notAdjacent"
	case ErrSkipNumber:
		return "skipNumber"
	}

	return "unknown"
}
