package model

// LevelSummary describes one level in a listing or validation report.
type LevelSummary struct {
	Index  int    // 1-based position within its source
	Source string // file path, or BuiltinSource
	Level  Level
	Err    error // result of Level.Check
}

// BuiltinSource marks levels that ship with the binary.
const BuiltinSource = "built-in"

// Valid reports whether the level passed its structural checks.
func (s LevelSummary) Valid() bool {
	return s.Err == nil
}

// ValidationReport holds the outcome of validating one level source.
type ValidationReport struct {
	Source  string
	Levels  []LevelSummary
	LoadErr error // the source could not be read or parsed
}

// Invalid counts levels that failed validation.
func (r ValidationReport) Invalid() int {
	count := 0

	for _, l := range r.Levels {
		if !l.Valid() {
			count++
		}
	}

	return count
}

// OK reports whether the source loaded and every level in it is valid.
func (r ValidationReport) OK() bool {
	return r.LoadErr == nil && r.Invalid() == 0
}

// ReplayStep is the result of applying one move during a replay.
type ReplayStep struct {
	Index         int // 1-based
	Position      GridPosition
	Outcome       string
	Err           error
	CurrentNumber int
	PathLength    int
	Complete      bool
}

// Accepted reports whether the move changed or kept the path without error.
func (s ReplayStep) Accepted() bool {
	return s.Err == nil
}

// ReplayReport summarizes a replayed move list.
type ReplayReport struct {
	Level    Level
	Steps    []ReplayStep
	Path     []GridPosition
	Current  int
	Complete bool
}

// Rejected counts moves that were refused.
func (r ReplayReport) Rejected() int {
	count := 0

	for _, s := range r.Steps {
		if !s.Accepted() {
			count++
		}
	}

	return count
}
