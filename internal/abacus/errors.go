package abacus

import "fmt"

// ConfigError indicates that board construction parameters are invalid,
// for example a radix below 2 or a board with no columns.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid abacus config: %s=%d (%s)", e.Field, e.Value, e.Reason)
}

// IndexError indicates a column index outside [0, column count) on a
// column-addressed operation.
type IndexError struct {
	Index   int
	Columns int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("column index %d out of range [0, %d)", e.Index, e.Columns)
}

// PositionError indicates a bead position outside a deck on a click-toggle
// operation. Positions are 1-based within the deck.
type PositionError struct {
	Position int
	Beads    int
}

// Error implements the error interface.
func (e *PositionError) Error() string {
	return fmt.Sprintf("bead position %d out of range [1, %d]", e.Position, e.Beads)
}

// OverflowError indicates that a total or place value does not fit in a
// uint64 for the current radix and column count. The board never wraps
// silently; callers see this error instead.
type OverflowError struct {
	Op     string
	Column int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: value overflows uint64 at column %d", e.Op, e.Column)
}
