// Package abacus implements the positional bead-to-value numeral model:
// the bidirectional mapping between a physical bead arrangement and the
// non-negative integer it represents, generalized over a configurable
// radix, column count, and per-deck bead counts and weights.
//
// The package is pure state and arithmetic. Rendering, picking, and
// animation live in the UI layers, which read column and total values
// for display and push new target values from user input.
package abacus

// Column is one vertical bead track split into an upper (weighted) deck
// and a lower (unit) deck, separated by the reference bar. Each active
// lower bead contributes 1; each active upper bead contributes the
// deck's weight, so a 2/5 column with weight 5 spans 0..15.
type Column struct {
	upperBeads  int
	lowerBeads  int
	upperWeight uint64

	// inactiveLower counts lower beads pushed away from the bar.
	// Invariant: 0 <= inactiveLower <= lowerBeads.
	inactiveLower int

	// activeUpper counts upper beads pushed toward the bar.
	// Invariant: 0 <= activeUpper <= upperBeads.
	activeUpper int
}

// newColumn creates a column with all beads inactive (pushed away from
// the bar), representing zero.
func newColumn(upperBeads, lowerBeads int, upperWeight uint64) Column {
	return Column{
		upperBeads:    upperBeads,
		lowerBeads:    lowerBeads,
		upperWeight:   upperWeight,
		inactiveLower: lowerBeads,
	}
}

// UpperActive reports whether any upper bead currently contributes its
// weight.
func (c Column) UpperActive() bool {
	return c.activeUpper > 0
}

// ActiveLower returns the number of lower beads pushed toward the bar.
func (c Column) ActiveLower() int {
	return c.lowerBeads - c.inactiveLower
}

// UpperCount returns the number of upper beads pushed toward the bar.
// Each contributes the deck's weight to the column value.
func (c Column) UpperCount() int { return c.activeUpper }

// UpperBeads returns the upper deck's bead count.
func (c Column) UpperBeads() int { return c.upperBeads }

// LowerBeads returns the lower deck's bead count.
func (c Column) LowerBeads() int { return c.lowerBeads }

// UpperWeight returns the value each active upper bead contributes.
func (c Column) UpperWeight() uint64 { return c.upperWeight }

// Value decodes the current bead arrangement into the column's digit
// value.
func (c Column) Value() uint64 {
	return uint64(c.lowerBeads-c.inactiveLower) + uint64(c.activeUpper)*c.upperWeight
}

// MaxValue returns the largest value this column can represent: all
// lower beads active plus every upper bead's weight.
func (c Column) MaxValue() uint64 {
	return uint64(c.lowerBeads) + uint64(c.upperBeads)*c.upperWeight
}

// Encode arranges the beads to represent target, clamped to
// [0, MaxValue()]. It returns the clamped target. Encode never raises
// notifications; the board does, once per batch of updates.
func (c *Column) Encode(target uint64) uint64 {
	clamped := min(target, c.MaxValue())

	remainder := clamped
	c.activeUpper = 0
	if c.upperBeads > 0 && c.upperWeight > 0 {
		c.activeUpper = int(min(clamped/c.upperWeight, uint64(c.upperBeads)))
		remainder = clamped - uint64(c.activeUpper)*c.upperWeight
	}

	// Defensive: MaxValue construction already guarantees this.
	remainder = min(remainder, uint64(c.lowerBeads))

	c.inactiveLower = c.lowerBeads - int(remainder)
	return clamped
}

// ToggleLower applies the click-toggle rule to the lower deck: activate
// beads up to and including 1-based position pos, unless exactly pos
// beads are already active, in which case retract one.
func (c *Column) ToggleLower(pos int) error {
	if pos < 1 || pos > c.lowerBeads {
		return &PositionError{Position: pos, Beads: c.lowerBeads}
	}
	active := c.lowerBeads - c.inactiveLower
	if active != pos {
		active = pos
	} else {
		active = pos - 1
	}
	c.inactiveLower = c.lowerBeads - active
	return nil
}

// ToggleUpper applies the same click-toggle rule to the upper deck:
// activate beads up to and including 1-based position pos, unless
// exactly pos are already active, in which case retract one.
func (c *Column) ToggleUpper(pos int) error {
	if pos < 1 || pos > c.upperBeads {
		return &PositionError{Position: pos, Beads: c.upperBeads}
	}
	if c.activeUpper != pos {
		c.activeUpper = pos
	} else {
		c.activeUpper = pos - 1
	}
	return nil
}
