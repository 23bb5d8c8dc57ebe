package abacus

import "math/bits"

// Params holds the structural configuration of a board. All columns
// share the same deck configuration; any structural change rebuilds the
// board through New rather than resizing in place.
type Params struct {
	Columns     int
	UpperBeads  int
	LowerBeads  int
	UpperWeight uint64
	Radix       uint64
}

// Validate checks construction parameters, returning a ConfigError for
// the first violated precondition.
func (p Params) Validate() error {
	if p.Columns < 1 {
		return &ConfigError{Field: "columns", Value: p.Columns, Reason: "at least one column required"}
	}
	if p.UpperBeads < 0 {
		return &ConfigError{Field: "upper_beads", Value: p.UpperBeads, Reason: "must be non-negative"}
	}
	if p.LowerBeads < 0 {
		return &ConfigError{Field: "lower_beads", Value: p.LowerBeads, Reason: "must be non-negative"}
	}
	if p.Radix < 2 {
		return &ConfigError{Field: "radix", Value: int(p.Radix), Reason: "radix must be at least 2"}
	}
	return nil
}

// Board is an ordered sequence of columns interpreted as digits of a
// positional numeral in a configurable radix. Column 0 is the least
// significant digit.
//
// A board is not safe for concurrent mutation; callers embedding it in
// a concurrent host must serialize access.
type Board struct {
	columns []Column
	params  Params

	// total caches the last decoded or encoded total. It is purely a
	// display cache; TotalValue recomputes it from bead state.
	total uint64

	onChange func()
}

// New builds a board from params with every column at zero.
func New(p Params) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cols := make([]Column, p.Columns)
	for i := range cols {
		cols[i] = newColumn(p.UpperBeads, p.LowerBeads, p.UpperWeight)
	}
	return &Board{columns: cols, params: p}, nil
}

// SetOnChange registers the change notification callback. The callback
// is an unparameterized dirty signal: consumers re-read column and
// total values after observing it.
func (b *Board) SetOnChange(fn func()) {
	b.onChange = fn
}

func (b *Board) notify() {
	if b.onChange != nil {
		b.onChange()
	}
}

// Params returns the structural configuration the board was built from.
func (b *Board) Params() Params { return b.params }

// ColumnCount returns the number of columns.
func (b *Board) ColumnCount() int { return len(b.columns) }

// Radix returns the positional base weighting the columns.
func (b *Board) Radix() uint64 { return b.params.Radix }

// Column returns a copy of column i's bead state for display.
func (b *Board) Column(i int) (Column, error) {
	if i < 0 || i >= len(b.columns) {
		return Column{}, &IndexError{Index: i, Columns: len(b.columns)}
	}
	return b.columns[i], nil
}

// ColumnValue decodes column i's digit value.
func (b *Board) ColumnValue(i int) (uint64, error) {
	if i < 0 || i >= len(b.columns) {
		return 0, &IndexError{Index: i, Columns: len(b.columns)}
	}
	return b.columns[i].Value(), nil
}

// ColumnMaxValue returns the ceiling column i can represent.
func (b *Board) ColumnMaxValue(i int) (uint64, error) {
	if i < 0 || i >= len(b.columns) {
		return 0, &IndexError{Index: i, Columns: len(b.columns)}
	}
	return b.columns[i].MaxValue(), nil
}

// TotalValue computes the sum of column values weighted by radix^i,
// refreshes the display cache, and returns the result. Arithmetic is
// checked: configurations whose total cannot fit in a uint64 yield an
// OverflowError instead of wrapping.
func (b *Board) TotalValue() (uint64, error) {
	total, err := b.weightedSum("total value", Column.Value)
	if err != nil {
		return 0, err
	}
	b.total = total
	return total, nil
}

// CachedTotal returns the last computed total without re-decoding.
// It may be stale; callers should refresh via TotalValue after a
// change notification.
func (b *Board) CachedTotal() uint64 { return b.total }

// MaxTotalValue returns the largest total the board can represent,
// used to clamp writes.
func (b *Board) MaxTotalValue() (uint64, error) {
	return b.weightedSum("max total value", Column.MaxValue)
}

// weightedSum folds value(column) * radix^i over all columns with
// overflow checking. Columns whose place value exceeds the uint64 range
// only trigger an OverflowError when they would actually contribute.
func (b *Board) weightedSum(op string, value func(Column) uint64) (uint64, error) {
	var sum uint64
	place := uint64(1)
	placeOverflowed := false
	for i, col := range b.columns {
		v := value(col)
		if v > 0 {
			if placeOverflowed {
				return 0, &OverflowError{Op: op, Column: i}
			}
			hi, term := bits.Mul64(v, place)
			if hi != 0 {
				return 0, &OverflowError{Op: op, Column: i}
			}
			next, carry := bits.Add64(sum, term, 0)
			if carry != 0 {
				return 0, &OverflowError{Op: op, Column: i}
			}
			sum = next
		}
		if i < len(b.columns)-1 && !placeOverflowed {
			hi, next := bits.Mul64(place, b.params.Radix)
			if hi != 0 {
				placeOverflowed = true
			} else {
				place = next
			}
		}
	}
	return sum, nil
}

// SetColumnValue clamps target to column i's ceiling, encodes it, and
// raises a single change notification.
func (b *Board) SetColumnValue(i int, target uint64) error {
	if i < 0 || i >= len(b.columns) {
		return &IndexError{Index: i, Columns: len(b.columns)}
	}
	b.columns[i].Encode(target)
	b.notify()
	return nil
}

// SetTotalValue distributes target across the columns, most significant
// first, and raises one change notification for the whole batch.
//
// The digit at each step is remaining / radix^i in the board's stated
// radix, deliberately ignoring the column's true capacity beyond the
// single clamp against MaxTotalValue. A 2/5 column can hold 0..15 under
// a declared radix of 10; the decomposition trusts the radix for place
// value regardless, modeling a real abacus's redundant digit forms.
//
// The write is all-or-nothing: the digit plan is computed before any
// column mutates, so a failed clamp leaves the board untouched.
func (b *Board) SetTotalValue(target uint64) error {
	maxTotal, err := b.MaxTotalValue()
	if err != nil {
		return err
	}
	target = min(target, maxTotal)

	n := len(b.columns)
	plan := make([]uint64, n)
	start := 0
	remaining := target
	for i := n - 1; i >= 0; i-- {
		place, ok := pow(b.params.Radix, i)
		if !ok {
			// Place value exceeds the uint64 range: this column
			// absorbs everything left and the walk stops.
			plan[i] = remaining
			start = i
			remaining = 0
			break
		}
		plan[i] = remaining / place
		remaining %= place
	}

	for i := start; i < n; i++ {
		b.columns[i].Encode(plan[i])
	}

	b.total = target
	b.notify()
	return nil
}

// ClickLower applies the click-toggle rule to the lower deck of column
// i at 1-based bead position pos. This is the write path driven
// directly by bead clicks rather than a numeric target.
func (b *Board) ClickLower(i, pos int) error {
	if i < 0 || i >= len(b.columns) {
		return &IndexError{Index: i, Columns: len(b.columns)}
	}
	if err := b.columns[i].ToggleLower(pos); err != nil {
		return err
	}
	b.notify()
	return nil
}

// ClickUpper applies the click-toggle rule to the upper deck of column
// i at 1-based bead position pos.
func (b *Board) ClickUpper(i, pos int) error {
	if i < 0 || i >= len(b.columns) {
		return &IndexError{Index: i, Columns: len(b.columns)}
	}
	if err := b.columns[i].ToggleUpper(pos); err != nil {
		return err
	}
	b.notify()
	return nil
}

// pow returns radix^exp, reporting ok=false when the result does not
// fit in a uint64.
func pow(radix uint64, exp int) (uint64, bool) {
	result := uint64(1)
	for range exp {
		hi, lo := bits.Mul64(result, radix)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}
