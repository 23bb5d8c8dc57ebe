package abacus

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawBoard generates a board with a sane interactive configuration:
// 1..12 columns, 0..4 upper beads, 0..9 lower beads, weight 0..10,
// radix 2..16.
func drawBoard(t *rapid.T) *Board {
	p := Params{
		Columns:     rapid.IntRange(1, 12).Draw(t, "columns"),
		UpperBeads:  rapid.IntRange(0, 4).Draw(t, "upperBeads"),
		LowerBeads:  rapid.IntRange(0, 9).Draw(t, "lowerBeads"),
		UpperWeight: rapid.Uint64Range(0, 10).Draw(t, "upperWeight"),
		Radix:       rapid.Uint64Range(2, 16).Draw(t, "radix"),
	}
	b, err := New(p)
	if err != nil {
		t.Fatalf("New(%+v): %v", p, err)
	}
	return b
}

// TestProperty_SetTotalValueIdempotent verifies that encoding a decoded
// total is a fixpoint: set(v); a := total(); set(a) leaves total() == a.
func TestProperty_SetTotalValueIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		v := rapid.Uint64Range(0, 1<<40).Draw(t, "v")

		if err := b.SetTotalValue(v); err != nil {
			t.Fatalf("SetTotalValue(%d): %v", v, err)
		}
		a, err := b.TotalValue()
		if err != nil {
			t.Fatalf("TotalValue: %v", err)
		}

		if err := b.SetTotalValue(a); err != nil {
			t.Fatalf("SetTotalValue(%d): %v", a, err)
		}
		got, err := b.TotalValue()
		if err != nil {
			t.Fatalf("TotalValue: %v", err)
		}
		if got != a {
			t.Errorf("idempotence violated: set(%d) then set(%d) decodes to %d", v, a, got)
		}
	})
}

// TestProperty_RoundTripStandardColumns verifies exact round trips for
// boards whose columns are standard base-radix digits: max value of
// every column equals radix-1.
func TestProperty_RoundTripStandardColumns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		radix := rapid.Uint64Range(2, 16).Draw(t, "radix")

		// Two standard shapes: a pure counting column (no upper deck,
		// radix-1 lower beads), or for even radixes the classic split
		// deck (one bead of weight radix/2, radix/2-1 lower beads).
		// Both represent every digit 0..radix-1 exactly and nothing
		// more; a second upper bead would push the ceiling past
		// radix-1 and trigger the documented divergence instead.
		p := Params{
			Columns:    rapid.IntRange(1, 10).Draw(t, "columns"),
			LowerBeads: int(radix - 1),
			Radix:      radix,
		}
		if radix%2 == 0 && rapid.Bool().Draw(t, "splitDeck") {
			p.UpperBeads = 1
			p.LowerBeads = int(radix/2 - 1)
			p.UpperWeight = radix / 2
		}
		b, err := New(p)
		if err != nil {
			t.Fatalf("New(%+v): %v", p, err)
		}

		maxTotal, err := b.MaxTotalValue()
		if err != nil {
			t.Fatalf("MaxTotalValue: %v", err)
		}
		v := rapid.Uint64Range(0, maxTotal).Draw(t, "v")

		if err := b.SetTotalValue(v); err != nil {
			t.Fatalf("SetTotalValue(%d): %v", v, err)
		}
		got, err := b.TotalValue()
		if err != nil {
			t.Fatalf("TotalValue: %v", err)
		}
		if got != v {
			t.Errorf("round trip violated: set(%d) decodes to %d", v, got)
		}
	})
}

// TestProperty_ClampToCeiling verifies that writes above the board
// ceiling cache the ceiling itself.
func TestProperty_ClampToCeiling(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)

		maxTotal, err := b.MaxTotalValue()
		if err != nil {
			t.Fatalf("MaxTotalValue: %v", err)
		}
		k := rapid.Uint64Range(1, 1<<32).Draw(t, "k")
		target := maxTotal + k
		if target < maxTotal {
			t.Skip("target wraps uint64")
		}

		if err := b.SetTotalValue(target); err != nil {
			t.Fatalf("SetTotalValue(%d): %v", target, err)
		}
		if b.CachedTotal() != maxTotal {
			t.Errorf("clamp violated: cached %d, want ceiling %d", b.CachedTotal(), maxTotal)
		}
		got, err := b.TotalValue()
		if err != nil {
			t.Fatalf("TotalValue: %v", err)
		}
		if got > maxTotal {
			t.Errorf("decoded total %d exceeds ceiling %d", got, maxTotal)
		}
	})
}

// TestProperty_ColumnMonotonicity verifies the column write contract:
// targets within the ceiling that are representable decode back
// exactly; targets above it decode to at most the ceiling.
func TestProperty_ColumnMonotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)
		i := rapid.IntRange(0, b.ColumnCount()-1).Draw(t, "i")

		maxVal, err := b.ColumnMaxValue(i)
		if err != nil {
			t.Fatalf("ColumnMaxValue(%d): %v", i, err)
		}
		x := rapid.Uint64Range(0, maxVal+20).Draw(t, "x")

		if err := b.SetColumnValue(i, x); err != nil {
			t.Fatalf("SetColumnValue(%d, %d): %v", i, x, err)
		}
		got, err := b.ColumnValue(i)
		if err != nil {
			t.Fatalf("ColumnValue(%d): %v", i, err)
		}

		if got > maxVal {
			t.Errorf("column %d decoded %d above ceiling %d", i, got, maxVal)
		}
		if x > maxVal && got != maxVal {
			t.Errorf("column %d: target %d above ceiling should clamp to %d, got %d", i, x, maxVal, got)
		}
		if x <= maxVal && got > x {
			t.Errorf("column %d: target %d decoded to larger value %d", i, x, got)
		}
	})
}

// TestProperty_ClickToggleLower verifies the click-toggle semantics on
// the lower deck: clicking position p activates p beads unless exactly
// p are active, in which case one retracts.
func TestProperty_ClickToggleLower(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lower := rapid.IntRange(1, 9).Draw(t, "lowerBeads")
		b, err := New(Params{
			Columns:     rapid.IntRange(1, 5).Draw(t, "columns"),
			UpperBeads:  rapid.IntRange(0, 2).Draw(t, "upperBeads"),
			LowerBeads:  lower,
			UpperWeight: 5,
			Radix:       10,
		})
		require.NoError(t, err)

		i := rapid.IntRange(0, b.ColumnCount()-1).Draw(t, "i")
		clicks := rapid.SliceOfN(rapid.IntRange(1, lower), 1, 30).Draw(t, "clicks")

		active := 0
		for _, p := range clicks {
			if err := b.ClickLower(i, p); err != nil {
				t.Fatalf("ClickLower(%d, %d): %v", i, p, err)
			}
			if active != p {
				active = p
			} else {
				active = p - 1
			}
			col, err := b.Column(i)
			if err != nil {
				t.Fatalf("Column(%d): %v", i, err)
			}
			if col.ActiveLower() != active {
				t.Fatalf("after clicking %d: %d active lower beads, want %d", p, col.ActiveLower(), active)
			}
			if col.ActiveLower() < 0 || col.ActiveLower() > lower {
				t.Fatalf("lower deck invariant violated: %d active of %d", col.ActiveLower(), lower)
			}
		}
	})
}

// TestProperty_DecodedDigitsNeverExceedColumnCeiling verifies that no
// sequence of writes can push a column past its ceiling.
func TestProperty_DecodedDigitsNeverExceedColumnCeiling(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBoard(t)

		n := rapid.IntRange(1, 20).Draw(t, "ops")
		for op := 0; op < n; op++ {
			switch rapid.IntRange(0, 2).Draw(t, "kind") {
			case 0:
				v := rapid.Uint64Range(0, 1<<32).Draw(t, "total")
				if err := b.SetTotalValue(v); err != nil {
					t.Fatalf("SetTotalValue: %v", err)
				}
			case 1:
				i := rapid.IntRange(0, b.ColumnCount()-1).Draw(t, "col")
				v := rapid.Uint64Range(0, 100).Draw(t, "digit")
				if err := b.SetColumnValue(i, v); err != nil {
					t.Fatalf("SetColumnValue: %v", err)
				}
			case 2:
				i := rapid.IntRange(0, b.ColumnCount()-1).Draw(t, "col")
				if b.Params().LowerBeads > 0 {
					p := rapid.IntRange(1, b.Params().LowerBeads).Draw(t, "pos")
					if err := b.ClickLower(i, p); err != nil {
						t.Fatalf("ClickLower: %v", err)
					}
				}
			}
		}

		for i := 0; i < b.ColumnCount(); i++ {
			v, err := b.ColumnValue(i)
			if err != nil {
				t.Fatalf("ColumnValue(%d): %v", i, err)
			}
			maxVal, err := b.ColumnMaxValue(i)
			if err != nil {
				t.Fatalf("ColumnMaxValue(%d): %v", i, err)
			}
			if v > maxVal {
				t.Errorf("column %d decoded %d above ceiling %d", i, v, maxVal)
			}
		}
	})
}
