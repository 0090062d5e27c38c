package guess

import (
	"fmt"
	"unicode"
)

// Ledger is the ordered history of rows submitted in a session.
// Rows are never edited after Append; Reset is the only removal.
type Ledger struct {
	width      int
	rows       []Row
	generation uint64
}

// NewLedger returns an empty ledger for words of the given length.
func NewLedger(width int) *Ledger {
	return &Ledger{width: width}
}

// Width returns the word length every row must match.
func (l *Ledger) Width() int {
	return l.width
}

// Append validates and stores a copy of row. On error the ledger is unchanged.
func (l *Ledger) Append(row Row) error {
	if err := row.Validate(l.width); err != nil {
		return fmt.Errorf("invalid guess %q: %w", row.Word(), err)
	}
	stored := row.clone()
	for i := range stored {
		stored[i].Char = unicode.ToUpper(stored[i].Char)
	}
	l.rows = append(l.rows, stored)
	l.generation++
	return nil
}

// Reset clears every row and switches the ledger to a new word length.
func (l *Ledger) Reset(width int) {
	l.width = width
	l.rows = nil
	l.generation++
}

// Len returns the number of submitted rows.
func (l *Ledger) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the submitted rows in submission order.
func (l *Ledger) Rows() []Row {
	out := make([]Row, len(l.rows))
	for i, row := range l.rows {
		out[i] = row.clone()
	}
	return out
}

// Last returns the most recent row, or nil for an empty ledger.
func (l *Ledger) Last() Row {
	if len(l.rows) == 0 {
		return nil
	}
	return l.rows[len(l.rows)-1].clone()
}

// Generation changes on every Append and Reset. Views computed for an
// older generation are stale.
func (l *Ledger) Generation() uint64 {
	return l.generation
}

// Each calls fn for every row in order until fn returns false. The row
// must not be retained or modified.
func (l *Ledger) Each(fn func(Row) bool) {
	if l == nil {
		return
	}
	for _, row := range l.rows {
		if !fn(row) {
			return
		}
	}
}
