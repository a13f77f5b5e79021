// Package board implements the 9x9 grid model: per-cell candidate
// sets, the active unit list, and the assignment cascade that keeps
// candidate sets consistent with placed digits.
package board

import (
	"fmt"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
)

// Board is the mutable solver state: one candidate set per cell plus
// a shared, immutable Layout. A cell is fixed when its candidate set
// has exactly one member; an empty candidate set marks a
// contradiction on the current branch.
type Board struct {
	cells  [81]sudoku.DigitSet
	layout *Layout
}

// Parse builds a board from an 81-character row-major puzzle string
// where '.' marks an empty cell. It returns *sudoku.InvalidPuzzleError
// when the string has the wrong length, contains a character other
// than '.' or '1'-'9', or places the same digit twice in one unit.
func Parse(text string, variant sudoku.Variant) (*Board, error) {
	if len(text) != 81 {
		return nil, &sudoku.InvalidPuzzleError{
			Reason: fmt.Sprintf("expected 81 characters, got %d", len(text)),
		}
	}
	givens := [81]sudoku.Digit{}
	for i := 0; i < 81; i++ {
		switch ch := text[i]; {
		case ch == '.':
		case ch >= '1' && ch <= '9':
			givens[i] = sudoku.Digit(ch - '0')
		default:
			return nil, &sudoku.InvalidPuzzleError{
				Reason: fmt.Sprintf("illegal character %q at %s", ch, sudoku.Position(i)),
			}
		}
	}

	layout := LayoutFor(variant)
	for _, u := range layout.Units() {
		var seen sudoku.DigitSet
		for _, p := range u.Cells {
			d := givens[p]
			if d == 0 {
				continue
			}
			if seen.Has(d) {
				return nil, &sudoku.InvalidPuzzleError{
					Reason: fmt.Sprintf("digit %d repeats in %s", d, u.Name),
				}
			}
			seen = seen.Add(d)
		}
	}

	b := New(variant)
	for i, d := range givens {
		if d == 0 {
			continue
		}
		// A conflicting cascade is not a malformed puzzle; it
		// surfaces later as an unsolvable board.
		b.Assign(sudoku.Position(i), d)
	}
	return b, nil
}

// New returns an empty board in which every cell may hold any digit.
func New(variant sudoku.Variant) *Board {
	b := &Board{layout: LayoutFor(variant)}
	for i := range b.cells {
		b.cells[i] = sudoku.AllDigits
	}
	return b
}

func (b *Board) Variant() sudoku.Variant {
	return b.layout.Variant()
}

func (b *Board) Units() []Unit {
	return b.layout.Units()
}

// Candidates returns the candidate set of the cell at p.
func (b *Board) Candidates(p sudoku.Position) sudoku.DigitSet {
	return b.cells[p]
}

// Fixed returns the digit placed at p, or false if the cell is still
// open.
func (b *Board) Fixed(p sudoku.Position) (sudoku.Digit, bool) {
	return b.cells[p].Single()
}

// Assign fixes digit d at position p and removes d from the candidate
// set of every peer. Peers reduced to a single candidate are assigned
// recursively. Assign reports false when the cascade empties some
// candidate set; the board is then in a contradiction state and the
// branch should be discarded.
func (b *Board) Assign(p sudoku.Position, d sudoku.Digit) bool {
	if fixed, ok := b.cells[p].Single(); ok {
		return fixed == d
	}
	if !b.cells[p].Has(d) {
		b.cells[p] = 0
		return false
	}
	b.cells[p] = sudoku.SetOf(d)
	return b.cascade(p, d)
}

// Eliminate removes d from the candidate set at p, assigning the cell
// if a single candidate remains. It reports false when the removal
// (or its cascade) produces an empty candidate set.
func (b *Board) Eliminate(p sudoku.Position, d sudoku.Digit) bool {
	if !b.cells[p].Has(d) {
		return true
	}
	b.cells[p] = b.cells[p].Remove(d)
	switch b.cells[p].Len() {
	case 0:
		return false
	case 1:
		// Naked single: the forced digit propagates to peers.
		last, _ := b.cells[p].Single()
		return b.cascade(p, last)
	}
	return true
}

func (b *Board) cascade(p sudoku.Position, d sudoku.Digit) bool {
	ok := true
	peers := b.layout.Peers(p)
	for q, more := peers.NextSet(0); more; q, more = peers.NextSet(q + 1) {
		if !b.Eliminate(sudoku.Position(q), d) {
			ok = false
		}
	}
	return ok
}

// Solved reports whether every cell is fixed and every unit contains
// each digit exactly once.
func (b *Board) Solved() bool {
	for i := range b.cells {
		if b.cells[i].Len() != 1 {
			return false
		}
	}
	for _, u := range b.layout.Units() {
		var seen sudoku.DigitSet
		for _, p := range u.Cells {
			d, _ := b.cells[p].Single()
			seen = seen.Add(d)
		}
		if seen != sudoku.AllDigits {
			return false
		}
	}
	return true
}

// Contradiction reports whether the board can no longer be completed:
// some cell has no remaining candidate, or a unit holds the same
// fixed digit twice.
func (b *Board) Contradiction() bool {
	for i := range b.cells {
		if b.cells[i] == 0 {
			return true
		}
	}
	for _, u := range b.layout.Units() {
		var seen sudoku.DigitSet
		for _, p := range u.Cells {
			d, ok := b.cells[p].Single()
			if !ok {
				continue
			}
			if seen.Has(d) {
				return true
			}
			seen = seen.Add(d)
		}
	}
	return false
}

// Clone returns an independent copy of the board for speculative
// search. The cell array is copied by value; the layout is shared.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// String renders the board as an 81-character row-major string with
// '.' for open cells.
func (b *Board) String() string {
	out := make([]byte, 81)
	for i := range b.cells {
		if d, ok := b.cells[i].Single(); ok {
			out[i] = byte('0' + d)
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Grid returns the fixed digits as a 9x9 array, zero for open cells.
// This is the form handed to rendering collaborators.
func (b *Board) Grid() [9][9]sudoku.Digit {
	var g [9][9]sudoku.Digit
	for i := range b.cells {
		if d, ok := b.cells[i].Single(); ok {
			p := sudoku.Position(i)
			g[p.Row()][p.Col()] = d
		}
	}
	return g
}
