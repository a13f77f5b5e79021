package sudoku

import (
	"fmt"
	"math/bits"
)

// Digit is a sudoku digit in the range 1-9. The zero value means
// "no digit" and never appears inside a candidate set.
type Digit uint8

// Position identifies a cell on the 9x9 grid in row-major order,
// in the range 0-80.
type Position uint8

// Pos returns the Position for the given row and column, each in 0-8.
func Pos(row, col int) Position {
	return Position(row*9 + col)
}

func (p Position) Row() int {
	return int(p) / 9
}

func (p Position) Col() int {
	return int(p) % 9
}

// Box returns the index (0-8) of the 3x3 box containing p, counted
// row-major from the top-left box.
func (p Position) Box() int {
	return (p.Row()/3)*3 + p.Col()/3
}

// String renders the position in chess-like coordinates, rows A-I top
// to bottom and columns 1-9 left to right.
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Row(), p.Col()+1)
}

// DigitSet is a set of candidate digits represented as a bit mask:
// bit d is set when digit d is a member. Bits 1 through 9 are used.
// DigitSet is a value type; Add and Remove return the updated set.
type DigitSet uint16

// AllDigits is the set containing every digit 1-9.
const AllDigits DigitSet = 0x3FE

func SetOf(digits ...Digit) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s = s.Add(d)
	}
	return s
}

func (s DigitSet) Has(d Digit) bool {
	return s&(1<<d) != 0
}

func (s DigitSet) Add(d Digit) DigitSet {
	return s | 1<<d
}

func (s DigitSet) Remove(d Digit) DigitSet {
	return s &^ (1 << d)
}

// Len returns the number of digits in the set.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Single returns the sole member of the set, or false if the set does
// not contain exactly one digit.
func (s DigitSet) Single() (Digit, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s))), true
}

// Digits returns the members of the set in ascending order.
func (s DigitSet) Digits() []Digit {
	out := make([]Digit, 0, s.Len())
	for d := Digit(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the members in ascending order with no separator,
// e.g. "257". The empty set renders as "".
func (s DigitSet) String() string {
	b := make([]byte, 0, s.Len())
	for d := Digit(1); d <= 9; d++ {
		if s.Has(d) {
			b = append(b, byte('0'+d))
		}
	}
	return string(b)
}

// Variant selects the active constraint set for a puzzle.
type Variant string

const (
	// VariantStandard enforces rows, columns, and boxes (27 units).
	VariantStandard Variant = "standard"
	// VariantDiagonal additionally enforces both main diagonals
	// (29 units).
	VariantDiagonal Variant = "diagonal"
)

// ParseVariant returns the Variant named by s.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantStandard, VariantDiagonal:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown variant %q (expected %q or %q)", s, VariantStandard, VariantDiagonal)
}

// InvalidPuzzleError reports a puzzle string that cannot be turned
// into a board: wrong length, an illegal character, or a given digit
// that immediately repeats within one of its units.
type InvalidPuzzleError struct {
	Reason string
}

func (e *InvalidPuzzleError) Error() string {
	return fmt.Sprintf("invalid puzzle: %s", e.Reason)
}

// UnsolvableError reports that propagation and exhaustive search
// found no completion of the board under the active constraint set.
type UnsolvableError struct {
	Variant Variant
}

func (e *UnsolvableError) Error() string {
	return fmt.Sprintf("puzzle has no solution under %s rules", e.Variant)
}
