package satverify

import (
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

// litMap translates between board cells and the variables of the SAT
// formula: one variable per (position, digit) pair, true when that
// digit occupies that cell.
type litMap struct{}

func (litMap) LitOf(p sudoku.Position, d sudoku.Digit) z.Lit {
	return z.Var(int(p)*9 + int(d)).Pos()
}

// Decode reads a model back out of a solved SAT instance as an
// 81-character grid string.
func (m litMap) Decode(g inter.S) string {
	out := make([]byte, 81)
	for i := 0; i < 81; i++ {
		out[i] = '.'
		for d := sudoku.Digit(1); d <= 9; d++ {
			if g.Value(m.LitOf(sudoku.Position(i), d)) {
				out[i] = byte('0' + d)
				break
			}
		}
	}
	return string(out)
}

// modelLits returns the literal fixed true for each cell, used to
// block an already-seen model.
func (m litMap) modelLits(g inter.S) []z.Lit {
	lits := make([]z.Lit, 0, 81)
	for i := 0; i < 81; i++ {
		for d := sudoku.Digit(1); d <= 9; d++ {
			if lit := m.LitOf(sudoku.Position(i), d); g.Value(lit) {
				lits = append(lits, lit)
				break
			}
		}
	}
	return lits
}

// encode teaches g the full problem: every cell holds one of its
// current candidates, no cell holds two digits, and every unit holds
// each digit exactly once. Encoding the candidate sets rather than
// the raw givens means the formula reflects whatever propagation has
// already established.
func (m litMap) encode(g inter.Adder, b *board.Board) {
	for i := 0; i < 81; i++ {
		p := sudoku.Position(i)
		for _, d := range b.Candidates(p).Digits() {
			g.Add(m.LitOf(p, d))
		}
		g.Add(0)

		for dA := sudoku.Digit(1); dA <= 9; dA++ {
			for dB := dA + 1; dB <= 9; dB++ {
				g.Add(m.LitOf(p, dA).Not())
				g.Add(m.LitOf(p, dB).Not())
				g.Add(0)
			}
		}
	}

	for _, u := range b.Units() {
		for d := sudoku.Digit(1); d <= 9; d++ {
			for _, p := range u.Cells {
				g.Add(m.LitOf(p, d))
			}
			g.Add(0)

			for i, pA := range u.Cells {
				for _, pB := range u.Cells[i+1:] {
					g.Add(m.LitOf(pA, d).Not())
					g.Add(m.LitOf(pB, d).Not())
					g.Add(0)
				}
			}
		}
	}
}
