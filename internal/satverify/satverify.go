// Package satverify cross-checks boards with an independent SAT
// encoding. It exists as an oracle for the propagation-and-search
// solver: the two implementations share no code beyond the board
// model, so agreement between them is meaningful.
package satverify

import (
	"github.com/go-air/gini"

	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

const satisfiable = 1

// Count returns the number of distinct completions of b, counting no
// further than limit. Each model found is blocked with a clause of
// its negated cell literals before re-solving.
func Count(b *board.Board, limit int) int {
	g := gini.New()
	var m litMap
	m.encode(g, b)

	n := 0
	for n < limit {
		if g.Solve() != satisfiable {
			break
		}
		n++
		for _, lit := range m.modelLits(g) {
			g.Add(lit.Not())
		}
		g.Add(0)
	}
	return n
}

// Solvable reports whether b has at least one completion.
func Solvable(b *board.Board) bool {
	return Count(b, 1) > 0
}

// Unique reports whether b has exactly one completion.
func Unique(b *board.Board) bool {
	return Count(b, 2) == 1
}

// Solution returns one completion of b as an 81-character grid
// string, or false when b is unsolvable.
func Solution(b *board.Board) (string, bool) {
	g := gini.New()
	var m litMap
	m.encode(g, b)
	if g.Solve() != satisfiable {
		return "", false
	}
	return m.Decode(g), true
}
