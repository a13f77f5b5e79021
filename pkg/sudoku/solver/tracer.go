package solver

import (
	"github.com/rs/zerolog"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
)

// SearchPosition describes where in the search tree a guess is being
// made.
type SearchPosition interface {
	Depth() int
	Cell() sudoku.Position
	Candidates() sudoku.DigitSet
}

// Tracer observes the backtracking search. Guess fires before a
// candidate digit is tried; Backtrack fires when that branch is
// abandoned.
type Tracer interface {
	Guess(p SearchPosition, d sudoku.Digit)
	Backtrack(p SearchPosition, d sudoku.Digit)
}

type searchPosition struct {
	depth      int
	cell       sudoku.Position
	candidates sudoku.DigitSet
}

func (p searchPosition) Depth() int {
	return p.depth
}

func (p searchPosition) Cell() sudoku.Position {
	return p.cell
}

func (p searchPosition) Candidates() sudoku.DigitSet {
	return p.candidates
}

type DefaultTracer struct{}

func (DefaultTracer) Guess(_ SearchPosition, _ sudoku.Digit) {
}

func (DefaultTracer) Backtrack(_ SearchPosition, _ sudoku.Digit) {
}

// LoggingTracer emits a debug log line per search event.
type LoggingTracer struct {
	Logger zerolog.Logger
}

func (t LoggingTracer) Guess(p SearchPosition, d sudoku.Digit) {
	t.Logger.Debug().
		Int("depth", p.Depth()).
		Stringer("cell", p.Cell()).
		Stringer("candidates", p.Candidates()).
		Int("digit", int(d)).
		Msg("guess")
}

func (t LoggingTracer) Backtrack(p SearchPosition, d sudoku.Digit) {
	t.Logger.Debug().
		Int("depth", p.Depth()).
		Stringer("cell", p.Cell()).
		Int("digit", int(d)).
		Msg("backtrack")
}
