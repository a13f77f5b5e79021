package solver

import (
	"context"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

// search runs propagation and, if the board is neither solved nor
// contradictory, branches on the open cell with the fewest remaining
// candidates. It returns (nil, nil) for an exhausted branch; errors
// are reserved for cancellation.
func (s *solver) search(ctx context.Context, b *board.Board, depth int) (*board.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrIncomplete
	}
	if !s.propagate(b) {
		return nil, nil
	}
	if b.Solved() {
		return b, nil
	}

	p, found := pickCell(b)
	if !found {
		// Every cell fixed but not solved: dead branch.
		return nil, nil
	}

	pos := searchPosition{depth: depth, cell: p, candidates: b.Candidates(p)}
	for _, d := range b.Candidates(p).Digits() {
		clone := b.Clone()
		s.tracer.Guess(pos, d)
		if !clone.Assign(p, d) {
			s.tracer.Backtrack(pos, d)
			continue
		}
		solved, err := s.search(ctx, clone, depth+1)
		if err != nil {
			return nil, err
		}
		if solved != nil {
			return solved, nil
		}
		s.tracer.Backtrack(pos, d)
	}
	return nil, nil
}

// pickCell selects the open cell with the fewest candidates, breaking
// ties by lowest row-major index so the search order is deterministic.
func pickCell(b *board.Board) (sudoku.Position, bool) {
	best := sudoku.Position(0)
	bestLen := 10
	for i := 0; i < 81; i++ {
		p := sudoku.Position(i)
		if n := b.Candidates(p).Len(); n > 1 && n < bestLen {
			best, bestLen = p, n
			if n == 2 {
				break
			}
		}
	}
	return best, bestLen < 10
}
