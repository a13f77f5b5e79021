package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

const hardPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

// restrict narrows the candidate set of a cell to exactly the given
// digits, without triggering the assignment cascade.
func restrict(t *testing.T, b *board.Board, p sudoku.Position, keep ...sudoku.Digit) {
	t.Helper()
	kept := sudoku.SetOf(keep...)
	for d := sudoku.Digit(1); d <= 9; d++ {
		if kept.Has(d) {
			continue
		}
		require.True(t, b.Eliminate(p, d))
	}
	require.Equal(t, kept, b.Candidates(p))
}

func TestNakedPair(t *testing.T) {
	b := board.New(sudoku.VariantStandard)
	restrict(t, b, sudoku.Pos(0, 0), 2, 3)
	restrict(t, b, sudoku.Pos(0, 1), 2, 3)

	changed, ok := NakedPair().Apply(b)
	assert.True(t, changed)
	assert.True(t, ok)

	// the rest of row A and of box 1 lose 2 and 3
	assert.Equal(t, sudoku.SetOf(1, 4, 5, 6, 7, 8, 9), b.Candidates(sudoku.Pos(0, 2)))
	assert.Equal(t, sudoku.SetOf(1, 4, 5, 6, 7, 8, 9), b.Candidates(sudoku.Pos(0, 8)))
	assert.Equal(t, sudoku.SetOf(1, 4, 5, 6, 7, 8, 9), b.Candidates(sudoku.Pos(1, 0)))
	// the pair cells themselves keep their candidates
	assert.Equal(t, sudoku.SetOf(2, 3), b.Candidates(sudoku.Pos(0, 0)))
	// cells outside the shared units are untouched
	assert.Equal(t, sudoku.AllDigits, b.Candidates(sudoku.Pos(4, 0)))
}

func TestNakedPairIgnoresUnmatchedPairs(t *testing.T) {
	b := board.New(sudoku.VariantStandard)
	restrict(t, b, sudoku.Pos(0, 0), 2, 3)
	restrict(t, b, sudoku.Pos(0, 1), 2, 4)

	changed, ok := NakedPair().Apply(b)
	assert.False(t, changed)
	assert.True(t, ok)
	assert.Equal(t, sudoku.AllDigits, b.Candidates(sudoku.Pos(0, 2)))
}

func TestHiddenSingle(t *testing.T) {
	b := board.New(sudoku.VariantStandard)
	// make A4 the only cell in row A that can still hold a 5
	for c := 0; c < 9; c++ {
		if c == 3 {
			continue
		}
		require.True(t, b.Eliminate(sudoku.Pos(0, c), 5))
	}

	changed, ok := HiddenSingle().Apply(b)
	assert.True(t, changed)
	assert.True(t, ok)

	d, fixed := b.Fixed(sudoku.Pos(0, 3))
	assert.True(t, fixed)
	assert.Equal(t, sudoku.Digit(5), d)
}

func TestHiddenSingleDetectsHomelessDigit(t *testing.T) {
	b := board.New(sudoku.VariantStandard)
	// no cell in row A may hold a 5
	for c := 0; c < 9; c++ {
		require.True(t, b.Eliminate(sudoku.Pos(0, c), 5))
	}

	_, ok := HiddenSingle().Apply(b)
	assert.False(t, ok)
}

func TestEliminateAndNakedSingleAreIdempotentAfterAssign(t *testing.T) {
	// Assign maintains their invariants incrementally, so a full
	// sweep over a board built through the public API changes
	// nothing.
	b, err := board.Parse(hardPuzzle, sudoku.VariantStandard)
	require.NoError(t, err)

	changed, ok := Eliminate().Apply(b)
	assert.False(t, changed)
	assert.True(t, ok)

	changed, ok = NakedSingle().Apply(b)
	assert.False(t, changed)
	assert.True(t, ok)
}

func TestPropagateReachesAFixedPoint(t *testing.T) {
	b, err := board.Parse(hardPuzzle, sudoku.VariantStandard)
	require.NoError(t, err)

	s := &solver{rules: DefaultRules(), tracer: DefaultTracer{}}
	require.True(t, s.propagate(b))

	var before [81]sudoku.DigitSet
	for i := 0; i < 81; i++ {
		before[i] = b.Candidates(sudoku.Position(i))
	}

	// a second pass over a stabilized board changes nothing
	require.True(t, s.propagate(b))
	for i := 0; i < 81; i++ {
		assert.Equal(t, before[i], b.Candidates(sudoku.Position(i)))
	}
}

func TestRuleNames(t *testing.T) {
	names := make([]string, 0, 4)
	for _, r := range DefaultRules() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"eliminate", "naked-single", "hidden-single", "naked-pair"}, names)
}
