package e2e

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzle-framework/sudoku/internal/satverify"
	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/solver"
)

func TestEndToEnd(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "End To End Suite")
}

// corpus holds puzzles with exactly one solution, from the very easy
// to the search-heavy.
var corpus = []string{
	"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
	"..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3..",
	"1....7.9..3..2...8..96..5....53..9...1..8...26....4...3......1..4......7..7...3..",
}

var _ = Describe("Solving a corpus of unique puzzles", func() {
	It("agrees with the independent SAT oracle on every puzzle", func() {
		s, err := solver.New()
		Expect(err).ToNot(HaveOccurred())

		for _, puzzle := range corpus {
			b, err := board.Parse(puzzle, sudoku.VariantStandard)
			Expect(err).ToNot(HaveOccurred())

			Expect(satverify.Unique(b)).To(BeTrue(), "corpus puzzle lost its uniqueness: %s", puzzle)
			oracle, ok := satverify.Solution(b)
			Expect(ok).To(BeTrue())

			solved, err := s.Solve(context.Background(), b)
			Expect(err).ToNot(HaveOccurred())
			Expect(solved.String()).To(Equal(oracle))
			Expect(solved.Solved()).To(BeTrue())
		}
	})

	It("preserves the given digits in every solution", func() {
		s, err := solver.New()
		Expect(err).ToNot(HaveOccurred())

		for _, puzzle := range corpus {
			b, err := board.Parse(puzzle, sudoku.VariantStandard)
			Expect(err).ToNot(HaveOccurred())
			solved, err := s.Solve(context.Background(), b)
			Expect(err).ToNot(HaveOccurred())

			got := solved.String()
			for i, ch := range puzzle {
				if ch != '.' {
					Expect(got[i]).To(Equal(byte(ch)), "given at index %d changed", i)
				}
			}
		}
	})
})

var _ = Describe("Solving diagonal puzzles end to end", func() {
	It("produces boards the diagonal SAT encoding accepts", func() {
		s, err := solver.New()
		Expect(err).ToNot(HaveOccurred())

		empty, err := board.Parse(
			".................................................................................",
			sudoku.VariantDiagonal)
		Expect(err).ToNot(HaveOccurred())

		solved, err := s.Solve(context.Background(), empty)
		Expect(err).ToNot(HaveOccurred())

		// re-parse the solution under diagonal rules; a valid
		// diagonal grid parses cleanly and is still solvable
		reparsed, err := board.Parse(solved.String(), sudoku.VariantDiagonal)
		Expect(err).ToNot(HaveOccurred())
		Expect(reparsed.Solved()).To(BeTrue())
		Expect(satverify.Solvable(reparsed)).To(BeTrue())
	})
})
