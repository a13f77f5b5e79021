package solver

import (
	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

// Rule is a single candidate-elimination strategy. Apply mutates the
// board, reporting whether any candidate set changed and whether the
// board is still consistent. Every rule is monotonically
// candidate-removing, which is what guarantees the propagation loop
// terminates.
type Rule interface {
	Name() string
	Apply(b *board.Board) (changed bool, ok bool)
}

// DefaultRules returns the full rule set in priority order.
func DefaultRules() []Rule {
	return []Rule{
		Eliminate(),
		NakedSingle(),
		HiddenSingle(),
		NakedPair(),
	}
}

type eliminateRule struct{}

// Eliminate re-establishes the basic invariant that a fixed digit is
// absent from every peer's candidate set. Assign maintains this
// incrementally, so a full sweep is normally a no-op; it exists to
// restore the invariant on boards built by hand or mutated outside
// the assignment cascade.
func Eliminate() Rule {
	return eliminateRule{}
}

func (eliminateRule) Name() string {
	return "eliminate"
}

func (eliminateRule) Apply(b *board.Board) (bool, bool) {
	changed, ok := false, true
	for _, u := range b.Units() {
		for _, p := range u.Cells {
			d, fixed := b.Fixed(p)
			if !fixed {
				continue
			}
			for _, q := range u.Cells {
				if q == p {
					continue
				}
				if _, alsoFixed := b.Fixed(q); alsoFixed {
					continue
				}
				if b.Candidates(q).Has(d) {
					changed = true
					if !b.Eliminate(q, d) {
						ok = false
					}
				}
			}
		}
	}
	return changed, ok
}

type nakedSingleRule struct{}

// NakedSingle assigns any open cell whose candidate set has exactly
// one member. Like Eliminate, the assignment cascade already performs
// this eagerly; the rule keeps the fixed-point loop complete on
// boards that bypassed the cascade.
func NakedSingle() Rule {
	return nakedSingleRule{}
}

func (nakedSingleRule) Name() string {
	return "naked-single"
}

func (nakedSingleRule) Apply(b *board.Board) (bool, bool) {
	changed, ok := false, true
	for i := 0; i < 81; i++ {
		p := sudoku.Position(i)
		if _, fixed := b.Fixed(p); fixed {
			continue
		}
		if d, single := b.Candidates(p).Single(); single {
			changed = true
			if !b.Assign(p, d) {
				ok = false
			}
		}
	}
	return changed, ok
}

type hiddenSingleRule struct{}

// HiddenSingle assigns a digit that has exactly one possible home
// within a unit, even when that cell still has other candidates. A
// digit with no home in some unit is a contradiction.
func HiddenSingle() Rule {
	return hiddenSingleRule{}
}

func (hiddenSingleRule) Name() string {
	return "hidden-single"
}

func (hiddenSingleRule) Apply(b *board.Board) (bool, bool) {
	changed, ok := false, true
	for _, u := range b.Units() {
		for d := sudoku.Digit(1); d <= 9; d++ {
			var home sudoku.Position
			count := 0
			for _, p := range u.Cells {
				if b.Candidates(p).Has(d) {
					home = p
					count++
				}
			}
			switch count {
			case 0:
				return changed, false
			case 1:
				if _, fixed := b.Fixed(home); !fixed {
					changed = true
					if !b.Assign(home, d) {
						ok = false
					}
				}
			}
		}
	}
	return changed, ok
}

type nakedPairRule struct{}

// NakedPair finds two cells of a unit sharing an identical two-digit
// candidate set and strips those digits from the rest of the unit.
func NakedPair() Rule {
	return nakedPairRule{}
}

func (nakedPairRule) Name() string {
	return "naked-pair"
}

func (nakedPairRule) Apply(b *board.Board) (bool, bool) {
	changed, ok := false, true
	for _, u := range b.Units() {
		pairs := map[sudoku.DigitSet][]sudoku.Position{}
		for _, p := range u.Cells {
			if c := b.Candidates(p); c.Len() == 2 {
				pairs[c] = append(pairs[c], p)
			}
		}
		for set, cells := range pairs {
			if len(cells) != 2 {
				continue
			}
			for _, p := range u.Cells {
				if p == cells[0] || p == cells[1] {
					continue
				}
				for _, d := range set.Digits() {
					if b.Candidates(p).Has(d) {
						changed = true
						if !b.Eliminate(p, d) {
							ok = false
						}
					}
				}
			}
		}
	}
	return changed, ok
}

// propagate runs the rule set round-robin until a full round changes
// nothing, reporting false as soon as a contradiction appears.
func (s *solver) propagate(b *board.Board) bool {
	for {
		changed := false
		for _, r := range s.rules {
			c, ok := r.Apply(b)
			changed = changed || c
			if !ok || b.Contradiction() {
				return false
			}
		}
		if !changed {
			return true
		}
	}
}
