package board

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
)

// Unit is a group of nine cells that must jointly contain each digit
// 1-9 exactly once.
type Unit struct {
	Name  string
	Cells [9]sudoku.Position
}

// Layout holds the unit list and per-cell peer masks for a variant.
// A Layout is immutable and shared by every board of that variant.
type Layout struct {
	variant sudoku.Variant
	units   []Unit
	peers   [81]*bitset.BitSet
}

var (
	standardLayout = newLayout(sudoku.VariantStandard)
	diagonalLayout = newLayout(sudoku.VariantDiagonal)
)

// LayoutFor returns the shared Layout for the given variant.
func LayoutFor(variant sudoku.Variant) *Layout {
	if variant == sudoku.VariantDiagonal {
		return diagonalLayout
	}
	return standardLayout
}

func (l *Layout) Variant() sudoku.Variant {
	return l.variant
}

// Units returns the active unit list: 27 units for the standard
// variant, 29 for the diagonal variant.
func (l *Layout) Units() []Unit {
	return l.units
}

// Peers returns the mask of cells sharing at least one unit with p.
// The mask is shared and must not be mutated.
func (l *Layout) Peers(p sudoku.Position) *bitset.BitSet {
	return l.peers[p]
}

func newLayout(variant sudoku.Variant) *Layout {
	l := &Layout{variant: variant}

	for r := 0; r < 9; r++ {
		u := Unit{Name: fmt.Sprintf("row %c", 'A'+r)}
		for c := 0; c < 9; c++ {
			u.Cells[c] = sudoku.Pos(r, c)
		}
		l.units = append(l.units, u)
	}
	for c := 0; c < 9; c++ {
		u := Unit{Name: fmt.Sprintf("column %d", c+1)}
		for r := 0; r < 9; r++ {
			u.Cells[r] = sudoku.Pos(r, c)
		}
		l.units = append(l.units, u)
	}
	for b := 0; b < 9; b++ {
		u := Unit{Name: fmt.Sprintf("box %d", b+1)}
		for i := 0; i < 9; i++ {
			u.Cells[i] = sudoku.Pos((b/3)*3+i/3, (b%3)*3+i%3)
		}
		l.units = append(l.units, u)
	}
	if variant == sudoku.VariantDiagonal {
		var main, anti Unit
		main.Name = "main diagonal"
		anti.Name = "anti-diagonal"
		for i := 0; i < 9; i++ {
			main.Cells[i] = sudoku.Pos(i, i)
			anti.Cells[i] = sudoku.Pos(i, 8-i)
		}
		l.units = append(l.units, main, anti)
	}

	for p := 0; p < 81; p++ {
		l.peers[p] = bitset.New(81)
	}
	for _, u := range l.units {
		for _, a := range u.Cells {
			for _, b := range u.Cells {
				if a != b {
					l.peers[a].Set(uint(b))
				}
			}
		}
	}
	return l
}
