// Package render draws boards as text. It is the terminal stand-in
// for a graphical rendering collaborator: it consumes the fixed-digit
// grid and an optional flag to highlight the two main diagonals.
package render

import (
	"io"
	"strings"

	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

const separator = "---------+---------+---------\n"

// Board writes a 9x9 grid with 3x3 block separators to w. Open cells
// render as '.'. With highlightDiagonals set, cells on either main
// diagonal are wrapped in brackets.
func Board(w io.Writer, b *board.Board, highlightDiagonals bool) error {
	grid := b.Grid()
	var out strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			out.WriteString(separator)
		}
		for c := 0; c < 9; c++ {
			ch := byte('.')
			if d := grid[r][c]; d != 0 {
				ch = byte('0' + d)
			}
			if highlightDiagonals && (r == c || r+c == 8) {
				out.WriteByte('[')
				out.WriteByte(ch)
				out.WriteByte(']')
			} else {
				out.WriteByte(' ')
				out.WriteByte(ch)
				out.WriteByte(' ')
			}
			if c == 2 || c == 5 {
				out.WriteByte('|')
			}
		}
		out.WriteByte('\n')
	}
	_, err := io.WriteString(w, out.String())
	return err
}
