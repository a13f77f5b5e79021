package solve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/sudoku/internal/satverify"
	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/render"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/solver"
)

type options struct {
	variant            string
	file               string
	renderBoard        bool
	highlightDiagonals bool
	verify             bool
	trace              bool
}

func NewSolveCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solves an 81-character sudoku puzzle",
		Long: `Solves sudoku puzzles given as 81-character strings read row by row,
with '.' marking empty cells. For instance:

sudoku solve "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

Puzzles can also be read from a file with one puzzle per line
(--file); blank lines and lines starting with '#' are ignored.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 0) == (opts.file == "") {
				return errors.New("provide either a puzzle argument or --file, not both")
			}
			if opts.file != "" {
				if _, err := os.Stat(opts.file); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", opts.file)
				}
			}
			if _, err := sudoku.ParseVariant(opts.variant); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzles := args
			if opts.file != "" {
				var err error
				puzzles, err = readPuzzleFile(opts.file)
				if err != nil {
					return err
				}
			}
			return run(puzzles, opts)
		},
	}
	cmd.Flags().StringVar(&opts.variant, "variant", string(sudoku.VariantStandard), "constraint set: standard or diagonal")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "file with one puzzle per line")
	cmd.Flags().BoolVar(&opts.renderBoard, "render", false, "draw the solved grid instead of printing the 81-character string")
	cmd.Flags().BoolVar(&opts.highlightDiagonals, "highlight-diagonals", false, "mark diagonal cells in the rendered grid")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "cross-check each solution with an independent SAT encoding")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log propagation guesses and backtracks")
	return cmd
}

func run(puzzles []string, opts *options) error {
	variant, err := sudoku.ParseVariant(opts.variant)
	if err != nil {
		return err
	}

	solverOpts := []solver.Option{}
	if opts.trace {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		solverOpts = append(solverOpts, solver.WithTracer(solver.LoggingTracer{Logger: logger}))
	}
	s, err := solver.New(solverOpts...)
	if err != nil {
		return err
	}

	for _, puzzle := range puzzles {
		b, err := board.Parse(puzzle, variant)
		if err != nil {
			return err
		}
		solved, err := s.Solve(context.Background(), b)
		if err != nil {
			return err
		}
		if opts.verify {
			if !satverify.Unique(b) {
				fmt.Println("note: puzzle has more than one solution; printing the first found")
			}
		}
		if opts.renderBoard {
			if err := render.Board(os.Stdout, solved, opts.highlightDiagonals); err != nil {
				return err
			}
		} else {
			fmt.Println(solved.String())
		}
	}
	return nil
}
