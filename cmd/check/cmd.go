package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzle-framework/sudoku/internal/satverify"
	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

func NewCheckCommand() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "check <puzzle>",
		Short: "Reports whether a puzzle is well-formed, solvable, and unique",
		Long: `Validates a puzzle without running the heuristic solver: the board is
handed to an independent SAT encoding, which decides satisfiability
and whether more than one completion exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := sudoku.ParseVariant(variant)
			if err != nil {
				return err
			}
			return check(args[0], v)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", string(sudoku.VariantStandard), "constraint set: standard or diagonal")
	return cmd
}

func check(puzzle string, variant sudoku.Variant) error {
	b, err := board.Parse(puzzle, variant)
	if err != nil {
		return err
	}
	switch satverify.Count(b, 2) {
	case 0:
		return &sudoku.UnsolvableError{Variant: variant}
	case 1:
		fmt.Println("puzzle has exactly one solution")
	default:
		fmt.Println("puzzle is solvable but has more than one solution")
	}
	return nil
}
