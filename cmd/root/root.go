package root

import (
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/sudoku/cmd/check"

	"github.com/puzzle-framework/sudoku/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Sudoku is a constraint-propagation sudoku solver",
		Long: `A sudoku solver combining candidate propagation with backtracking search.
Supports standard boards and the diagonal variant, where both main
diagonals must also contain each digit 1-9 exactly once.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(check.NewCheckCommand())

	return rootCmd
}
