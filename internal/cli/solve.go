package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/solve"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Enumerate every rotation sequence of bounded length between two states",
	Long: `Solve enumerates all distinct quarter-turn move sequences, with length in
[--min-moves, --max-moves], that transform --initial-state into
--desired-state. Every returned sequence contains no syntactically or
semantically redundant moves.

Example:
  cube solve -i WWWWWWWWWOOOOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBYYYYYYYYY \
             -d WWWWWWWWWOOOOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBYYYYYYYYY \
             --min-moves 0 --max-moves 0`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringP("initial-state", "i", "", "initial 54-character cube state (required)")
	solveCmd.Flags().StringP("desired-state", "d", "", "desired 54-character cube state (required)")
	solveCmd.Flags().Uint("min-moves", 0, "minimum sequence length (required)")
	solveCmd.Flags().Uint("max-moves", 0, "maximum sequence length, >= min-moves (required)")
	solveCmd.Flags().Bool("parallel", false, "spawn up to twelve workers per search pass")
	solveCmd.Flags().Uint64("max-states", 0, "stop each search pass (each per-first-move worker with --parallel) after this many states processed (0 = unbounded)")
	_ = solveCmd.MarkFlagRequired("initial-state")
	_ = solveCmd.MarkFlagRequired("desired-state")
	_ = solveCmd.MarkFlagRequired("min-moves")
	_ = solveCmd.MarkFlagRequired("max-moves")
}

func runSolve(cmd *cobra.Command, args []string) error {
	initialStr, _ := cmd.Flags().GetString("initial-state")
	desiredStr, _ := cmd.Flags().GetString("desired-state")
	minMoves, _ := cmd.Flags().GetUint("min-moves")
	maxMoves, _ := cmd.Flags().GetUint("max-moves")
	parallel, _ := cmd.Flags().GetBool("parallel")
	maxStates, _ := cmd.Flags().GetUint64("max-states")

	if minMoves > maxMoves {
		return fmt.Errorf("min-moves (%d) must not exceed max-moves (%d)", minMoves, maxMoves)
	}

	initial, err := cube.Parse(initialStr)
	if err != nil {
		return fmt.Errorf("initial-state: %w", err)
	}
	desired, err := cube.Parse(desiredStr)
	if err != nil {
		return fmt.Errorf("desired-state: %w", err)
	}

	result, err := solve.Run(solve.Options{
		Initial:   initial,
		Desired:   desired,
		MinMoves:  int(minMoves),
		MaxMoves:  int(maxMoves),
		Parallel:  parallel,
		MaxStates: maxStates,
	})
	if err != nil {
		return err
	}

	solve.Render(os.Stdout, result)
	return nil
}
