package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/solve"
	"github.com/spf13/cobra"
)

var findseqCmd = &cobra.Command{
	Use:   "findseq",
	Short: "Search ascending lengths for sequences reaching a target pattern",
	Long: `Findseq is an ad hoc exploration front end over the same bidirectional
solver "solve" uses: it tries each length from 0 up to --max-moves in turn
and stops at the first length with at least one solution, rather than
requiring the caller to already know a length range.

--to accepts either a literal 54-character state or the name "solved".

Example:
  cube findseq --from "$(cube twist "R U R' U'")" --to solved --max-moves 8`,
	RunE: runFindseq,
}

func init() {
	findseqCmd.Flags().String("from", cube.Solved, "starting 54-character cube state")
	findseqCmd.Flags().String("to", "solved", "target 54-character cube state, or \"solved\"")
	findseqCmd.Flags().Uint("max-moves", 8, "longest sequence length to try")
	findseqCmd.Flags().Bool("parallel", false, "spawn up to twelve workers per search pass")
}

func runFindseq(cmd *cobra.Command, args []string) error {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	maxMoves, _ := cmd.Flags().GetUint("max-moves")
	parallel, _ := cmd.Flags().GetBool("parallel")

	if strings.EqualFold(toStr, "solved") {
		toStr = cube.Solved
	}

	from, err := cube.Parse(fromStr)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := cube.Parse(toStr)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	for length := 0; length <= int(maxMoves); length++ {
		result, err := solve.Run(solve.Options{
			Initial:  from,
			Desired:  to,
			MinMoves: length,
			MaxMoves: length,
			Parallel: parallel,
		})
		if err != nil {
			return err
		}
		if len(result.Solutions) > 0 {
			solve.Render(os.Stdout, result)
			return nil
		}
	}

	fmt.Printf("No sequence of at most %d moves found.\n", maxMoves)
	return nil
}
