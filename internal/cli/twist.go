package cli

import (
	"fmt"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/rotation"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply a sequence of moves to a cube state and print the result",
	Long: `Twist applies a space-separated sequence of quarter-turn moves to a
starting state and prints the resulting 54-character layout. It does not
search for anything — it is the rotate operator exposed directly, useful
for building fixtures and sanity-checking scrambles.

Example:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --start WWWWWWWWWOOOOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBYYYYYYYYY`,
	Args: cobra.ExactArgs(1),
	RunE: runTwist,
}

func init() {
	twistCmd.Flags().String("start", cube.Solved, "starting 54-character cube state")
	twistCmd.Flags().Bool("pretty", false, "print the unfolded net instead of the raw 54-character string")
}

func runTwist(cmd *cobra.Command, args []string) error {
	startStr, _ := cmd.Flags().GetString("start")
	pretty, _ := cmd.Flags().GetBool("pretty")

	state, err := cube.Parse(startStr)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	moves, err := rotation.ParseSequence(args[0])
	if err != nil {
		return fmt.Errorf("moves: %w", err)
	}

	result := cube.RotateSequence(state, moves)
	if pretty {
		fmt.Print(result.RenderPretty())
	} else {
		fmt.Println(result.Render())
	}
	return nil
}
