package cli

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/rotation"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show a cube state as an unfolded, six-space-indented net",
	Long: `Show prints a cube state as an unfolded net: the top and bottom face
blocks indented six spaces so they line up over the front face of the
middle band. With no arguments it shows the solved cube; a scramble
argument is applied to --start first.

Examples:
  cube show
  cube show "R U R' U'" --color`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("start", cube.Solved, "starting 54-character cube state")
	showCmd.Flags().BoolP("color", "c", false, "colorize each facelet with its ANSI color code")
}

func runShow(cmd *cobra.Command, args []string) error {
	startStr, _ := cmd.Flags().GetString("start")
	useColor, _ := cmd.Flags().GetBool("color")

	state, err := cube.Parse(startStr)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	if len(args) == 1 && args[0] != "" {
		moves, err := rotation.ParseSequence(args[0])
		if err != nil {
			return fmt.Errorf("scramble: %w", err)
		}
		state = cube.RotateSequence(state, moves)
	}

	out := state.RenderPretty()
	if useColor {
		out = colorizeNet(out)
	}
	fmt.Print(out)
	return nil
}

// ansiByColor maps each facelet letter to the ANSI foreground color code
// used to highlight it, following the same six colors as the state string.
var ansiByColor = map[byte]string{
	'W': "\033[97m",
	'O': "\033[33m",
	'G': "\033[32m",
	'R': "\033[31m",
	'B': "\033[34m",
	'Y': "\033[93m",
}

const ansiReset = "\033[0m"

// colorizeNet wraps each facelet letter in RenderPretty's output with its
// ANSI color code, leaving whitespace and newlines untouched.
func colorizeNet(net string) string {
	var b strings.Builder
	for i := 0; i < len(net); i++ {
		ch := net[i]
		if code, ok := ansiByColor[ch]; ok {
			b.WriteString(code)
			b.WriteByte(ch)
			b.WriteString(ansiReset)
		} else {
			b.WriteByte(ch)
		}
	}
	return b.String()
}
