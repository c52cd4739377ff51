package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "Enumerate bounded-length rotation sequences between two cube states",
	Long: `Cube enumerates every distinct quarter-turn sequence, within a given
length range, that transforms one 3x3x3 Rubik's cube configuration into
another.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(findseqCmd)
	rootCmd.AddCommand(serveCmd)
}
