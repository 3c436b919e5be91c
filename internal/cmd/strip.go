package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codergoel/cocofront/internal/strip"
)

var stripCmd = &cobra.Command{
	Use:   "strip <input-source-path> <output-path>",
	Short: "Remove comments from a source file and echo the rest",
	Args:  cobra.ExactArgs(2),
	RunE:  runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	return strip.Strip(out, in)
}
