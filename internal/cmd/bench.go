package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/codergoel/cocofront/internal/compile"
	"github.com/codergoel/cocofront/internal/keyword"
)

var benchCmd = &cobra.Command{
	Use:   "bench <input-source-path> <output-path>",
	Short: "Time a full lex+parse run and report it",
	Args:  cobra.ExactArgs(2),
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	g, err := compile.LoadGrammar(grammarPath)
	if err != nil {
		return fmt.Errorf("loading grammar: %w", err)
	}

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

	kw := keyword.New()
	start := time.Now()
	result := compile.Run(in, kw, g)
	elapsed := time.Since(start)

	fmt.Fprintf(out, "tokens:      %d\n", len(result.Tokens))
	fmt.Fprintf(out, "diagnostics: %d\n", len(result.Diags))
	fmt.Fprintf(out, "elapsed:     %s\n", elapsed)

	fmt.Fprintf(cmd.OutOrStdout(), "lex+parse finished in %s\n", elapsed)
	return nil
}
