package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codergoel/cocofront/internal/compile"
	"github.com/codergoel/cocofront/internal/diag"
	"github.com/codergoel/cocofront/internal/keyword"
	"github.com/codergoel/cocofront/internal/parsetree"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input-source-path> <output-path>",
	Short: "Parse a source file and emit its parse tree",
	Args:  cobra.ExactArgs(2),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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
	result := compile.Run(in, kw, g)

	if err := parsetree.Dump(out, result.Tree, g); err != nil {
		return fmt.Errorf("writing parse tree: %w", err)
	}

	if len(result.Diags) > 0 {
		fmt.Fprintln(out, "\nDiagnostics:")
		fmt.Fprint(out, diag.FormatAll(result.Diags))
	}

	if result.Failed {
		fmt.Fprintf(cmd.OutOrStdout(), "parse completed with %d diagnostic(s)\n", len(result.Diags))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "parse completed without error")
	}
	return nil
}
