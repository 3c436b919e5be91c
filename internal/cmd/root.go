// Package cmd wires cocofront's Cobra command tree: a root command that
// reproduces the spec's interactive 0-4 menu when given <input> <output>
// positional arguments (spec.md §6), plus scriptable subcommands (lex,
// parse, strip, bench) for one-shot, non-interactive use. The shape
// mirrors the teacher's cmd/dwscript/cmd package: a package-level rootCmd,
// subcommands registered from init(), persistent --verbose, and a shared
// exitWithError helper.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information, overridable by build flags the way the
	// teacher's cmd/dwscript/cmd/root.go documents.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	grammarPath string
)

var rootCmd = &cobra.Command{
	Use:   "cocofront [input-source-path] [output-path]",
	Short: "Front end for a small imperative records/unions language",
	Long: `cocofront tokenizes and parses source files for a small imperative
language with records/unions, typed globals, and functions with input/output
parameter lists.

Run with an input and output path to get the original interactive menu:
  0  exit
  1  remove comments and echo
  2  lex and print the token stream
  3  parse and emit the parse tree
  4  time a full lex+parse run

Or use one of the non-interactive subcommands (lex, parse, strip, bench)
for scripted, single-purpose invocations.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(2),
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&grammarPath, "grammar", "", "path to grammar.txt (default: embedded reference grammar)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 positional arguments (input-source-path, output-path), got %d", len(args))
	}
	return runMenu(args[0], args[1])
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(-1)
}
