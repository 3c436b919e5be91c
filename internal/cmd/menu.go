package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pborman/getopt"

	"github.com/codergoel/cocofront/internal/compile"
	"github.com/codergoel/cocofront/internal/diag"
	"github.com/codergoel/cocofront/internal/keyword"
	"github.com/codergoel/cocofront/internal/parsetree"
	"github.com/codergoel/cocofront/internal/strip"
)

// modeFlags describes the four working menu modes (1-4) as a getopt.Set so "?"
// prints them in the same aligned, two-column form getopt itself uses for
// command-line usage, rather than a second hand-maintained string table.
var (
	modeStrip, modeLex, modeParseMode, modeBench bool
	modeFlags                                    = getopt.New()
)

func init() {
	modeFlags.BoolVarLong(&modeStrip, "strip", '1', "remove comments and echo the source")
	modeFlags.BoolVarLong(&modeLex, "lex", '2', "lex and print the token stream")
	modeFlags.BoolVarLong(&modeParseMode, "parse", '3', "parse and emit the parse tree")
	modeFlags.BoolVarLong(&modeBench, "bench", '4', "time a full lex+parse run")
}

// runMenu reproduces the original interactive menu (spec.md §6): given an
// input source path and an output path, repeatedly prompt for a mode on
// stdin until the user picks 0. Every mode re-opens the input and
// (re-)creates the output so each selection starts from a clean state,
// mirroring the way the original CLI re-reads its input file per pass.
func runMenu(inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		exitWithError("cannot open input %s: %v", inputPath, err)
	}

	kw := keyword.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("0  exit")
		fmt.Println("1  remove comments and echo")
		fmt.Println("2  lex and print the token stream")
		fmt.Println("3  parse and emit the parse tree")
		fmt.Println("4  time a full lex+parse run")
		fmt.Print("select mode (? for details): ")

		if !scanner.Scan() {
			return nil
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "0":
			return nil
		case "?":
			modeFlags.PrintOptions(os.Stdout)
		case "1":
			if err := menuStrip(inputPath, outputPath); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		case "2":
			if err := menuLex(inputPath, outputPath, kw); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		case "3":
			if err := menuParse(inputPath, outputPath, kw); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		case "4":
			if err := menuBench(inputPath, outputPath, kw); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unrecognized selection %q\n", choice)
		}
	}
}

func openPair(inputPath, outputPath string) (*os.File, *os.File, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	out, err := os.Create(outputPath)
	if err != nil {
		in.Close()
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return in, out, nil
}

func menuStrip(inputPath, outputPath string) error {
	in, out, err := openPair(inputPath, outputPath)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()
	return strip.Strip(out, in)
}

func menuLex(inputPath, outputPath string, kw *keyword.Trie) error {
	in, out, err := openPair(inputPath, outputPath)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()

	tokens, syms := compile.Lex(in, kw)
	writeTokenListing(out, tokens)
	fmt.Printf("%d tokens, %d distinct symbols\n", len(tokens), syms.Len())
	return nil
}

func menuParse(inputPath, outputPath string, kw *keyword.Trie) error {
	g, err := compile.LoadGrammar(grammarPath)
	if err != nil {
		return fmt.Errorf("loading grammar: %w", err)
	}

	in, out, err := openPair(inputPath, outputPath)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()

	result := compile.Run(in, kw, g)
	if err := parsetree.Dump(out, result.Tree, g); err != nil {
		return fmt.Errorf("writing parse tree: %w", err)
	}
	if len(result.Diags) > 0 {
		fmt.Fprintln(out, "\nDiagnostics:")
		fmt.Fprint(out, diag.FormatAll(result.Diags))
	}
	fmt.Printf("parse completed, %d diagnostic(s)\n", len(result.Diags))
	return nil
}

func menuBench(inputPath, outputPath string, kw *keyword.Trie) error {
	g, err := compile.LoadGrammar(grammarPath)
	if err != nil {
		return fmt.Errorf("loading grammar: %w", err)
	}

	in, out, err := openPair(inputPath, outputPath)
	if err != nil {
		return err
	}
	defer in.Close()
	defer out.Close()

	start := time.Now()
	result := compile.Run(in, kw, g)
	elapsed := time.Since(start)

	fmt.Fprintf(out, "tokens:      %d\n", len(result.Tokens))
	fmt.Fprintf(out, "diagnostics: %d\n", len(result.Diags))
	fmt.Fprintf(out, "elapsed:     %s\n", elapsed)
	fmt.Printf("lex+parse finished in %s\n", elapsed)
	return nil
}
