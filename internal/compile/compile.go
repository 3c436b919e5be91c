// Package compile wires the front end's components together the way the
// CLI (and tests) need them: build a symbol table, lex a source reader
// into a token list with a caller-supplied keyword trie, load+prepare a grammar, and
// drive the parser over the result. This is the "default pipeline"
// spec.md §5 describes — lexing runs to completion before parsing begins.
package compile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codergoel/cocofront/internal/defaultgrammar"
	"github.com/codergoel/cocofront/internal/diag"
	"github.com/codergoel/cocofront/internal/grammar"
	"github.com/codergoel/cocofront/internal/keyword"
	"github.com/codergoel/cocofront/internal/lexer"
	"github.com/codergoel/cocofront/internal/parser"
	"github.com/codergoel/cocofront/internal/parsetree"
	"github.com/codergoel/cocofront/internal/symtab"
	"github.com/codergoel/cocofront/internal/token"
)

// Lex tokenizes src and returns the materialized token list alongside the
// symbol table it populated. kw may be shared across calls (it is
// immutable once built); syms is fresh per invocation.
func Lex(src io.Reader, kw *keyword.Trie) ([]*token.Node, *symtab.Table) {
	syms := symtab.New()
	l := lexer.New(src, kw, syms)
	return l.Tokens(), syms
}

// LoadGrammar reads a grammar file and prepares it for parsing: Load,
// ComputeFirstFollow, and BuildTable, in that order. Every call builds and
// returns a fresh *Grammar. An empty path falls back to the embedded default grammar
// (internal/defaultgrammar) rather than failing outright.
func LoadGrammar(path string) (*grammar.Grammar, error) {
	if path == "" {
		return LoadGrammarFromReader(strings.NewReader(defaultgrammar.Text))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grammar file %s: %w", path, err)
	}
	defer f.Close()
	return LoadGrammarFromReader(f)
}

// LoadGrammarFromReader is LoadGrammar's reader-based core, exposed for
// tests and for callers that already hold the grammar text in memory.
func LoadGrammarFromReader(r io.Reader) (*grammar.Grammar, error) {
	g := grammar.New()
	if err := g.Load(r, token.Resolve); err != nil {
		return nil, err
	}
	g.ComputeFirstFollow()
	g.BuildTable()
	return g, nil
}

// Result bundles everything a caller (CLI command or test) typically wants
// out of a full lex+parse run.
type Result struct {
	Tokens []*token.Node
	Syms   *symtab.Table
	Tree   *parsetree.Tree
	Diags  []*diag.Diagnostic
	Failed bool
}

// Run lexes src and parses it against g, returning the combined result.
func Run(src io.Reader, kw *keyword.Trie, g *grammar.Grammar) *Result {
	tokens, syms := Lex(src, kw)
	p := parser.New(g, tokens)
	tree := p.Parse()
	return &Result{
		Tokens: tokens,
		Syms:   syms,
		Tree:   tree,
		Diags:  p.Diagnostics(),
		Failed: p.HadError(),
	}
}
