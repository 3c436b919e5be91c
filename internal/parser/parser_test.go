package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codergoel/cocofront/internal/diag"
	"github.com/codergoel/cocofront/internal/grammar"
	"github.com/codergoel/cocofront/internal/parsetree"
	"github.com/codergoel/cocofront/internal/token"
)

// toy mirrors internal/grammar's hand-verified LL(1) fixture: an additive
// expression grammar with one epsilon production and one nested-parenthesis
// alternative, small enough to trace by hand in every test case below.
const toy = `
<expr> <term> <exprRest>
<exprRest> PLUS <term> <exprRest>
<exprRest> eps
<term> ID
<term> OP <expr> CL
`

func loadToy(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	require.NoError(t, g.Load(strings.NewReader(toy), token.Resolve))
	g.ComputeFirstFollow()
	g.BuildTable()
	return g
}

func tok(kind token.Kind, lexeme string, line int) *token.Node {
	return &token.Node{Entry: &token.Entry{Lexeme: lexeme, Kind: kind}, Line: line}
}

func TestParseAcceptsWellFormedInput(t *testing.T) {
	g := loadToy(t)
	tokens := []*token.Node{
		tok(token.ID, "a", 1),
		tok(token.PLUS, "+", 1),
		tok(token.ID, "b", 1),
		tok(token.EOI, "", 1),
	}
	p := New(g, tokens)
	tree := p.Parse()
	if p.HadError() {
		t.Fatalf("HadError() = true, diagnostics: %v", p.Diagnostics())
	}
	leaves := parsetree.Leaves(tree.Root)
	want := []string{"a", "+", "b"}
	if len(leaves) != len(want) {
		t.Fatalf("Leaves() = %v, want %v", leaves, want)
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("Leaves()[%d] = %q, want %q", i, leaves[i], want[i])
		}
	}
}

func TestParseRecordsTerminalMismatch(t *testing.T) {
	g := loadToy(t)
	// "(a" with no closing CL: the parser expects CL but sees EOI.
	tokens := []*token.Node{
		tok(token.OP, "(", 1),
		tok(token.ID, "a", 1),
		tok(token.EOI, "", 1),
	}
	p := New(g, tokens)
	p.Parse()
	if !p.HadError() {
		t.Fatal("HadError() = false, want true for an unclosed parenthesis")
	}
	if len(p.Diagnostics()) == 0 {
		t.Fatal("Diagnostics() is empty")
	}
}

func TestParseRecoversFromUnexpectedTokenViaFollowSet(t *testing.T) {
	g := loadToy(t)
	// A stray COMMA before a valid term: neither FIRST(expr) nor
	// FOLLOW(expr) contains COMMA, so panic-mode recovery must skip it and
	// resynchronize on the following ID.
	tokens := []*token.Node{
		tok(token.COMMA, ",", 1),
		tok(token.ID, "a", 1),
		tok(token.EOI, "", 1),
	}
	p := New(g, tokens)
	tree := p.Parse()
	if !p.HadError() {
		t.Fatal("HadError() = false, want true")
	}
	leaves := parsetree.Leaves(tree.Root)
	if len(leaves) != 1 || leaves[0] != "a" {
		t.Fatalf("Leaves() = %v, want [a] (recovered past the stray comma)", leaves)
	}
}

func TestParseReportsTrailingInput(t *testing.T) {
	g := loadToy(t)
	// A well-formed expr ("a") followed by an unconsumed CL with nothing
	// left to match it against.
	tokens := []*token.Node{
		tok(token.ID, "a", 1),
		tok(token.CL, ")", 1),
		tok(token.EOI, "", 1),
	}
	p := New(g, tokens)
	p.Parse()
	if !p.HadError() {
		t.Fatal("HadError() = false, want true for trailing input")
	}
	diags := p.Diagnostics()
	if len(diags) == 0 {
		t.Fatal("Diagnostics() is empty")
	}
	last := diags[len(diags)-1]
	if !strings.Contains(last.Message, "trailing input") {
		t.Errorf("last diagnostic = %q, want it to mention trailing input", last.Message)
	}
}

func TestParseDrainsTrailingInputPastLexicalErrors(t *testing.T) {
	g := loadToy(t)
	// A well-formed expr ("a") followed by a trailing CL (exprRest resolves
	// to its epsilon production without consuming it) and, past that, a
	// lexical-error token before EOI. Both leftover tokens must be
	// surfaced, not just the first.
	tokens := []*token.Node{
		tok(token.ID, "a", 1),
		tok(token.CL, ")", 1),
		tok(token.UNRECOGNIZED, "$", 1),
		tok(token.EOI, "", 1),
	}
	p := New(g, tokens)
	p.Parse()
	if !p.HadError() {
		t.Fatal("HadError() = false, want true")
	}
	diags := p.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("Diagnostics() = %v, want 2 (trailing CL and the UNRECOGNIZED lexical error)", diags)
	}
	if !strings.Contains(diags[0].Message, "trailing input") || !strings.Contains(diags[0].Message, `")"`) {
		t.Errorf("diags[0] = %q, want it to mention trailing input %q", diags[0].Message, ")")
	}
	if diags[1].Kind != diag.Lexical || !strings.Contains(diags[1].Message, `"$"`) {
		t.Errorf("diags[1] = %q, want a lexical diagnostic mentioning %q", diags[1].Message, "$")
	}
}

func TestParseBindsEpsilonLeafToSyntheticEntry(t *testing.T) {
	g := loadToy(t)
	tokens := []*token.Node{
		tok(token.ID, "a", 1),
		tok(token.EOI, "", 1),
	}
	p := New(g, tokens)
	tree := p.Parse()
	if p.HadError() {
		t.Fatalf("HadError() = true, diagnostics: %v", p.Diagnostics())
	}
	// root -> term, exprRest; exprRest -> eps, so exprRest's sole child is
	// an epsilon leaf bound to the synthetic EPSILON entry.
	exprRest := tree.Root.Children[1]
	if len(exprRest.Children) != 1 {
		t.Fatalf("exprRest has %d children, want 1 (the epsilon leaf)", len(exprRest.Children))
	}
	epsLeaf := exprRest.Children[0]
	if epsLeaf.Entry != token.EpsilonEntry {
		t.Fatalf("epsilon leaf entry = %v, want the synthetic EpsilonEntry", epsLeaf.Entry)
	}
}

func TestParseSkipsCommentsAndRecordsLexicalErrors(t *testing.T) {
	g := loadToy(t)
	tokens := []*token.Node{
		{Entry: &token.Entry{Lexeme: "% note", Kind: token.COMMENT}, Line: 1},
		tok(token.UNRECOGNIZED, "$", 1),
		tok(token.ID, "a", 2),
		tok(token.EOI, "", 2),
	}
	p := New(g, tokens)
	tree := p.Parse()
	if !p.HadError() {
		t.Fatal("HadError() = false, want true for the unrecognized-character token")
	}
	leaves := parsetree.Leaves(tree.Root)
	if len(leaves) != 1 || leaves[0] != "a" {
		t.Fatalf("Leaves() = %v, want [a]", leaves)
	}
}
