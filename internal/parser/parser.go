// Package parser implements the table-driven LL(1) predictive parser from
// spec.md §4.6: a stack seeded with the grammar's start symbol, driven by
// the parse table internal/grammar builds, with panic-mode error recovery
// synchronized on FOLLOW sets.
//
// The parser never aborts on the first error. It always returns a
// (possibly partial) parse tree together with a boolean reporting whether
// any lexical or syntactic error was seen, the same contract the teacher's
// internal/parser.Parser exposes via Errors()/LexerErrors() — here
// collapsed into a single ordered []*diag.Diagnostic list since the spec
// does not distinguish lexical-vs-syntactic diagnostic streams at the CLI
// boundary (see §6's single "Line <n> Error: …" format).
package parser

import (
	"fmt"

	"github.com/codergoel/cocofront/internal/diag"
	"github.com/codergoel/cocofront/internal/grammar"
	"github.com/codergoel/cocofront/internal/parsetree"
	"github.com/codergoel/cocofront/internal/token"
)

// safetyMultiplier bounds the number of stack-driven iterations as a
// defensive guard against a pathological or malformed grammar that never
// synchronizes; it is not part of the spec's termination conditions, which
// are guaranteed by the grammar's finiteness in the well-formed case.
const safetyMultiplier = 64

// Parser drives the predictive descent.
type Parser struct {
	g        *grammar.Grammar
	tokens   []*token.Node
	pos      int
	diags    []*diag.Diagnostic
	hadError bool
	lastLine int
}

// New creates a Parser over a fully materialized token stream (the
// lexer's default pipeline, per §5) and a grammar whose Load,
// ComputeFirstFollow, and BuildTable have already been called.
func New(g *grammar.Grammar, tokens []*token.Node) *Parser {
	return &Parser{g: g, tokens: tokens, lastLine: 1}
}

// Diagnostics returns every lexical and syntactic diagnostic collected
// during Parse, in the order encountered.
func (p *Parser) Diagnostics() []*diag.Diagnostic {
	return p.diags
}

// HadError reports whether any diagnostic was recorded.
func (p *Parser) HadError() bool {
	return p.hadError
}

// skip advances past COMMENT tokens (silently) and lexical-error tokens
// (flagging hadError and recording a diagnostic for each, exactly once),
// leaving p.pos at the next token the grammar should actually see.
func (p *Parser) skip() {
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		switch {
		case t.KindOf() == token.COMMENT:
			p.pos++
		case t.KindOf().IsError():
			p.hadError = true
			p.diags = append(p.diags, lexicalDiagnostic(t))
			p.pos++
		default:
			return
		}
	}
}

func lexicalDiagnostic(t *token.Node) *diag.Diagnostic {
	return diag.New(diag.Lexical, t.Line, "%s: %q", t.KindOf(), t.Lexeme())
}

// current returns the current synchronization-worthy token, skipping
// comments and error tokens first.
func (p *Parser) current() *token.Node {
	p.skip()
	if p.pos >= len(p.tokens) {
		return &token.Node{Entry: &token.Entry{Kind: token.EOI}, Line: p.lastLine}
	}
	t := p.tokens[p.pos]
	p.lastLine = t.Line
	return t
}

// advance consumes the current token.
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
	p.skip()
}

type stackItem struct {
	node *parsetree.Node
}

// Parse runs the predictive descent and returns the resulting (possibly
// partial) tree. Check HadError/Diagnostics afterward to decide whether to
// trust or discard it.
func (p *Parser) Parse() *parsetree.Tree {
	p.skip()
	root := parsetree.NewInternal(p.g.Start(), p.current().Line)
	stack := []stackItem{{node: root}}

	iterations := 0
	limit := (len(p.tokens) + 16) * safetyMultiplier

	for len(stack) > 0 {
		iterations++
		if iterations > limit {
			p.hadError = true
			p.diags = append(p.diags, diag.New(diag.Syntactic, p.lastLine, "parser did not converge, aborting"))
			break
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := top.node

		if node.Sym.IsTerminal && node.Sym.Term == token.EPSILON {
			node.Entry = token.EpsilonEntry
			node.Line = p.lastLine
			continue
		}

		if node.Sym.IsTerminal {
			t := p.current()
			if t.KindOf() == node.Sym.Term {
				node.Entry = t.Entry
				node.Line = t.Line
				p.advance()
			} else {
				p.hadError = true
				p.diags = append(p.diags, diag.New(diag.Syntactic, t.Line,
					"expected %s but saw %s %q", node.Sym.Term, t.KindOf(), t.Lexeme()))
			}
			continue
		}

		// Non-terminal: look up the production for (nt, lookahead).
		nt := node.Sym.NT
		t := p.current()
		rule := p.g.Lookup(nt, t.KindOf())
		if rule != nil {
			node.Line = t.Line
			children := make([]*parsetree.Node, len(rule.RHS))
			for i, sym := range rule.RHS {
				children[i] = buildChild(sym, t.Line)
				node.AddChild(children[i])
			}
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, stackItem{node: children[i]})
			}
			continue
		}

		// Parse-table miss: panic-mode recovery via FOLLOW(nt).
		p.hadError = true
		p.diags = append(p.diags, diag.New(diag.Syntactic, t.Line,
			"unexpected token %s %q while parsing %s", t.KindOf(), t.Lexeme(), p.g.Name(nt)))

		if p.g.Follow(nt).Contains(t.KindOf()) {
			// Treat the production as missing and move on without
			// consuming input.
			continue
		}

		for {
			if t.KindOf() == token.EOI {
				break
			}
			p.advance()
			t = p.current()
			if p.g.Lookup(nt, t.KindOf()) != nil || p.g.Follow(nt).Contains(t.KindOf()) {
				stack = append(stack, stackItem{node: node})
				break
			}
		}
	}

	// Drain any remaining input: every leftover token, and every lexical
	// error token among them, must still be surfaced (spec.md §4.6/§7), not
	// just the first one.
	for p.current().KindOf() != token.EOI {
		p.hadError = true
		t := p.current()
		p.diags = append(p.diags, diag.New(diag.Syntactic, t.Line,
			"unexpected trailing input %s %q", t.KindOf(), t.Lexeme()))
		p.advance()
	}

	return &parsetree.Tree{Root: root}
}

func buildChild(sym grammar.Symbol, line int) *parsetree.Node {
	if sym.IsTerminal {
		return parsetree.NewLeaf(sym, nil, line)
	}
	return parsetree.NewInternal(sym.NT, line)
}

// String renders a quick human-readable summary, mostly useful in tests
// and the "time a full run" CLI mode.
func (p *Parser) String() string {
	return fmt.Sprintf("parser{pos=%d/%d, errors=%d}", p.pos, len(p.tokens), len(p.diags))
}
