// Package parsetree defines the parse tree the predictive parser builds:
// nodes labeled by a grammar symbol, holding a growable child list, a line
// number, and (for leaves) a symbol-table entry reference.
package parsetree

import (
	"github.com/codergoel/cocofront/internal/grammar"
	"github.com/codergoel/cocofront/internal/token"
)

const initialChildCapacity = 4

// Node is one parse-tree node. A leaf has Sym.IsTerminal == true and a
// non-nil Entry (the matched token, or the synthetic EPSILON entry for an
// empty production). An internal node is labeled by a non-terminal and
// holds its children in left-to-right rule order.
type Node struct {
	Sym      grammar.Symbol
	Children []*Node
	Line     int
	Entry    *token.Entry // nil for internal nodes
	Parent   grammar.NonTerminal
	hasParent bool
}

// NewLeaf creates a terminal or epsilon leaf.
func NewLeaf(sym grammar.Symbol, entry *token.Entry, line int) *Node {
	return &Node{Sym: sym, Entry: entry, Line: line}
}

// NewInternal creates an internal node labeled by nt, with children
// pre-allocated at a small initial capacity that doubles on overflow (via
// ordinary Go slice growth through AddChild).
func NewInternal(nt grammar.NonTerminal, line int) *Node {
	return &Node{
		Sym:      grammar.Symbol{IsTerminal: false, NT: nt},
		Children: make([]*Node, 0, initialChildCapacity),
		Line:     line,
	}
}

// AddChild appends a child and records this node's non-terminal as the
// child's parent label (used only for the parse-tree dump's parent
// column).
func (n *Node) AddChild(child *Node) {
	if !n.Sym.IsTerminal {
		child.Parent = n.Sym.NT
		child.hasParent = true
	}
	n.Children = append(n.Children, child)
}

// IsLeaf reports whether n is a leaf (terminal or epsilon), i.e. has no
// children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// ParentName returns the owning non-terminal's name, or "ROOT" if n has no
// recorded parent (the tree root).
func (n *Node) ParentName(g *grammar.Grammar) string {
	if !n.hasParent {
		return "ROOT"
	}
	return g.Name(n.Parent)
}

// Tree owns the single root node produced by a parse.
type Tree struct {
	Root *Node
}

// Walk visits every node in the "left-root-rest" traversal spec.md §9
// calls out: the first child is visited, then the node itself, then the
// remaining children in order. visit is called once per node.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	if len(n.Children) > 0 {
		Walk(n.Children[0], visit)
	}
	visit(n)
	for i := 1; i < len(n.Children); i++ {
		Walk(n.Children[i], visit)
	}
}

// Leaves returns every non-epsilon leaf lexeme in left-to-right order, used
// by the round-trip testable property in spec.md §8.
func Leaves(n *Node) []string {
	var out []string
	var rec func(*Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			if n.Entry != nil && n.Sym.Term != token.EPSILON {
				out = append(out, n.Entry.Lexeme)
			}
			return
		}
		for _, c := range n.Children {
			rec(c)
		}
	}
	rec(n)
	return out
}
