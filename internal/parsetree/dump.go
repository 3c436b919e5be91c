package parsetree

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/codergoel/cocofront/internal/grammar"
	"github.com/codergoel/cocofront/internal/token"
)

// Dump writes the parse-tree output format from spec.md §6: one row per
// node in left-root-rest order, seven columns — lexeme (or "-----" for
// internal nodes), line number, token name (or "-----"), numeric value
// (literals only), parent non-terminal name ("ROOT" at the root), the
// "YES"/"NO" leaf flag, and the node's own symbol name.
func Dump(w io.Writer, t *Tree, g *grammar.Grammar) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var err error
	Walk(t.Root, func(n *Node) {
		if err != nil {
			return
		}
		_, werr := fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			lexemeColumn(n), n.Line, tokenColumn(n), valueColumn(n), n.ParentName(g), leafColumn(n), symbolColumn(n, g))
		if werr != nil {
			err = werr
		}
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}

func lexemeColumn(n *Node) string {
	if !n.Sym.IsTerminal {
		return "-----"
	}
	if n.Entry == nil {
		return "-----"
	}
	return n.Entry.Lexeme
}

func tokenColumn(n *Node) string {
	if !n.Sym.IsTerminal {
		return "-----"
	}
	return n.Sym.Term.String()
}

func valueColumn(n *Node) string {
	if !n.Sym.IsTerminal || n.Entry == nil {
		return "-----"
	}
	switch n.Sym.Term {
	case token.NUM:
		return fmt.Sprintf("%04d", int(n.Entry.Value))
	case token.RNUM:
		return fmt.Sprintf("%.2f", n.Entry.Value)
	default:
		return "-----"
	}
}

func leafColumn(n *Node) string {
	if n.IsLeaf() {
		return "YES"
	}
	return "NO"
}

func symbolColumn(n *Node, g *grammar.Grammar) string {
	if n.Sym.IsTerminal {
		return n.Sym.Term.String()
	}
	return g.Name(n.Sym.NT)
}
