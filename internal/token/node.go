package token

// Entry is a symbol-table entry: a lexeme together with its token kind and,
// for numeric literals, its parsed value. Entries are created once per
// distinct lexeme and reused on every later sighting (internal/symtab owns
// that interning discipline); Entry itself is a plain immutable record.
type Entry struct {
	Lexeme string
	Kind   Kind
	Value  float64 // meaningful only when Kind is NUM or RNUM
}

// EpsilonEntry is the synthetic symbol-table entry bound to every epsilon
// leaf in the parse tree. It is never inserted into a real symbol table.
var EpsilonEntry = &Entry{Lexeme: "EPSILON", Kind: EPSILON}

// Node is one token produced by the lexer: a reference to the shared
// symbol-table entry for its lexeme, plus the source line it was read on.
// Nodes form a singly linked stream terminated by an EOI node.
type Node struct {
	Entry *Entry
	Line  int
	Next  *Node
}

// KindOf is a convenience accessor for Entry.Kind.
func (n *Node) KindOf() Kind {
	if n == nil || n.Entry == nil {
		return EOI
	}
	return n.Entry.Kind
}

// Lexeme is a convenience accessor for Entry.Lexeme.
func (n *Node) Lexeme() string {
	if n == nil || n.Entry == nil {
		return ""
	}
	return n.Entry.Lexeme
}
