// Package symtab implements the append-only interning store shared by the
// lexer and the parse tree: one Entry per distinct lexeme, reused on every
// later sighting of the same text.
package symtab

import "github.com/codergoel/cocofront/internal/token"

// Table is an append-only growable array of symbol-table entries. Lookup is
// a linear scan, matching the spec's design note that a reimplementation
// keeps the source's linear-scan contract rather than introducing a hash
// index.
type Table struct {
	entries []*token.Entry
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{entries: make([]*token.Entry, 0, 64)}
}

// Find returns the existing entry for lexeme, or nil if none exists yet.
func (t *Table) Find(lexeme string) *token.Entry {
	for _, e := range t.entries {
		if e.Lexeme == lexeme {
			return e
		}
	}
	return nil
}

// Insert appends a pre-built entry without checking for duplicates. Callers
// that want interning semantics should use Intern instead.
func (t *Table) Insert(e *token.Entry) {
	t.entries = append(t.entries, e)
}

// NewEntry builds a fresh entry with the given lexeme, kind, and numeric
// value, and appends it unconditionally.
func (t *Table) NewEntry(lexeme string, kind token.Kind, value float64) *token.Entry {
	e := &token.Entry{Lexeme: lexeme, Kind: kind, Value: value}
	t.Insert(e)
	return e
}

// Intern returns the existing entry for lexeme if one exists; otherwise it
// creates, inserts, and returns a new one. This is the lexer's contract
// with the table: look up before constructing, reuse verbatim on a hit.
func (t *Table) Intern(lexeme string, kind token.Kind, value float64) *token.Entry {
	if e := t.Find(lexeme); e != nil {
		return e
	}
	return t.NewEntry(lexeme, kind, value)
}

// Len reports the number of entries in the table. Entries added through
// Insert or NewEntry are counted even when they repeat an existing lexeme.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in insertion order. The slice is owned by the
// table; callers must not mutate it.
func (t *Table) Entries() []*token.Entry {
	return t.entries
}
