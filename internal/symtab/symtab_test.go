package symtab

import (
	"testing"

	"github.com/codergoel/cocofront/internal/token"
)

func TestInternReusesExistingEntry(t *testing.T) {
	tab := New()
	first := tab.Intern("total", token.FIELDID, 0)
	second := tab.Intern("total", token.FIELDID, 0)
	if first != second {
		t.Fatalf("Intern() returned distinct entries for the same lexeme")
	}
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tab.Len())
	}
}

func TestInternCreatesDistinctEntriesForDistinctLexemes(t *testing.T) {
	tab := New()
	tab.Intern("a", token.FIELDID, 0)
	tab.Intern("b", token.FIELDID, 0)
	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}
}

func TestFindReturnsNilForUnseenLexeme(t *testing.T) {
	tab := New()
	if e := tab.Find("nope"); e != nil {
		t.Fatalf("Find() = %v, want nil", e)
	}
}

func TestNewEntryBypassesInterning(t *testing.T) {
	tab := New()
	a := tab.NewEntry("dup", token.UNRECOGNIZED, 0)
	b := tab.NewEntry("dup", token.UNRECOGNIZED, 0)
	if a == b {
		t.Fatalf("NewEntry() unexpectedly returned a shared entry")
	}
	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}
}

func TestEntriesPreservesInsertionOrder(t *testing.T) {
	tab := New()
	tab.Intern("x", token.FIELDID, 0)
	tab.Intern("y", token.FIELDID, 0)
	tab.Intern("x", token.FIELDID, 0) // repeat, should not append
	entries := tab.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Lexeme != "x" || entries[1].Lexeme != "y" {
		t.Fatalf("Entries() = %v, want [x y]", entries)
	}
}
