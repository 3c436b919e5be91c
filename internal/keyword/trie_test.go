package keyword

import (
	"testing"

	"github.com/codergoel/cocofront/internal/token"
)

func TestLookupFindsEveryReservedWord(t *testing.T) {
	tr := New()
	for word, want := range token.Keywords {
		got, ok := tr.Lookup(word)
		if !ok {
			t.Errorf("Lookup(%q) not found, want %v", word, want)
			continue
		}
		if got != want {
			t.Errorf("Lookup(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestLookupRejectsNonKeywords(t *testing.T) {
	tr := New()
	cases := []string{"foo", "wit", "withh", "", "endunio", "ifx"}
	for _, word := range cases {
		if _, ok := tr.Lookup(word); ok {
			t.Errorf("Lookup(%q) unexpectedly found", word)
		}
	}
}

func TestLookupRejectsNonLowercaseInput(t *testing.T) {
	tr := New()
	if _, ok := tr.Lookup("IF"); ok {
		t.Errorf("Lookup(%q) unexpectedly found", "IF")
	}
	if _, ok := tr.Lookup("if2"); ok {
		t.Errorf("Lookup(%q) unexpectedly found", "if2")
	}
}

func TestLookupPrefixIsNotAKeyword(t *testing.T) {
	tr := New()
	// "end" is itself reserved, but "endu" (a strict prefix of "endunion")
	// must not be mistaken for a match just because the path exists in the trie.
	if _, ok := tr.Lookup("endu"); ok {
		t.Errorf("Lookup(%q) unexpectedly found a non-terminal trie path", "endu")
	}
}
