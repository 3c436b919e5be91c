package token

import "testing"

func TestIsErrorOnlyTrueForErrorKinds(t *testing.T) {
	errorKinds := map[Kind]bool{
		UNRECOGNIZED:   true,
		IDLENGTHEXC:    true,
		FUNIDLENGTHEXC: true,
	}
	for k := NUM; k <= FUNIDLENGTHEXC; k++ {
		want := errorKinds[k]
		if got := k.IsError(); got != want {
			t.Errorf("%v.IsError() = %v, want %v", k, got, want)
		}
	}
}

func TestStringForUnknownKindFallsBack(t *testing.T) {
	var bogus Kind = 9999
	if got, want := bogus.String(), "UNKNOWN"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolveMatchesSymbolicNames(t *testing.T) {
	cases := map[string]Kind{
		"NUM": NUM, "ID": ID, "IF": IF, "ASSIGNOP": ASSIGNOP, "EOI": EOI,
	}
	for name, want := range cases {
		got, ok := Resolve(name)
		if !ok {
			t.Errorf("Resolve(%q) not found", name)
			continue
		}
		if got != want {
			t.Errorf("Resolve(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestResolveRejectsUnknownName(t *testing.T) {
	if _, ok := Resolve("NOT_A_TOKEN"); ok {
		t.Errorf("Resolve() unexpectedly succeeded for an unknown name")
	}
}

func TestKeywordsCoverReservedWordCount(t *testing.T) {
	// spec.md §4.2 fixes the reserved-word set at 27 entries.
	if got, want := len(Keywords), 27; got != want {
		t.Errorf("len(Keywords) = %d, want %d", got, want)
	}
}
