package grammar

import "github.com/codergoel/cocofront/internal/token"

// Set is an insertion-ordered bag of token kinds with set-valued semantics:
// Add is a no-op if the kind is already present, preserving the order the
// first FIRST/FOLLOW pass discovered each member in. Per spec.md §9 this
// could be swapped for a bit set over the token-kind enumeration for O(1)
// membership; the insertion-ordered bag is kept because deterministic
// iteration order makes test fixtures reproducible.
type Set struct {
	order []token.Kind
	has   map[token.Kind]bool
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{has: make(map[token.Kind]bool)}
}

// Add inserts k if absent, reporting whether the set changed (used by the
// fixed-point loops to detect convergence).
func (s *Set) Add(k token.Kind) bool {
	if s.has[k] {
		return false
	}
	s.has[k] = true
	s.order = append(s.order, k)
	return true
}

// AddAllExcept copies every member of other into s except `except`,
// reporting whether s changed. Used to compute FIRST(Xi)\{epsilon} unions.
func (s *Set) AddAllExcept(other *Set, except token.Kind) bool {
	changed := false
	for _, k := range other.order {
		if k == except {
			continue
		}
		if s.Add(k) {
			changed = true
		}
	}
	return changed
}

// AddAll copies every member of other into s, reporting whether s changed.
func (s *Set) AddAll(other *Set) bool {
	changed := false
	for _, k := range other.order {
		if s.Add(k) {
			changed = true
		}
	}
	return changed
}

// Contains reports whether k is a member.
func (s *Set) Contains(k token.Kind) bool {
	return s.has[k]
}

// Members returns the set's members in insertion order. Callers must not
// mutate the returned slice.
func (s *Set) Members() []token.Kind {
	return s.order
}
