// Package keyword implements the reserved-word lookup used by the lexer
// when it classifies a lowercase-letter run. It is a 26-way trie over
// [a-z], built once at startup and never mutated afterward.
package keyword

import "github.com/codergoel/cocofront/internal/token"

type node struct {
	children [26]*node
	kind     token.Kind
	terminal bool
}

// Trie is an immutable, append-only-at-construction keyword index.
type Trie struct {
	root *node
}

// New builds a Trie preloaded with the fixed reserved-word set
// (token.Keywords) from the language's keyword table.
func New() *Trie {
	t := &Trie{root: &node{}}
	for word, kind := range token.Keywords {
		t.insert(word, kind)
	}
	return t
}

func (t *Trie) insert(word string, kind token.Kind) {
	n := t.root
	for i := 0; i < len(word); i++ {
		idx := int(word[i] - 'a')
		if n.children[idx] == nil {
			n.children[idx] = &node{}
		}
		n = n.children[idx]
	}
	n.terminal = true
	n.kind = kind
}

// Lookup reports the reserved kind for word, or ok=false if word is not a
// keyword (in which case the lexer classifies it as a field identifier).
func (t *Trie) Lookup(word string) (kind token.Kind, ok bool) {
	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return 0, false
		}
		n = n.children[c-'a']
		if n == nil {
			return 0, false
		}
	}
	if n.terminal {
		return n.kind, true
	}
	return 0, false
}
