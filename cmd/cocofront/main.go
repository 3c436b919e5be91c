// Command cocofront is the front-end CLI entry point: lexer, symbol table,
// keyword trie, and LL(1) predictive parser for a small imperative
// records/unions language.
package main

import (
	"fmt"
	"os"

	"github.com/codergoel/cocofront/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
