// Package defaultgrammar embeds the reference grammar.txt (spec.md §6, the
// concrete productions from SPEC_FULL.md §4.7) as the CLI's built-in
// default, so cocofront has something to load when --grammar isn't given.
// The grammar text file itself remains an external collaborator per
// spec.md §1 — a real deployment can point --grammar at any conforming
// file; this is just a convenience fallback, kept identical to the
// repository-root grammar.txt.
package defaultgrammar

import _ "embed"

//go:embed grammar.txt
var Text string
