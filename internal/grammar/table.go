package grammar

import (
	"fmt"

	"github.com/codergoel/cocofront/internal/token"
)

// BuildTable constructs the (non-terminal, terminal) -> rule parse table
// per spec.md §4.5. For every rule N -> alpha: every terminal in
// FIRST(alpha)\{eps} gets the rule; if eps is in FIRST(alpha), every
// terminal in FOLLOW(N) gets it too. A cell that is already occupied is
// overwritten and the conflict recorded (last-writer-wins, tolerated per
// §4.5/§7). Idempotent per §5; must run after ComputeFirstFollow.
func (g *Grammar) BuildTable() {
	if g.tableBuilt {
		return
	}
	for i := range g.rules {
		r := &g.rules[i]
		firstAlpha := g.firstOfSequence(r.RHS)
		for _, t := range firstAlpha.Members() {
			if t == token.EPSILON {
				continue
			}
			g.setCell(r.LHS, t, r)
		}
		if firstAlpha.Contains(token.EPSILON) {
			for _, t := range g.follow[r.LHS].Members() {
				g.setCell(r.LHS, t, r)
			}
		}
	}
	g.tableBuilt = true
}

func (g *Grammar) setCell(nt NonTerminal, t token.Kind, r *Rule) {
	c := cell{nt: nt, term: t}
	if existing, ok := g.table[c]; ok && existing != r {
		g.conflicts = append(g.conflicts, fmt.Sprintf(
			"grammar table conflict at (%s, %s): rule from line %d overwrites rule from line %d",
			g.Name(nt), t, r.line, existing.line))
	}
	g.table[c] = r
}

// Lookup returns the rule selected for (nt, t), or nil if the cell is
// empty — a parse-table miss that the predictive parser must recover from.
func (g *Grammar) Lookup(nt NonTerminal, t token.Kind) *Rule {
	return g.table[cell{nt: nt, term: t}]
}
