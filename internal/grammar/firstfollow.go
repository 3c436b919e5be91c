package grammar

import "github.com/codergoel/cocofront/internal/token"

// ComputeFirstFollow runs the FIRST and FOLLOW fixed-point algorithms from
// spec.md §4.5. Calling it twice is a no-op (idempotent per §5); it must
// run after Load and before BuildTable.
func (g *Grammar) ComputeFirstFollow() {
	if g.computed {
		return
	}
	g.first = make(map[NonTerminal]*Set, len(g.names))
	g.follow = make(map[NonTerminal]*Set, len(g.names))
	for i := range g.names {
		nt := NonTerminal(i)
		g.first[nt] = NewSet()
		g.follow[nt] = NewSet()
	}

	g.computeFirst()
	g.computeFollow()
	g.computed = true
}

// First returns FIRST(nt). Valid only after ComputeFirstFollow.
func (g *Grammar) First(nt NonTerminal) *Set {
	return g.first[nt]
}

// Follow returns FOLLOW(nt). Valid only after ComputeFirstFollow.
func (g *Grammar) Follow(nt NonTerminal) *Set {
	return g.follow[nt]
}

// computeFirst iterates every rule to a fixed point: for N -> X1...Xk, walk
// left to right, adding FIRST(Xi)\{eps} (or Xi itself if terminal) and
// stopping at the first symbol that cannot derive epsilon; if every symbol
// on the walk can derive epsilon, eps is added to FIRST(N).
func (g *Grammar) computeFirst() {
	for {
		changed := false
		for i := range g.rules {
			r := &g.rules[i]
			firstN := g.first[r.LHS]

			allEpsilon := true
			for _, sym := range r.RHS {
				if sym.IsTerminal {
					if sym.Term == token.EPSILON {
						// An explicit epsilon RHS: N derives the empty string.
						if firstN.Add(token.EPSILON) {
							changed = true
						}
						allEpsilon = true
						break
					}
					if firstN.Add(sym.Term) {
						changed = true
					}
					allEpsilon = false
					break
				}
				firstX := g.first[sym.NT]
				if firstN.AddAllExcept(firstX, token.EPSILON) {
					changed = true
				}
				if !firstX.Contains(token.EPSILON) {
					allEpsilon = false
					break
				}
			}
			if allEpsilon && len(r.RHS) > 0 {
				if firstN.Add(token.EPSILON) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// firstOfSequence computes FIRST(X1...Xk) for an arbitrary symbol sequence,
// used both internally and by BuildTable.
func (g *Grammar) firstOfSequence(seq []Symbol) *Set {
	result := NewSet()
	allEpsilon := true
	for _, sym := range seq {
		if sym.IsTerminal {
			if sym.Term == token.EPSILON {
				result.Add(token.EPSILON)
				allEpsilon = true
				break
			}
			result.Add(sym.Term)
			allEpsilon = false
			break
		}
		firstX := g.first[sym.NT]
		result.AddAllExcept(firstX, token.EPSILON)
		if !firstX.Contains(token.EPSILON) {
			allEpsilon = false
			break
		}
	}
	if allEpsilon {
		result.Add(token.EPSILON)
	}
	if len(seq) == 0 {
		result.Add(token.EPSILON)
	}
	return result
}

// computeFollow iterates every rule to a fixed point applying the two
// FOLLOW propagation clauses from spec.md §4.5, after seeding FOLLOW(start)
// with end-of-input.
func (g *Grammar) computeFollow() {
	g.follow[g.start].Add(token.EOI)

	for {
		changed := false
		for i := range g.rules {
			r := &g.rules[i]
			for bi, sym := range r.RHS {
				if sym.IsTerminal {
					continue
				}
				beta := r.RHS[bi+1:]
				firstBeta := g.firstOfSequence(beta)
				followB := g.follow[sym.NT]
				if followB.AddAllExcept(firstBeta, token.EPSILON) {
					changed = true
				}
				if len(beta) == 0 || firstBeta.Contains(token.EPSILON) {
					if followB.AddAll(g.follow[r.LHS]) {
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}
