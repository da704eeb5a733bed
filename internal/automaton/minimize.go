package automaton

import "github.com/desitas1701/chipollino/internal/symbol"

// Minimize determinizes fa (to a *total* DFA, so every state has exactly
// one successor per symbol), then builds a symmetric distinguishability
// table initialized from accepting/non-accepting pairs, iterating to a
// fixpoint that marks a pair distinguishable whenever some symbol leads
// them to an already-distinguishable pair. Unmarked pairs are merged via
// union-find into equivalence classes, yielding the quotient DFA. The
// result is memoized in the shared Language cache. When
// isTrim is true (the default), any resulting absorbing trap state is
// stripped from the output.
func (fa *FA) Minimize(isTrim bool) *FA {
	if cached, ok := CachedMinDFA(fa.cache); ok {
		if isTrim {
			return cached.RemoveTrapState()
		}
		return cached
	}

	det := fa.Determinize(false)
	n := det.NumStates()
	alphabet := det.Alphabet()

	distinguishable := make([][]bool, n)
	for i := range distinguishable {
		distinguishable[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if det.States[i].Terminal != det.States[j].Terminal {
				distinguishable[i][j] = true
				distinguishable[j][i] = true
			}
		}
	}

	changed := true
	for changed {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if distinguishable[i][j] {
					continue
				}
				for _, a := range alphabet {
					ti := soleTarget(det.States[i], a)
					tj := soleTarget(det.States[j], a)
					lo, hi := ti, tj
					if lo > hi {
						lo, hi = hi, lo
					}
					if ti != tj && distinguishable[lo][hi] {
						distinguishable[i][j] = true
						distinguishable[j][i] = true
						changed = true
						break
					}
				}
			}
		}
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !distinguishable[i][j] {
				uf.union(i, j)
			}
		}
	}

	classOf := make(map[int]int, n)
	var classOrder []int
	for i := 0; i < n; i++ {
		root := uf.find(i)
		if _, ok := classOf[root]; !ok {
			classOf[root] = len(classOrder)
			classOrder = append(classOrder, root)
		}
	}

	out := WithCache(fa.cache)
	out.States = make([]State, len(classOrder))
	for i, root := range classOrder {
		rep := det.States[root]
		terminal := false
		for j := 0; j < n; j++ {
			if classOf[uf.find(j)] == i && det.States[j].Terminal {
				terminal = true
				break
			}
		}
		out.States[i] = newState(i, rep.ID, terminal)
	}
	for i := 0; i < n; i++ {
		class := classOf[uf.find(i)]
		for a := range det.States[i].transitions {
			target := soleTarget(det.States[i], a)
			out.AddTransition(class, a, classOf[uf.find(target)])
		}
	}
	out.Initial = classOf[uf.find(det.Initial)]

	CacheMinDFA(fa.cache, out)
	if isTrim {
		return out.RemoveTrapState()
	}
	return out
}

// Minimal reports whether fa (assumed deterministic) already equals its own
// minimization up to isomorphism.
func (fa *FA) Minimal() bool {
	return fa.Equal(fa.Minimize(false))
}

// soleTarget returns the single successor of s on a, assuming s is part of
// a deterministic, total automaton (exactly one target per symbol).
func soleTarget(s State, a symbol.Symbol) int {
	targets := s.transitions[a]
	for t := range targets {
		return t
	}
	return -1
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}
