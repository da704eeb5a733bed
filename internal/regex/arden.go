package regex

import (
	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/automaton"
)

// Arden elimination uses two sentinel indices outside the automaton's dense
// [0,n) state space to keep the system to one source and one sink
// regardless of how many original accepting states there are.
const (
	ardenStart = -1
	ardenFinal = -2
)

// FromAutomaton converts fa to an equivalent Regex by solving the system of
// linear language equations x_i = Σ_j r_ij·x_j + ε[i accepting] via repeated
// application of Arden's identity (x = Ax+B ⇒ x = A*B), eliminating states
// one at a time in descending index order. Lives in the regex package
// rather than automaton to keep the automaton<->regex
// import edge one-directional (regex already imports automaton for the
// Thompson/Glushkov/IlieYu/Antimirov constructors).
//
// The regex grammar has no literal ∅ atom; if fa accepts no strings the
// result tree's root is the internal EmptySet kind, which prints as "" like
// epsilon — callers that care should check ContainsEps/IsEmpty on fa first.
func FromAutomaton(fa *automaton.FA) *Regex {
	edges := map[int]map[int]*algexpr.Node{}
	addEdge := func(from, to int, term *algexpr.Node) {
		if edges[from] == nil {
			edges[from] = map[int]*algexpr.Node{}
		}
		if existing, ok := edges[from][to]; ok {
			edges[from][to] = algexpr.NewAlt(existing, term)
		} else {
			edges[from][to] = term
		}
	}

	for _, s := range fa.States {
		for a, targets := range s.Moves() {
			var term *algexpr.Node
			if a.IsEpsilon() {
				term = algexpr.NewEps()
			} else {
				term = algexpr.NewSymb(a)
			}
			for t := range targets {
				addEdge(s.Index, t, term)
			}
		}
	}

	addEdge(ardenStart, fa.Initial, algexpr.NewEps())
	for _, s := range fa.States {
		if s.Terminal {
			addEdge(s.Index, ardenFinal, algexpr.NewEps())
		}
	}

	order := make([]int, fa.NumStates())
	for i := range order {
		order[i] = fa.NumStates() - 1 - i
	}

	for _, i := range order {
		selfLoop := edges[i][i]
		var starred *algexpr.Node
		if selfLoop != nil {
			starred = algexpr.NewStar(selfLoop)
		}

		var sources []int
		for k, row := range edges {
			if k == i {
				continue
			}
			if _, ok := row[i]; ok {
				sources = append(sources, k)
			}
		}
		var targets []int
		for t := range edges[i] {
			if t != i {
				targets = append(targets, t)
			}
		}

		for _, k := range sources {
			through := edges[k][i]
			if starred != nil {
				through = algexpr.NewConc(through, starred)
			}
			for _, m := range targets {
				addEdge(k, m, algexpr.NewConc(through, edges[i][m]))
			}
			delete(edges[k], i)
		}
		delete(edges, i)
	}

	result := edges[ardenStart][ardenFinal]
	if result == nil {
		result = algexpr.NewEmptySet()
	}
	return FromTree(simplify(result), false)
}
