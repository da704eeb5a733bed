// Package generator implements AutomatonGenerator: random NFA/DFA/MFA
// structural construction parameterised by state count and probability
// knobs. Grammar-driven textual emission of the generated object is out of
// scope; this package stops at the structural object.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/symbol"
	"github.com/desitas1701/chipollino/internal/util"
)

// TargetType selects which kind of automaton Generate produces.
type TargetType int

const (
	TargetNFA TargetType = iota
	TargetDFA
	TargetMFA
)

// Params configures a single Generate call.
type Params struct {
	Target             TargetType
	NumStates          int
	FinalProbability   float64
	EpsilonProbability float64
	BackRefProbability float64
	NumCells           int
	Alphabet           symbol.Alphabet
	Rand               *rand.Rand
}

func (p Params) rng() *rand.Rand {
	if p.Rand != nil {
		return p.Rand
	}
	return rand.New(rand.NewSource(1))
}

// Generate builds a random automaton: draw an edge count in
// [n-1, n(n-1)/2+3]; grow a connected skeleton by always routing the next
// edge at an as-yet-unvisited destination state; close the reachable-from-
// accepting set by repeated reverse-BFS seeding from a random uncovered
// state until every state can reach an accepting one; sprinkle additional
// accepting states by independent Bernoulli trials. For a DFA target,
// outgoing symbols on any one state are forced distinct.
func Generate(p Params) *automaton.FA {
	rng := p.rng()
	n := p.NumStates
	if n <= 0 {
		n = 1
	}

	fa := automaton.New(p.Alphabet)
	for i := 0; i < n; i++ {
		fa.AddState(fmt.Sprintf("s%d", i), false)
	}
	fa.Initial = 0

	minEdges := n - 1
	if minEdges < 0 {
		minEdges = 0
	}
	maxEdges := n*(n-1)/2 + 3
	if maxEdges < minEdges {
		maxEdges = minEdges
	}
	numEdges := minEdges
	if maxEdges > minEdges {
		numEdges = minEdges + rng.Intn(maxEdges-minEdges+1)
	}

	nextUnused := 1
	for e := 0; e < numEdges; e++ {
		from := rng.Intn(n)
		var to int
		if nextUnused < n {
			to = nextUnused
			nextUnused++
		} else {
			to = rng.Intn(n)
		}

		if p.Target != TargetDFA && rng.Float64() < p.EpsilonProbability {
			fa.AddTransition(from, symbol.Epsilon, to)
			continue
		}

		a := randomSymbol(p.Alphabet, rng)
		if p.Target == TargetDFA {
			a = distinctSymbol(p.Alphabet, fa, from, rng)
			if a.IsEpsilon() {
				continue // every symbol already used on this state
			}
		}
		fa.AddTransition(from, a, to)
	}

	fa.States[rng.Intn(n)].Terminal = true
	closeReachableFromAccepting(fa, rng)
	for i := 0; i < n; i++ {
		if !fa.States[i].Terminal && rng.Float64() < p.FinalProbability {
			fa.States[i].Terminal = true
		}
	}
	closeReachableFromAccepting(fa, rng)

	return fa
}

func randomSymbol(alphabet symbol.Alphabet, rng *rand.Rand) symbol.Symbol {
	if len(alphabet) == 0 {
		return symbol.Epsilon
	}
	return alphabet[rng.Intn(len(alphabet))]
}

// distinctSymbol picks a symbol not already labeling an outgoing transition
// from state, for forcing a DFA's per-state symbol-determinism. Returns
// symbol.Epsilon (never a legal DFA label) if every alphabet symbol is
// already used on this state, signaling the caller to skip the edge.
func distinctSymbol(alphabet symbol.Alphabet, fa *automaton.FA, state int, rng *rand.Rand) symbol.Symbol {
	used := fa.States[state].Moves()
	var avail []symbol.Symbol
	for _, a := range alphabet {
		if _, ok := used[a]; !ok {
			avail = append(avail, a)
		}
	}
	if len(avail) == 0 {
		return symbol.Epsilon
	}
	return avail[rng.Intn(len(avail))]
}

// ancestorsOfAccepting returns every state that can reach a currently
// accepting state via some forward path, found by BFS over the reversed
// transition graph seeded at the accepting states.
func ancestorsOfAccepting(fa *automaton.FA) map[int]bool {
	rev := map[int][]int{}
	for _, s := range fa.States {
		for _, targets := range s.Moves() {
			for t := range targets {
				rev[t] = append(rev[t], s.Index)
			}
		}
	}
	visited := map[int]bool{}
	var queue []int
	for _, s := range fa.States {
		if s.Terminal {
			visited[s.Index] = true
			queue = append(queue, s.Index)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range rev[cur] {
			if !visited[p] {
				visited[p] = true
				queue = append(queue, p)
			}
		}
	}
	return visited
}

// closeReachableFromAccepting repeatedly picks a random state not yet able
// to reach an accepting state and marks it accepting too, via repeated
// reverse-BFS seeding from a random non-seed, until every state can reach
// some accepting state.
func closeReachableFromAccepting(fa *automaton.FA, rng *rand.Rand) {
	for {
		reach := ancestorsOfAccepting(fa)
		if len(reach) >= fa.NumStates() {
			return
		}
		var candidates []int
		for i := 0; i < fa.NumStates(); i++ {
			if !reach[i] {
				candidates = append(candidates, i)
			}
		}
		fa.States[candidates[rng.Intn(len(candidates))]].Terminal = true
	}
}

// Cell color states for MFA generation: a cell starts white (unopened),
// turns red once a transition opens it, and turns yellow once a later
// transition closes it.
const (
	ColorWhite = 0
	ColorRed   = 1
	ColorYellow = 2
)

// MFATransition extends a plain transition with the memory cells opened and
// closed on traversal.
type MFATransition struct {
	From, To int
	Symbol   symbol.Symbol
	Open     util.IntSet
	Close    util.IntSet
}

// MFA is a memory-augmented automaton: the underlying FA skeleton plus a
// per-transition open/close annotation and the final per-state coloring
// matrix that produced it.
type MFA struct {
	FA          *automaton.FA
	Transitions []MFATransition
	NumCells    int
	Coloring    [][]int
}

// GenerateMFA builds a random MFA: first generates an ordinary NFA skeleton,
// then colors each cell onto every transition it crosses, white→red on
// first open and red→yellow on close.
func GenerateMFA(p Params) *MFA {
	rng := p.rng()
	fa := Generate(p)
	n := fa.NumStates()

	coloring := make([][]int, n)
	for i := range coloring {
		coloring[i] = make([]int, p.NumCells)
	}

	var transitions []MFATransition
	for _, s := range fa.States {
		for a, targets := range s.Moves() {
			for t := range targets {
				tr := MFATransition{From: s.Index, To: t, Symbol: a, Open: util.NewIntSet(), Close: util.NewIntSet()}
				for c := 0; c < p.NumCells; c++ {
					switch coloring[s.Index][c] {
					case ColorWhite:
						if rng.Float64() < p.BackRefProbability {
							tr.Open.Add(c)
							coloring[t][c] = ColorRed
						}
					case ColorRed:
						if rng.Float64() < 0.5 {
							tr.Close.Add(c)
							coloring[t][c] = ColorYellow
						} else {
							coloring[t][c] = ColorRed
						}
					case ColorYellow:
						coloring[t][c] = ColorYellow
					}
				}
				transitions = append(transitions, tr)
			}
		}
	}

	return &MFA{FA: fa, Transitions: transitions, NumCells: p.NumCells, Coloring: coloring}
}
