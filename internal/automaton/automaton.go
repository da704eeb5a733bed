// Package automaton implements the FiniteAutomaton engine: the NFA/DFA
// state graph and every transform over it (determinization, epsilon
// removal, minimization, product constructions, complement, reverse,
// annotate/deannotate/delinearize, bisimulation equivalence, ambiguity
// classification, subset, Arden's-lemma-based NFA→regex printing support).
//
// Subset construction via epsilon-closure, BFS state discovery over the
// sorted alphabet with subsets keyed by sorted index tuples, and
// product-style composition via explicit rename maps all operate on the
// tagged State struct below rather than a generic state-value type.
package automaton

import (
	"fmt"
	"sort"

	"github.com/desitas1701/chipollino/internal/lang"
	"github.com/desitas1701/chipollino/internal/symbol"
	"github.com/desitas1701/chipollino/internal/util"
)

// State is one node of a FiniteAutomaton's state graph.
type State struct {
	Index       int
	ID          string
	Terminal    bool
	Label       util.IntSet // provenance: originating states across merges/determinizations
	transitions map[symbol.Symbol]util.IntSet
}

func newState(index int, id string, terminal bool) State {
	return State{
		Index:       index,
		ID:          id,
		Terminal:    terminal,
		Label:       util.NewIntSet(index),
		transitions: map[symbol.Symbol]util.IntSet{},
	}
}

// Targets returns the set of states reachable from this state on a, which
// may be symbol.Epsilon.
func (s State) Targets(a symbol.Symbol) util.IntSet {
	return s.transitions[a]
}

// Moves returns every (symbol, targets) pair leaving this state, including
// any epsilon transitions.
func (s State) Moves() map[symbol.Symbol]util.IntSet {
	return s.transitions
}

func (s *State) addTransition(a symbol.Symbol, to int) {
	if s.transitions == nil {
		s.transitions = map[symbol.Symbol]util.IntSet{}
	}
	set, ok := s.transitions[a]
	if !ok {
		set = util.NewIntSet()
		s.transitions[a] = set
	}
	set.Add(to)
}

func (s State) copy() State {
	cp := State{Index: s.Index, ID: s.ID, Terminal: s.Terminal, Label: s.Label.Copy(), transitions: map[symbol.Symbol]util.IntSet{}}
	for a, targets := range s.transitions {
		cp.transitions[a] = targets.Copy()
	}
	return cp
}

// FA is a finite automaton: an initial state index, a dense [0,n) sequence
// of States, and a shared handle to the Language cache for its language.
type FA struct {
	Initial int
	States  []State
	cache   *lang.Cache
}

// New builds an empty automaton over alphabet with a fresh Language cache.
func New(alphabet symbol.Alphabet) *FA {
	return &FA{cache: lang.New(alphabet)}
}

// WithCache builds an empty automaton sharing the given Language cache (used
// by representation-preserving transforms such as Determinize, Minimize,
// RemoveEps and trap-state add/remove, and by the regex constructions that
// share their regex's cache).
func WithCache(c *lang.Cache) *FA {
	return &FA{cache: c}
}

// Cache returns the automaton's Language cache handle.
func (fa *FA) Cache() *lang.Cache {
	return fa.cache
}

// AddState appends a new state and returns its index.
func (fa *FA) AddState(id string, terminal bool) int {
	idx := len(fa.States)
	fa.States = append(fa.States, newState(idx, id, terminal))
	return idx
}

// AddTransition adds a transition from 'from' to 'to' on symbol a (a may be
// symbol.Epsilon).
func (fa *FA) AddTransition(from int, a symbol.Symbol, to int) {
	fa.States[from].addTransition(a, to)
}

// NumStates returns the number of states.
func (fa *FA) NumStates() int {
	return len(fa.States)
}

// Alphabet returns the automaton's alphabet (the non-epsilon symbols that
// label at least one transition), falling back to the cached Language
// alphabet when set.
func (fa *FA) Alphabet() symbol.Alphabet {
	if fa.cache != nil {
		if a := fa.cache.Alphabet(); a != nil {
			return a
		}
	}
	seen := symbol.Alphabet{}
	for _, s := range fa.States {
		for a := range s.transitions {
			if !a.IsEpsilon() {
				seen = append(seen, a)
			}
		}
	}
	return symbol.NewAlphabet(seen...)
}

// AcceptingStates returns the indices of every terminal state.
func (fa *FA) AcceptingStates() util.IntSet {
	out := util.NewIntSet()
	for _, s := range fa.States {
		if s.Terminal {
			out.Add(s.Index)
		}
	}
	return out
}

// Copy produces a deep clone of fa sharing the same Language cache (copying
// does not change the accepted language).
func (fa *FA) Copy() *FA {
	cp := &FA{Initial: fa.Initial, cache: fa.cache, States: make([]State, len(fa.States))}
	for i, s := range fa.States {
		cp.States[i] = s.copy()
	}
	return cp
}

// HasEpsilonTransitions reports whether any state has an epsilon move.
func (fa *FA) HasEpsilonTransitions() bool {
	for _, s := range fa.States {
		if targets, ok := s.transitions[symbol.Epsilon]; ok && targets.Len() > 0 {
			return true
		}
	}
	return false
}

// IsDeterministic holds iff for each state and each non-epsilon symbol the
// target set has size <= 1 and there are no epsilon transitions.
func (fa *FA) IsDeterministic() bool {
	if fa.HasEpsilonTransitions() {
		return false
	}
	for _, s := range fa.States {
		for a, targets := range s.transitions {
			if a.IsEpsilon() {
				continue
			}
			if targets.Len() > 1 {
				return false
			}
		}
	}
	return true
}

// IsEmpty reports whether the automaton accepts no strings: no accepting
// state reachable from the initial state.
func (fa *FA) IsEmpty() bool {
	reachable := fa.reachableFrom(fa.Initial, true)
	for idx := range reachable {
		if fa.States[idx].Terminal {
			return false
		}
	}
	return true
}

// epsilonClosure returns the set of states reachable from any state in ss
// using only epsilon transitions (including ss itself).
func (fa *FA) epsilonClosure(ss util.IntSet) util.IntSet {
	closure := ss.Copy()
	stack := ss.Elements()
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range fa.States[cur].transitions[symbol.Epsilon] {
			if !closure.Has(next) {
				closure.Add(next)
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// EpsilonClosure is the exported single-state form.
func (fa *FA) EpsilonClosure(s int) util.IntSet {
	return fa.epsilonClosure(util.NewIntSet(s))
}

// move returns the set of states reachable from any state of ss on symbol a
// (non-epsilon).
func (fa *FA) move(ss util.IntSet, a symbol.Symbol) util.IntSet {
	out := util.NewIntSet()
	for idx := range ss {
		out.AddAll(fa.States[idx].transitions[a])
	}
	return out
}

func (fa *FA) reachableFrom(start int, epsilonOnly bool) util.IntSet {
	visited := util.NewIntSet(start)
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for a, targets := range fa.States[cur].transitions {
			if epsilonOnly && !a.IsEpsilon() {
				continue
			}
			for t := range targets {
				if !visited.Has(t) {
					visited.Add(t)
					stack = append(stack, t)
				}
			}
		}
	}
	return visited
}

// Reachable returns the set of every state index reachable from the initial
// state via any transition (epsilon or not).
func (fa *FA) Reachable() util.IntSet {
	return fa.reachableFrom(fa.Initial, false)
}

// RemoveUnreachable returns a new automaton containing only states
// reachable from the initial state, re-indexed densely in increasing
// original-index order (a stable, deterministic renumbering).
func (fa *FA) RemoveUnreachable() *FA {
	reachable := fa.Reachable()
	order := util.SortedInts(reachable)
	remap := make(map[int]int, len(order))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = newIdx
	}
	out := WithCache(fa.cache)
	for _, oldIdx := range order {
		old := fa.States[oldIdx]
		out.States = append(out.States, State{
			Index:       remap[oldIdx],
			ID:          old.ID,
			Terminal:    old.Terminal,
			Label:       old.Label.Copy(),
			transitions: map[symbol.Symbol]util.IntSet{},
		})
	}
	for _, oldIdx := range order {
		old := fa.States[oldIdx]
		newFrom := remap[oldIdx]
		for a, targets := range old.transitions {
			for t := range targets {
				if newTo, ok := remap[t]; ok {
					out.States[newFrom].addTransition(a, newTo)
				}
			}
		}
	}
	out.Initial = remap[fa.Initial]
	return out
}

// String renders the automaton for diagnostics using a plain
// "=(sym)=> target" transition notation.
func (fa *FA) String() string {
	out := fmt.Sprintf("initial: %d\n", fa.Initial)
	for _, s := range fa.States {
		term := ""
		if s.Terminal {
			term = " [accepting]"
		}
		out += fmt.Sprintf("%d (%s)%s:\n", s.Index, s.ID, term)
		syms := make([]symbol.Symbol, 0, len(s.transitions))
		for a := range s.transitions {
			syms = append(syms, a)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i].Less(syms[j]) })
		for _, a := range syms {
			label := a.String()
			if a.IsEpsilon() {
				label = "ε"
			}
			out += fmt.Sprintf("  =(%s)=> %s\n", label, util.StringOrderedInts(s.transitions[a]))
		}
	}
	return out
}

// Accepts simulates an NFA run of word over fa, tracking the set of states
// reachable after each symbol under epsilon-closure, and reports whether any
// state in the final set is accepting.
func (fa *FA) Accepts(word []symbol.Symbol) bool {
	current := fa.epsilonClosure(util.NewIntSet(fa.Initial))
	for _, a := range word {
		current = fa.epsilonClosure(fa.move(current, a))
		if current.Empty() {
			return false
		}
	}
	return current.Any(func(i int) bool { return fa.States[i].Terminal })
}

// Step returns the unique successor of state on symbol a, assuming fa is
// deterministic (exactly one target per symbol); ok is false if there is no
// such transition.
func (fa *FA) Step(state int, a symbol.Symbol) (int, bool) {
	target := soleTarget(fa.States[state], a)
	return target, target >= 0
}

// CacheMinDFA stores fa as the memoized minimal DFA for c, if not already
// set. Breaks the lang<->automaton import cycle: lang stores the slot as
// `any`, and this helper does the one necessary type assertion at the call
// site instead of lang needing to import automaton.
func CacheMinDFA(c *lang.Cache, fa *FA) {
	c.MinDFA.SetOnce(fa)
}

// CachedMinDFA retrieves the memoized minimal DFA for c, if any.
func CachedMinDFA(c *lang.Cache) (*FA, bool) {
	v, ok := c.MinDFA.Get()
	if !ok {
		return nil, false
	}
	return v.(*FA), true
}
