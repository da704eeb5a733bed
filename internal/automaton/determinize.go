package automaton

import (
	"github.com/desitas1701/chipollino/internal/symbol"
	"github.com/desitas1701/chipollino/internal/util"
)

// Determinize runs the standard subset construction with epsilon-closure.
// The input state set becomes the closure of {initial}
// under epsilon; for each new subset and alphabet symbol, the closure of
// the union of post-symbol images becomes the next subset. Each subset is
// keyed by its sorted index tuple, and output state indices follow BFS
// discovery order with the alphabet visited in sorted order, so output is
// canonical regardless of map iteration order.
//
// When isTrim is false, an absorbing non-accepting trap state is added so
// the transition function is total.
func (fa *FA) Determinize(isTrim bool) *FA {
	alphabet := fa.Alphabet()

	start := fa.epsilonClosure(util.NewIntSet(fa.Initial))
	type subset struct {
		key string
		set util.IntSet
	}
	startKey := util.StringOrderedInts(start)

	order := []subset{{key: startKey, set: start}}
	indexOf := map[string]int{startKey: 0}
	queue := []string{startKey}

	transitionsByKey := map[string]map[symbol.Symbol]string{}

	for len(queue) > 0 {
		curKey := queue[0]
		queue = queue[1:]
		curSet := order[indexOf[curKey]].set

		transitionsByKey[curKey] = map[symbol.Symbol]string{}
		for _, a := range alphabet {
			moved := fa.move(curSet, a)
			if moved.Empty() {
				continue
			}
			closed := fa.epsilonClosure(moved)
			key := util.StringOrderedInts(closed)
			if _, seen := indexOf[key]; !seen {
				indexOf[key] = len(order)
				order = append(order, subset{key: key, set: closed})
				queue = append(queue, key)
			}
			transitionsByKey[curKey][a] = key
		}
	}

	out := WithCache(fa.cache)
	for i, sub := range order {
		accepting := false
		for idx := range sub.set {
			if fa.States[idx].Terminal {
				accepting = true
				break
			}
		}
		st := newState(i, sub.key, accepting)
		st.Label = sub.set.Copy()
		out.States = append(out.States, st)
	}
	for _, sub := range order {
		fromIdx := indexOf[sub.key]
		for a, toKey := range transitionsByKey[sub.key] {
			out.AddTransition(fromIdx, a, indexOf[toKey])
		}
	}
	out.Initial = 0

	if !isTrim {
		out.addTrapIfIncomplete(alphabet)
	}

	return out
}

// addTrapIfIncomplete adds an absorbing non-accepting state and wires every
// missing (state, symbol) transition to it, totaling the transition
// function. No-op if the automaton is already total.
func (fa *FA) addTrapIfIncomplete(alphabet symbol.Alphabet) {
	missing := false
	for _, s := range fa.States {
		for _, a := range alphabet {
			if s.transitions[a].Empty() {
				missing = true
			}
		}
	}
	if !missing {
		return
	}
	trap := fa.AddState("trap", false)
	for _, a := range alphabet {
		fa.AddTransition(trap, a, trap)
	}
	for i := range fa.States {
		if i == trap {
			continue
		}
		for _, a := range alphabet {
			if fa.States[i].transitions[a].Empty() {
				fa.AddTransition(i, a, trap)
			}
		}
	}
}

// AddTrapState returns a copy of fa with an absorbing non-accepting trap
// state added and every missing transition wired to it. No-op (returns an
// equivalent copy) if fa is already total.
func (fa *FA) AddTrapState() *FA {
	out := fa.Copy()
	out.addTrapIfIncomplete(out.Alphabet())
	return out
}

// RemoveTrapState implements the inverse of AddTrapState: it deletes any
// non-accepting, non-initial state whose every
// outgoing transition (on every alphabet symbol) targets itself, together
// with the transitions into it. States left unreachable are kept. This is a
// no-op if no such state exists.
func (fa *FA) RemoveTrapState() *FA {
	alphabet := fa.Alphabet()
	var traps []int
	for _, s := range fa.States {
		if s.Terminal || s.Index == fa.Initial {
			continue
		}
		if fa.isSelfLoopTrap(s, alphabet) {
			traps = append(traps, s.Index)
		}
	}
	if len(traps) == 0 {
		return fa.Copy()
	}
	trapSet := util.NewIntSet(traps...)

	out := WithCache(fa.cache)
	remap := map[int]int{}
	for _, s := range fa.States {
		if trapSet.Has(s.Index) {
			continue
		}
		remap[s.Index] = len(out.States)
		out.States = append(out.States, State{
			Index:       len(out.States),
			ID:          s.ID,
			Terminal:    s.Terminal,
			Label:       s.Label.Copy(),
			transitions: map[symbol.Symbol]util.IntSet{},
		})
	}
	for _, s := range fa.States {
		if trapSet.Has(s.Index) {
			continue
		}
		newFrom := remap[s.Index]
		for a, targets := range s.transitions {
			for t := range targets {
				if trapSet.Has(t) {
					continue
				}
				out.AddTransition(newFrom, a, remap[t])
			}
		}
	}
	out.Initial = remap[fa.Initial]
	return out
}

func (fa *FA) isSelfLoopTrap(s State, alphabet symbol.Alphabet) bool {
	for _, a := range alphabet {
		targets := s.transitions[a]
		if targets.Len() != 1 || !targets.Has(s.Index) {
			return false
		}
	}
	return len(alphabet) > 0
}

// RemoveEps removes epsilon transitions. For each state s,
// the new transitions on symbol a are the union over t in closure(s) of
// closure(delta(t,a)); s is accepting in the new machine iff closure(s)
// contains an original accepting state.
func (fa *FA) RemoveEps() *FA {
	alphabet := fa.Alphabet()
	out := WithCache(fa.cache)
	for _, s := range fa.States {
		closure := fa.EpsilonClosure(s.Index)
		accepting := closure.Any(func(i int) bool { return fa.States[i].Terminal })
		st := newState(s.Index, s.ID, accepting)
		st.Label = s.Label.Copy()
		out.States = append(out.States, st)
	}
	for _, s := range fa.States {
		closure := fa.EpsilonClosure(s.Index)
		for _, a := range alphabet {
			targetClosure := util.NewIntSet()
			for t := range closure {
				targetClosure.AddAll(fa.epsilonClosure(fa.States[t].transitions[a]))
			}
			for t := range targetClosure {
				out.AddTransition(s.Index, a, t)
			}
		}
	}
	out.Initial = fa.Initial
	return out.RemoveUnreachable()
}
