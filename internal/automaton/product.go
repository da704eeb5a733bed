package automaton

import (
	"github.com/desitas1701/chipollino/internal/lang"
	"github.com/desitas1701/chipollino/internal/symbol"
	"github.com/desitas1701/chipollino/internal/util"
)

// productOp selects the acceptance rule for a product construction.
type productOp int

const (
	opIntersect productOp = iota
	opUnion
	opDifference
)

// product builds the (i,j)-indexed product of the two determinized operands
// and determinizes the result. A move missing on one side goes to an implicit
// non-accepting dead component (index -1), so the pair construction behaves
// as over total automata. Acceptance:
// intersection = AND, union = OR, difference = AND-NOT.
func product(a, b *FA, op productOp) *FA {
	da := a.Determinize(false)
	db := b.Determinize(false)
	alphabet := da.Alphabet().Union(db.Alphabet())

	out := New(alphabet)
	type pair struct{ i, j int }
	indexOf := map[pair]int{}
	var order []pair

	start := pair{da.Initial, db.Initial}
	indexOf[start] = 0
	order = append(order, start)

	for q := 0; q < len(order); q++ {
		p := order[q]
		accepting := accept(op, p.i >= 0 && da.States[p.i].Terminal, p.j >= 0 && db.States[p.j].Terminal)
		out.AddState(pairID(p.i, p.j), accepting)
		for _, sym := range alphabet {
			ti := soleTargetOrTrap(da, p.i, sym)
			tj := soleTargetOrTrap(db, p.j, sym)
			if ti < 0 && tj < 0 {
				continue
			}
			next := pair{ti, tj}
			idx, ok := indexOf[next]
			if !ok {
				idx = len(order)
				indexOf[next] = idx
				order = append(order, next)
			}
			out.AddTransition(q, sym, idx)
		}
	}
	out.Initial = 0
	return out.Determinize(true)
}

func soleTargetOrTrap(fa *FA, state int, a symbol.Symbol) int {
	if state < 0 {
		return -1
	}
	return soleTarget(fa.States[state], a)
}

func pairID(i, j int) string {
	return itoa(i) + "," + itoa(j)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func accept(op productOp, aAccept, bAccept bool) bool {
	switch op {
	case opIntersect:
		return aAccept && bAccept
	case opUnion:
		return aAccept || bAccept
	case opDifference:
		return aAccept && !bAccept
	default:
		return false
	}
}

// Intersection returns the automaton recognizing L(a) ∩ L(b).
func Intersection(a, b *FA) *FA {
	return product(a, b, opIntersect)
}

// Union returns the automaton recognizing L(a) ∪ L(b).
func Union(a, b *FA) *FA {
	return product(a, b, opUnion)
}

// Difference returns the automaton recognizing L(a) \ L(b).
func Difference(a, b *FA) *FA {
	return product(a, b, opDifference)
}

// Complement is defined only on a DFA; if the input is non-total, the trap
// is added first. It flips the accepting flag on every state.
func (fa *FA) Complement() *FA {
	total := fa
	if !fa.IsDeterministic() {
		total = fa.Determinize(false)
	} else {
		total = fa.AddTrapState()
	}
	out := WithCache(lang.New(total.Alphabet()))
	for _, s := range total.States {
		out.States = append(out.States, State{
			Index:       s.Index,
			ID:          s.ID,
			Terminal:    !s.Terminal,
			Label:       s.Label.Copy(),
			transitions: cloneTransitions(s.transitions),
		})
	}
	out.Initial = total.Initial
	return out
}

func cloneTransitions(t map[symbol.Symbol]util.IntSet) map[symbol.Symbol]util.IntSet {
	out := make(map[symbol.Symbol]util.IntSet, len(t))
	for a, set := range t {
		out[a] = set.Copy()
	}
	return out
}

// Reverse adds a new initial state, epsilon-links it to every previously
// accepting state, flips every transition's direction, and marks the
// original initial state as the only accepting state.
func (fa *FA) Reverse() *FA {
	out := WithCache(lang.New(fa.Alphabet()))
	for _, s := range fa.States {
		out.AddState(s.ID, s.Index == fa.Initial)
	}
	for _, s := range fa.States {
		for a, targets := range s.transitions {
			for t := range targets {
				out.AddTransition(t, a, s.Index)
			}
		}
	}
	newInit := out.AddState("start", false)
	for _, s := range fa.States {
		if s.Terminal {
			out.AddTransition(newInit, symbol.Epsilon, s.Index)
		}
	}
	out.Initial = newInit
	return out
}

// Subset reports whether L(fa) is a subset of L(other): A ⊆ B iff
// A ∩ B == A under equivalence.
func (fa *FA) Subset(other *FA) bool {
	return Intersection(fa, other).Equivalent(fa)
}
