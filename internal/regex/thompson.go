package regex

import (
	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/symbol"
)

// thompsonFragment is a sub-NFA with exactly one start and one accept state,
// built up index-based rather than via named-state rename maps, so fragments
// append directly into one shared FA without a separate join step.
type thompsonFragment struct {
	start, accept int
}

// Thompson builds the McNaughton-Yamada-Thompson NFA for r: every
// subexpression contributes a fragment with one accepting state,
// wired together with new epsilon-linked start/accept pairs at Alt and Star,
// and direct epsilon-chaining at Conc.
func Thompson(r *Regex) *automaton.FA {
	fa := automaton.WithCache(r.cache)
	frag := thompsonBuild(r.Tree, fa)
	fa.Initial = frag.start
	return fa
}

func thompsonBuild(n *algexpr.Node, fa *automaton.FA) thompsonFragment {
	switch n.Kind {
	case algexpr.Eps:
		s := fa.AddState("", false)
		a := fa.AddState("", true)
		fa.AddTransition(s, symbol.Epsilon, a)
		return thompsonFragment{s, a}

	case algexpr.Symb:
		s := fa.AddState("", false)
		a := fa.AddState("", true)
		fa.AddTransition(s, n.Sym, a)
		return thompsonFragment{s, a}

	case algexpr.Alt:
		l := thompsonBuild(n.Left, fa)
		r := thompsonBuild(n.Right, fa)
		s := fa.AddState("", false)
		a := fa.AddState("", true)
		fa.AddTransition(s, symbol.Epsilon, l.start)
		fa.AddTransition(s, symbol.Epsilon, r.start)
		fa.AddTransition(l.accept, symbol.Epsilon, a)
		fa.AddTransition(r.accept, symbol.Epsilon, a)
		fa.States[l.accept].Terminal = false
		fa.States[r.accept].Terminal = false
		return thompsonFragment{s, a}

	case algexpr.Conc:
		l := thompsonBuild(n.Left, fa)
		r := thompsonBuild(n.Right, fa)
		fa.AddTransition(l.accept, symbol.Epsilon, r.start)
		fa.States[l.accept].Terminal = false
		return thompsonFragment{l.start, r.accept}

	case algexpr.Star:
		l := thompsonBuild(n.Left, fa)
		s := fa.AddState("", false)
		a := fa.AddState("", true)
		fa.AddTransition(s, symbol.Epsilon, a)
		fa.AddTransition(s, symbol.Epsilon, l.start)
		fa.AddTransition(l.accept, symbol.Epsilon, a)
		fa.AddTransition(l.accept, symbol.Epsilon, l.start)
		fa.States[l.accept].Terminal = false
		return thompsonFragment{s, a}

	case algexpr.Negation, algexpr.MemoryWriter:
		return thompsonBuild(n.Left, fa)

	default:
		s := fa.AddState("", false)
		return thompsonFragment{s, s}
	}
}
