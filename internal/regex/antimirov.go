package regex

import (
	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/symbol"
)

// Antimirov builds the partial-derivative automaton: each state is a regex
// term, starting from r's own tree; the transition on symbol a from a term
// t is the SET of
// Antimirov partial derivatives of t w.r.t. a (as opposed to Brzozowski's
// single simplified derivative), discovered by BFS and deduplicated on
// printed form.
func Antimirov(r *Regex) *automaton.FA {
	alphabet := r.Alphabet()
	fa := automaton.WithCache(r.cache)

	indexOf := map[string]int{}
	order := []*algexpr.Node{}

	intern := func(t *algexpr.Node) int {
		k := algexpr.Print(t)
		if idx, ok := indexOf[k]; ok {
			return idx
		}
		idx := fa.AddState(k, t.ContainsEps())
		indexOf[k] = idx
		order = append(order, t)
		return idx
	}
	intern(r.Tree)

	for i := 0; i < len(order); i++ {
		cur := order[i]
		curIdx := indexOf[algexpr.Print(cur)]
		for _, a := range alphabet {
			for _, t := range partialDerivative(cur, a) {
				fa.AddTransition(curIdx, a, intern(t))
			}
		}
	}
	fa.Initial = 0
	return fa
}

// partialDerivative returns Antimirov's set of partial derivatives of n
// w.r.t. a, deduplicated by printed form within this call.
func partialDerivative(n *algexpr.Node, a symbol.Symbol) []*algexpr.Node {
	var terms []*algexpr.Node
	seen := map[string]bool{}
	add := func(t *algexpr.Node) {
		if t == nil {
			return
		}
		k := algexpr.Print(t)
		if seen[k] {
			return
		}
		seen[k] = true
		terms = append(terms, t)
	}

	var pd func(n *algexpr.Node) []*algexpr.Node
	pd = func(n *algexpr.Node) []*algexpr.Node {
		switch n.Kind {
		case algexpr.Eps, algexpr.EmptySet:
			return nil
		case algexpr.Symb:
			bare := n.Sym.Delinearized().Deannotated()
			target := a.Delinearized().Deannotated()
			if bare == target {
				return []*algexpr.Node{algexpr.NewEps()}
			}
			return nil
		case algexpr.Alt:
			return append(pd(n.Left), pd(n.Right)...)
		case algexpr.Conc:
			var out []*algexpr.Node
			for _, t := range pd(n.Left) {
				out = append(out, algexpr.NewConc(t, n.Right))
			}
			if n.Left.ContainsEps() {
				out = append(out, pd(n.Right)...)
			}
			return out
		case algexpr.Star:
			var out []*algexpr.Node
			for _, t := range pd(n.Left) {
				out = append(out, algexpr.NewConc(t, n))
			}
			return out
		case algexpr.Negation, algexpr.MemoryWriter:
			return pd(n.Left)
		default:
			return nil
		}
	}
	for _, t := range pd(n) {
		add(t)
	}
	return terms
}
