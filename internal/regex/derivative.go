package regex

import (
	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/symbol"
)

// Derivative computes the Brzozowski symbol-derivative of tree with respect
// to a:
//
//	D_a(Eps)      = ∅
//	D_a(b)        = Eps  if a == b, else ∅
//	D_a(r|s)      = D_a(r) | D_a(s)
//	D_a(r·s)      = D_a(r)·s | D_a(s)   (second disjunct only if r nullable)
//	D_a(r*)       = D_a(r)·r*
//
// The result is simplified (∅ elimination, ε·r→r, r·ε→r, alternation
// idempotence) before being returned.
func Derivative(tree *algexpr.Node, a symbol.Symbol) *algexpr.Node {
	return simplify(derive(tree, a))
}

// PrefixDerivative iterates Derivative over every symbol of word in order,
// simplifying after each step; it is the derivative of tree w.r.t. the
// whole prefix word.
func PrefixDerivative(tree *algexpr.Node, word []symbol.Symbol) *algexpr.Node {
	cur := tree
	for _, a := range word {
		cur = Derivative(cur, a)
	}
	return cur
}

func derive(n *algexpr.Node, a symbol.Symbol) *algexpr.Node {
	if n == nil {
		return algexpr.NewEmptySet()
	}
	switch n.Kind {
	case algexpr.Eps:
		return algexpr.NewEmptySet()
	case algexpr.Symb:
		bare := n.Sym.Delinearized().Deannotated()
		target := a.Delinearized().Deannotated()
		if bare == target {
			return algexpr.NewEps()
		}
		return algexpr.NewEmptySet()
	case algexpr.Alt:
		return algexpr.NewAlt(derive(n.Left, a), derive(n.Right, a))
	case algexpr.Conc:
		left := algexpr.NewConc(derive(n.Left, a), n.Right)
		if n.Left.ContainsEps() {
			return algexpr.NewAlt(left, derive(n.Right, a))
		}
		return left
	case algexpr.Star:
		return algexpr.NewConc(derive(n.Left, a), n)
	case algexpr.Negation:
		return algexpr.NewNegation(derive(n.Left, a))
	case algexpr.MemoryWriter:
		return algexpr.NewMemoryWriter(n.Cell, derive(n.Left, a))
	case algexpr.Ref, algexpr.EmptySet:
		return algexpr.NewEmptySet()
	default:
		return algexpr.NewEmptySet()
	}
}

// isEmptySet reports whether n denotes ∅ syntactically, after the
// recursive simplifications below have already run on its children.
func isEmptySet(n *algexpr.Node) bool {
	return n != nil && n.Kind == algexpr.EmptySet
}

func isEps(n *algexpr.Node) bool {
	return n != nil && n.Kind == algexpr.Eps
}

// simplify applies the rewrite rules ∅|r→r, r|∅→r, ∅·r→∅, r·∅→∅, ε·r→r,
// r·ε→r, ∅*→ε bottom-up, so a derivative computation never leaves a
// redundant ∅ or ε subterm in its result.
func simplify(n *algexpr.Node) *algexpr.Node {
	if n == nil {
		return n
	}
	switch n.Kind {
	case algexpr.Alt:
		l := simplify(n.Left)
		r := simplify(n.Right)
		if isEmptySet(l) {
			return r
		}
		if isEmptySet(r) {
			return l
		}
		if algexpr.Print(l) == algexpr.Print(r) {
			return l
		}
		return algexpr.NewAlt(l, r)
	case algexpr.Conc:
		l := simplify(n.Left)
		r := simplify(n.Right)
		if isEmptySet(l) || isEmptySet(r) {
			return algexpr.NewEmptySet()
		}
		if isEps(l) {
			return r
		}
		if isEps(r) {
			return l
		}
		return algexpr.NewConc(l, r)
	case algexpr.Star:
		l := simplify(n.Left)
		if isEmptySet(l) || isEps(l) {
			return algexpr.NewEps()
		}
		return algexpr.NewStar(l)
	case algexpr.Negation:
		return algexpr.NewNegation(simplify(n.Left))
	case algexpr.MemoryWriter:
		return algexpr.NewMemoryWriter(n.Cell, simplify(n.Left))
	default:
		return n
	}
}
