package regex

import (
	"fmt"

	"github.com/desitas1701/chipollino/internal/automaton"
)

// Glushkov builds the position automaton: |states| = |positions|+1, with
// state 0 the start state and one state per linearized symbol position. The
// start transitions on a leaf's symbol (with its linearization tag stripped)
// iff the leaf's tag is in First(tree); a position p transitions to q on q's
// untagged symbol iff (p,q) is in Pairs(tree); a position is accepting iff its tag is
// in Last(tree) (plus the start state itself, if the empty word is in the
// language).
func Glushkov(r *Regex) *automaton.FA {
	lin := r.Linearize()
	leaves := lin.Tree.Leaves()

	fa := automaton.WithCache(r.cache)
	fa.AddState("q0", lin.Tree.ContainsEps())

	stateOf := make(map[int]int, len(leaves))
	for _, leaf := range leaves {
		idx := fa.AddState(fmt.Sprintf("p%d", leaf.LinTag), false)
		stateOf[leaf.LinTag] = idx
	}

	leafByTag := make(map[int]int, len(leaves))
	for i, leaf := range leaves {
		leafByTag[leaf.LinTag] = i
	}

	last := lin.Tree.Last()
	for tag := range last {
		fa.States[stateOf[tag]].Terminal = true
	}

	first := lin.Tree.First()
	for tag := range first {
		leaf := leaves[leafByTag[tag]]
		fa.AddTransition(0, leaf.Sym.Delinearized(), stateOf[tag])
	}

	for _, p := range lin.Tree.Pairs() {
		toLeaf := leaves[leafByTag[p.To]]
		fa.AddTransition(stateOf[p.From], toLeaf.Sym.Delinearized(), stateOf[p.To])
	}

	fa.Initial = 0
	return fa
}

// IlieYu builds the Ilie-Yu quotient of the position automaton: states of
// Glushkov(r) that are bisimilar (same acceptance, same symbol-indexed
// successor classes) are merged, removing Glushkov's structurally redundant
// positions while preserving the language.
func IlieYu(r *Regex) *automaton.FA {
	return automaton.QuotientBisimilar(Glushkov(r))
}
