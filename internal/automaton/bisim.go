package automaton

import (
	"sort"

	"github.com/desitas1701/chipollino/internal/symbol"
)

// jointClasses runs one right-linear-grammar class-refinement pass over the
// combined state space of a and b: both automata are encoded as
// right-linear grammars keyed on state; an initial class assignment places
// every state in one class; classes are refined by comparing, for each
// state, the set of (symbol, class) right-hand sides expressed in terms of
// the current class numbers, plus whether the state is accepting. Iterates
// to a fixpoint.
func jointClasses(a, b *FA) (classA []int, classB []int) {
	na, nb := a.NumStates(), b.NumStates()
	classA = make([]int, na)
	classB = make([]int, nb)

	// initial partition: accepting vs non-accepting
	for i := 0; i < na; i++ {
		classA[i] = boolClass(a.States[i].Terminal)
	}
	for i := 0; i < nb; i++ {
		classB[i] = boolClass(b.States[i].Terminal)
	}

	for {
		sigA := make([]string, na)
		sigB := make([]string, nb)
		for i := 0; i < na; i++ {
			sigA[i] = signature(a.States[i], classA)
		}
		for i := 0; i < nb; i++ {
			sigB[i] = signature(b.States[i], classB)
		}

		sigToClass := map[string]int{}
		newClassA := make([]int, na)
		newClassB := make([]int, nb)
		nextClass := 0
		assign := func(sig string) int {
			c, ok := sigToClass[sig]
			if !ok {
				c = nextClass
				sigToClass[sig] = c
				nextClass++
			}
			return c
		}
		for i := 0; i < na; i++ {
			newClassA[i] = assign(sigA[i])
		}
		for i := 0; i < nb; i++ {
			newClassB[i] = assign(sigB[i])
		}

		if intsEqual(newClassA, classA) && intsEqual(newClassB, classB) {
			return newClassA, newClassB
		}
		classA, classB = newClassA, newClassB
	}
}

// signature renders a state's right-hand side as a sorted list of
// "symbol->class" right-linear productions plus an accept marker, using the
// CURRENT class numbering of s's own automaton (class[t] for a target index
// t in the same state space as s). jointClasses calls this once per side
// with that side's class array, so a-side and b-side signatures are
// comparable: both are built from the same shared sigToClass numbering.
func signature(s State, class []int) string {
	type prod struct {
		sym   string
		class int
	}
	var prods []prod
	for a, targets := range s.transitions {
		for t := range targets {
			c := -1
			if t < len(class) {
				c = class[t]
			}
			prods = append(prods, prod{sym: symKey(a), class: c})
		}
	}
	sort.Slice(prods, func(i, j int) bool {
		if prods[i].sym != prods[j].sym {
			return prods[i].sym < prods[j].sym
		}
		return prods[i].class < prods[j].class
	})
	out := ""
	if s.Terminal {
		out += "!"
	}
	for _, p := range prods {
		out += p.sym + ">" + itoa(p.class) + ";"
	}
	return out
}

func symKey(a symbol.Symbol) string {
	if a.IsEpsilon() {
		return "ε"
	}
	return a.String()
}

func boolClass(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Bisimilar reports whether fa and other are bisimilar: joint class
// refinement over both state sets converges with their initial states in
// the same class.
func (fa *FA) Bisimilar(other *FA) bool {
	classA, classB := jointClasses(fa, other)
	return classA[fa.Initial] == classB[other.Initial]
}

// Equivalent reports language equivalence: equal after minimization.
func (fa *FA) Equivalent(other *FA) bool {
	return fa.Minimize(true).Equal(other.Minimize(true))
}

// Equal checks a stronger biconditional than Equivalent: class counts on
// each side must coincide and forward and reverse bisimulations must both
// agree pointwise.
func (fa *FA) Equal(other *FA) bool {
	classA, classB := jointClasses(fa, other)
	numClassesA := countDistinct(classA)
	numClassesB := countDistinct(classB)
	if numClassesA != numClassesB {
		return false
	}
	if classA[fa.Initial] != classB[other.Initial] {
		return false
	}
	ra, rb := fa.Reverse(), other.Reverse()
	revA, revB := jointClasses(ra, rb)
	return countDistinct(revA) == countDistinct(revB) && revA[ra.Initial] == revB[rb.Initial]
}

func countDistinct(cs []int) int {
	seen := map[int]bool{}
	for _, c := range cs {
		seen[c] = true
	}
	return len(seen)
}

// QuotientBisimilar merges states of fa that are bisimilar to one another
// (same acceptance, same symbol-indexed successor classes under joint
// refinement) into a single representative, preserving fa's language. Used
// by the Ilie-Yu construction to collapse Glushkov's structurally redundant
// positions.
func QuotientBisimilar(fa *FA) *FA {
	n := fa.NumStates()
	class := make([]int, n)
	for i := 0; i < n; i++ {
		class[i] = boolClass(fa.States[i].Terminal)
	}
	for {
		sig := make([]string, n)
		for i := 0; i < n; i++ {
			sig[i] = signature(fa.States[i], class)
		}
		sigToClass := map[string]int{}
		newClass := make([]int, n)
		next := 0
		for i := 0; i < n; i++ {
			c, ok := sigToClass[sig[i]]
			if !ok {
				c = next
				sigToClass[sig[i]] = c
				next++
			}
			newClass[i] = c
		}
		if intsEqual(newClass, class) {
			class = newClass
			break
		}
		class = newClass
	}

	numClasses := countDistinct(class)
	rep := make([]int, numClasses)
	for i := range rep {
		rep[i] = -1
	}
	for i, c := range class {
		if rep[c] == -1 {
			rep[c] = i
		}
	}

	out := WithCache(fa.cache)
	for c := 0; c < numClasses; c++ {
		out.AddState(fa.States[rep[c]].ID, fa.States[rep[c]].Terminal)
	}
	for i, s := range fa.States {
		for a, targets := range s.transitions {
			for t := range targets {
				out.AddTransition(class[i], a, class[t])
			}
		}
	}
	out.Initial = class[fa.Initial]
	return out
}
