package automaton_test

import (
	"testing"

	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/regex"
	"github.com/desitas1701/chipollino/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(s string) []symbol.Symbol {
	out := make([]symbol.Symbol, len(s))
	for i, c := range s {
		out[i] = symbol.New(string(c))
	}
	return out
}

func nfaOf(t *testing.T, src string) *automaton.FA {
	t.Helper()
	r, err := regex.Parse(src)
	require.NoError(t, err)
	return regex.Thompson(r)
}

// Determinize is idempotent: determinizing an already-deterministic
// automaton returns an equal automaton.
func Test_Determinize_idempotent(t *testing.T) {
	testCases := []string{"a", "a|b", "(a|b)*abb", "a*b"}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			nfa := nfaOf(t, src)
			once := nfa.Determinize(true)
			twice := once.Determinize(true)
			assert.True(t, once.Equal(twice))
		})
	}
}

// Two DFAs are equal after minimization iff their languages are equal.
func Test_Minimize_canonicalizesEquivalentAutomata(t *testing.T) {
	a := nfaOf(t, "a|a")
	b := nfaOf(t, "a")

	minA := a.Minimize(true)
	minB := b.Minimize(true)

	assert.True(t, minA.Equal(minB))
	assert.Equal(t, minA.NumStates(), minB.NumStates())
}

func Test_Minimize_distinguishesUnequalLanguages(t *testing.T) {
	a := nfaOf(t, "a")
	b := nfaOf(t, "b")

	assert.False(t, a.Minimize(true).Equal(b.Minimize(true)))
}

// Removing epsilon transitions does not change the accepted language.
func Test_RemoveEps_preservesLanguage(t *testing.T) {
	nfa := nfaOf(t, "a*b|c")
	require.True(t, nfa.HasEpsilonTransitions())

	noEps := nfa.RemoveEps()
	assert.False(t, noEps.HasEpsilonTransitions())
	assert.True(t, nfa.Equivalent(noEps))
}

// A word is accepted by Intersection(a, b) iff it is accepted by both a
// and b.
func Test_Intersection_law(t *testing.T) {
	a := nfaOf(t, "(a|b)*")
	b := nfaOf(t, "a(a|b)*")
	inter := automaton.Intersection(a, b)

	testCases := []string{"a", "ab", "aab", "b", "bb", ""}
	for _, w := range testCases {
		want := a.Accepts(word(w)) && b.Accepts(word(w))
		assert.Equal(t, want, inter.Accepts(word(w)), "word %q", w)
	}
}

func Test_Union_and_Difference_laws(t *testing.T) {
	a := nfaOf(t, "a*")
	b := nfaOf(t, "b*")
	un := automaton.Union(a, b)
	diff := automaton.Difference(a, b)

	testCases := []string{"", "a", "aa", "b", "bb", "ab"}
	for _, w := range testCases {
		assert.Equal(t, a.Accepts(word(w)) || b.Accepts(word(w)), un.Accepts(word(w)), "union word %q", w)
		assert.Equal(t, a.Accepts(word(w)) && !b.Accepts(word(w)), diff.Accepts(word(w)), "difference word %q", w)
	}
}

// Bisimilarity implies language equivalence, but the converse need not
// hold. (a|a)* and a* are equivalent (same language) but not bisimilar: the
// Thompson construction of (a|a)* keeps two separate 'a' positions that are
// not forced into the same class by plain acceptance-and-successor-class
// refinement on the raw NFAs, while their minimized DFAs coincide.
func Test_Bisimilar_strongerThanEquivalent(t *testing.T) {
	dup := nfaOf(t, "(a|a)*")
	single := nfaOf(t, "a*")

	assert.True(t, dup.Equivalent(single), "(a|a)* and a* must accept the same language")
	assert.False(t, dup.Bisimilar(single), "raw NFAs for (a|a)* and a* must not be bisimilar (witness pair)")
}

func Test_Bisimilar_holdsForIdenticalAutomata(t *testing.T) {
	a := nfaOf(t, "ab|ac")
	assert.True(t, a.Bisimilar(a))
}

// Annote/DeAnnote round-trips back to an equivalent automaton.
func Test_Annote_DeAnnote_roundTrip(t *testing.T) {
	nfa := nfaOf(t, "(a|b)*a")
	annotated := nfa.Annotate()
	back := annotated.Deannotate()
	assert.True(t, nfa.Equivalent(back))
}

// Ambiguity classification distinguishes (a|a)* (ambiguous: two parallel
// 'a' positions make every 'a'-run reachable more than one way) from a*
// (unambiguous).
func Test_Ambiguity_classification(t *testing.T) {
	unambiguous := nfaOf(t, "a*")
	assert.Equal(t, automaton.Unambiguous, unambiguous.Ambiguity())

	ambiguous := nfaOf(t, "(a|a)*")
	assert.NotEqual(t, automaton.Unambiguous, ambiguous.Ambiguity())
}

func Test_Subset(t *testing.T) {
	small := nfaOf(t, "ab")
	big := nfaOf(t, "a(b|c)")
	assert.True(t, small.Subset(big))
	assert.False(t, big.Subset(small))
}

func Test_Complement_flipsAcceptance(t *testing.T) {
	a := nfaOf(t, "a").Determinize(true)
	comp := a.Complement()

	assert.True(t, a.Accepts(word("a")))
	assert.False(t, comp.Accepts(word("a")))
	assert.True(t, comp.Accepts(word("")))
	assert.True(t, comp.Accepts(word("aa")))
}

func Test_Reverse_reversesAcceptedWords(t *testing.T) {
	a := nfaOf(t, "ab")
	rev := a.Reverse()
	assert.True(t, rev.Accepts(word("ba")))
	assert.False(t, rev.Accepts(word("ab")))
}

func Test_IsOneUnambiguous(t *testing.T) {
	assert.True(t, nfaOf(t, "a*b").IsOneUnambiguous())
}
