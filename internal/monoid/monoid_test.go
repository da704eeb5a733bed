package monoid

import (
	"testing"

	"github.com/desitas1701/chipollino/internal/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dfaOf(t *testing.T, src string) *regex.Regex {
	t.Helper()
	r, err := regex.Parse(src)
	require.NoError(t, err)
	return r
}

// The number of classes in a DFA's syntactic monoid equals its
// Myhill-Nerode class count, which equals the state count of its minimal
// DFA.
func Test_Build_classCountMatchesMinimalDFAStateCount(t *testing.T) {
	testCases := []string{"a|a", "(a|b)*abb", "a*b"}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			r := dfaOf(t, src)
			nfa := regex.Thompson(r)
			dfa := nfa.Determinize(true)
			min := dfa.Minimize(true)

			m, err := Build(min)
			require.NoError(t, err)
			assert.Equal(t, min.NumStates(), m.NumClasses())
			assert.True(t, m.Minimal())
		})
	}
}

func Test_Build_reportsNonMinimalDFA(t *testing.T) {
	r := dfaOf(t, "a|a")
	nfa := regex.Thompson(r)
	dfa := nfa.Determinize(true) // not yet minimized, may have redundant states

	m, err := Build(dfa)
	require.NoError(t, err)
	assert.Equal(t, m.NumClasses() == dfa.NumStates(), m.Minimal())
}

func Test_Build_staysWithinMaxClasses(t *testing.T) {
	r := dfaOf(t, "a*")
	nfa := regex.Thompson(r)
	dfa := nfa.Determinize(true)

	// MaxClasses is large enough that ordinary automata in this suite
	// never trip it; this only exercises the normal, successful path.
	m, err := Build(dfa)
	require.NoError(t, err)
	assert.LessOrEqual(t, m.NumClasses(), MaxClasses)
}

func Test_Table_dimensions(t *testing.T) {
	r := dfaOf(t, "ab")
	nfa := regex.Thompson(r)
	dfa := nfa.Determinize(true)

	m, err := Build(dfa)
	require.NoError(t, err)
	table := m.Table()
	require.Len(t, table, m.NumClasses())
	for _, row := range table {
		assert.Len(t, row, dfa.NumStates())
	}
}
