package regex

import (
	"testing"

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

func Test_Parse_roundTripsThroughPrint(t *testing.T) {
	testCases := []string{"a", "a|b", "ab", "a*", "(a|b)*abb", "", "a*b"}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			r, err := Parse(src)
			require.NoError(t, err)
			assert.Equal(t, src, r.String())
		})
	}
}

// For any Regex r, Arden(Thompson(r)) is language-equivalent to r.
func Test_Arden_Thompson_roundTrip(t *testing.T) {
	testCases := []string{"a", "a|b", "ab", "a*", "(a|b)*abb", "a*b"}
	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			r, err := Parse(src)
			require.NoError(t, err)

			nfa := Thompson(r)
			back := FromAutomaton(nfa)
			backNFA := Thompson(back)

			assert.True(t, nfa.Equivalent(backNFA), "Arden(Thompson(%s)) = %s is not equivalent to the original", src, back.String())
		})
	}
}

// Antimirov's partial-derivative automaton for a*b accepts exactly the
// words in a*b.
func Test_Antimirov_membership(t *testing.T) {
	r, err := Parse("a*b")
	require.NoError(t, err)
	fa := Antimirov(r)

	testCases := []struct {
		word   string
		accept bool
	}{
		{"b", true},
		{"ab", true},
		{"aab", true},
		{"ba", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.accept, fa.Accepts(word(tc.word)), "word %q", tc.word)
	}
}

// PumpLength (a|b)* = 1; PumpLength a*b = 2.
func Test_PumpLength_values(t *testing.T) {
	r1, err := Parse("(a|b)*")
	require.NoError(t, err)
	assert.Equal(t, 1, PumpLength(r1))

	r2, err := Parse("a*b")
	require.NoError(t, err)
	assert.Equal(t, 2, PumpLength(r2))
}

func Test_Glushkov_and_IlieYu_acceptSameLanguageAsThompson(t *testing.T) {
	r, err := Parse("(a|b)*abb")
	require.NoError(t, err)

	th := Thompson(r)
	gl := Glushkov(r)
	iy := IlieYu(r)

	assert.True(t, th.Equivalent(gl))
	assert.True(t, th.Equivalent(iy))
}

func Test_Linearize_Delinearize_preservesLanguage(t *testing.T) {
	r, err := Parse("a|a")
	require.NoError(t, err)

	lin := r.Linearize()
	delin := lin.Delinearize()

	assert.True(t, Thompson(r).Equivalent(Thompson(delin)))
}
