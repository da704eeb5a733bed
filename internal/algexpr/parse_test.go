package algexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_precedence(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want Kind
	}{
		{"alternation outermost", "a|bc", Alt},
		{"concatenation outermost", "ab", Conc},
		{"star outermost", "a*", Star},
		{"single symbol", "a", Symb},
		{"grouped alt under star", "(a|b)*", Star},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Parse(tc.src, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Kind)
		})
	}
}

func Test_Parse_roundTripsThroughPrint(t *testing.T) {
	testCases := []string{"a", "a|b", "ab", "a*", "(a|b)*abb"}
	for _, src := range testCases {
		n, err := Parse(src, false)
		require.NoError(t, err)
		assert.Equal(t, src, Print(n))
	}
}

func Test_Parse_rejectsUnterminated(t *testing.T) {
	_, err := Parse("(a|b", false)
	assert.Error(t, err)
}

func Test_ContainsEps(t *testing.T) {
	withEps, err := Parse("a*", false)
	require.NoError(t, err)
	assert.True(t, withEps.ContainsEps())

	withoutEps, err := Parse("a", false)
	require.NoError(t, err)
	assert.False(t, withoutEps.ContainsEps())
}

func Test_Alphabet(t *testing.T) {
	n, err := Parse("a|bc", false)
	require.NoError(t, err)
	alpha := n.Alphabet()
	assert.Len(t, alpha, 3)
}

func Test_Copy_isIndependent(t *testing.T) {
	n, err := Parse("ab", false)
	require.NoError(t, err)
	cp := n.Copy()
	assert.Equal(t, Print(n), Print(cp))
	assert.NotSame(t, n, cp)
}
