package tester

import (
	"testing"

	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/regex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Validate_rejectsAlternation(t *testing.T) {
	withAlt, err := algexpr.Parse("a|b", false)
	require.NoError(t, err)
	assert.False(t, Validate(withAlt))

	starOnly, err := algexpr.Parse("a*b*", false)
	require.NoError(t, err)
	assert.True(t, Validate(starOnly))
}

func Test_GenerateWords_unrollsStarExactlyN(t *testing.T) {
	tree, err := algexpr.Parse("a*", false)
	require.NoError(t, err)

	words := GenerateWords(tree, 2)
	var found bool
	for _, w := range words {
		if len(w) == 2 {
			found = true
		}
	}
	assert.True(t, found, "unrolling a* by n=2 must include the two-symbol word")
}

func Test_Run_membershipMatchesAutomaton(t *testing.T) {
	template, err := algexpr.Parse("a*b", false)
	require.NoError(t, err)

	parsed, err := regex.Parse("a*b")
	require.NoError(t, err)
	fa := regex.Thompson(parsed)

	report := Run(fa, template, 3)
	assert.Equal(t, len(report.Results), report.Accepted+report.Rejected)
	for _, res := range report.Results {
		assert.Equal(t, fa.Accepts(res.Word), res.Member)
	}
	assert.Greater(t, report.Accepted, 0)
}
