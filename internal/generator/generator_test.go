package generator

import (
	"math/rand"
	"testing"

	"github.com/desitas1701/chipollino/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlphabet() symbol.Alphabet {
	return symbol.NewAlphabet(symbol.New("a"), symbol.New("b"))
}

func Test_Generate_producesRequestedStateCount(t *testing.T) {
	p := Params{
		Target:           TargetNFA,
		NumStates:        6,
		FinalProbability: 0.3,
		Alphabet:         testAlphabet(),
		Rand:             rand.New(rand.NewSource(42)),
	}
	fa := Generate(p)
	assert.Equal(t, 6, fa.NumStates())
}

func Test_Generate_everyStateReachesAnAccepting(t *testing.T) {
	p := Params{
		Target:           TargetNFA,
		NumStates:        8,
		FinalProbability: 0.1,
		Alphabet:         testAlphabet(),
		Rand:             rand.New(rand.NewSource(7)),
	}
	fa := Generate(p)

	reach := ancestorsOfAccepting(fa)
	for i := 0; i < fa.NumStates(); i++ {
		assert.True(t, reach[i], "state %d cannot reach any accepting state", i)
	}
}

func Test_Generate_dfaTargetHasNoEpsilonAndNoDuplicateSymbols(t *testing.T) {
	p := Params{
		Target:             TargetDFA,
		NumStates:          10,
		FinalProbability:   0.2,
		EpsilonProbability: 0.5, // must be ignored for a DFA target
		Alphabet:           testAlphabet(),
		Rand:               rand.New(rand.NewSource(99)),
	}
	fa := Generate(p)

	assert.False(t, fa.HasEpsilonTransitions())
	for _, s := range fa.States {
		for _, targets := range s.Moves() {
			assert.LessOrEqual(t, targets.Len(), 1)
		}
	}
}

func Test_Generate_isDeterministicAcrossRuns(t *testing.T) {
	p := Params{
		Target:           TargetNFA,
		NumStates:        5,
		FinalProbability: 0.4,
		Alphabet:         testAlphabet(),
		Rand:             rand.New(rand.NewSource(1234)),
	}
	a := Generate(p)

	p.Rand = rand.New(rand.NewSource(1234))
	b := Generate(p)

	assert.Equal(t, a.String(), b.String())
}

func Test_GenerateMFA_coloringStartsWhite(t *testing.T) {
	p := Params{
		Target:             TargetNFA,
		NumStates:          5,
		FinalProbability:   0.3,
		BackRefProbability: 0.5,
		NumCells:           2,
		Alphabet:           testAlphabet(),
		Rand:               rand.New(rand.NewSource(5)),
	}
	mfa := GenerateMFA(p)
	require.NotNil(t, mfa)
	for c := 0; c < p.NumCells; c++ {
		assert.Equal(t, ColorWhite, mfa.Coloring[mfa.FA.Initial][c])
	}
	for _, tr := range mfa.Transitions {
		assert.False(t, tr.Open.Any(func(c int) bool { return tr.Close.Has(c) }))
	}
}
