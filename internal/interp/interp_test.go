package interp

import (
	"testing"

	"github.com/desitas1701/chipollino/internal/ierrors"
	"github.com/stretchr/testify/assert"
)

func Test_lexLine_tokenClassSequence(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []tokenClass
	}{
		{name: "blank line", input: "", expect: nil},
		{name: "comment only", input: "# a comment", expect: nil},
		{name: "declaration shape", input: "A = Thompson a|b", expect: []tokenClass{tcID, tcEquals, tcName, tcName}},
		{name: "chained declaration", input: "B = Minimize.Glushkov (a|b)*abb", expect: []tokenClass{tcID, tcEquals, tcName, tcDot, tcName, tcRegex}},
		{name: "verbose flag", input: "A = Thompson a|b !!", expect: []tokenClass{tcID, tcEquals, tcName, tcName, tcBang}},
		{name: "test statement", input: "Test A a*b 3", expect: []tokenClass{tcName, tcID, tcName, tcNumber}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			toks, err := lexLine(tc.input, 1)
			if !assert.NoError(err) {
				return
			}
			var got []tokenClass
			for _, tok := range toks {
				got = append(got, tok.class)
			}
			assert.Equal(tc.expect, got)
		})
	}
}

func Test_pruneIdempotent(t *testing.T) {
	testCases := []struct {
		name   string
		exec   []string
		expect []string
	}{
		{name: "Determinize.Determinize collapses", exec: []string{"Determinize", "Determinize"}, expect: []string{"Determinize"}},
		{name: "Determinize then Minimize drops the Determinize", exec: []string{"Determinize", "Minimize"}, expect: []string{"Minimize"}},
		{name: "Linearize then Glushkov drops the Linearize", exec: []string{"Linearize", "Glushkov"}, expect: []string{"Glushkov"}},
		{name: "Determinize.Minimize.Determinize plans to Minimize", exec: []string{"Determinize", "Minimize", "Determinize"}, expect: []string{"Minimize"}},
		{name: "Reverse.Reverse is not pruned", exec: []string{"Reverse", "Reverse"}, expect: []string{"Reverse", "Reverse"}},
		{name: "unrelated chain is untouched", exec: []string{"Glushkov"}, expect: []string{"Glushkov"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, pruneIdempotent(tc.exec))
		})
	}
}

func Test_plan_and_eval_declaration(t *testing.T) {
	assert := assert.New(t)

	ip := New(LogNothing)
	err := ip.RunLine(`A = Thompson a|b`, 1)
	assert.NoError(err)
	v, ok := ip.env["A"]
	if assert.True(ok) {
		assert.Equal(KindNFA, v.Kind)
	}

	err = ip.RunLine(`B = Determinize.Thompson a|b`, 2)
	assert.NoError(err)
	b, ok := ip.env["B"]
	if assert.True(ok) {
		assert.Equal(KindDFA, b.Kind)
	}

	err = ip.RunLine(`C = Minimize.Glushkov (a|b)*abb`, 3)
	assert.NoError(err)
	c, ok := ip.env["C"]
	if assert.True(ok) {
		assert.Equal(KindDFA, c.Kind)
		assert.Equal(4, c.FA.NumStates())
		assert.True(c.FA.Minimal())
	}
}

func Test_eval_refError_on_unbound_identifier(t *testing.T) {
	ip := New(LogNothing)
	err := ip.RunLine(`A = Determinize X`, 1)
	if assert.Error(t, err) {
		ierr, ok := err.(*Error)
		if assert.True(t, ok) {
			assert.Equal(t, ierrors.Ref, ierr.Kind())
		}
	}
}

func Test_execTest_reports_membership(t *testing.T) {
	ip := New(LogAll)
	err := ip.RunLine(`A = Thompson a*b`, 1)
	assert.NoError(t, err)

	err = ip.RunLine(`Test A a*b 2`, 2)
	assert.NoError(t, err)
	assert.Contains(t, ip.Logger.String(), "Test:")
}

func Test_execPredicate_equiv(t *testing.T) {
	ip := New(LogNothing)
	assert.NoError(t, ip.RunLine(`A = Thompson a|b`, 1))
	assert.NoError(t, ip.RunLine(`B = Determinize.Thompson a|b`, 2))
	assert.NoError(t, ip.RunLine(`Equiv A B`, 3))
}
