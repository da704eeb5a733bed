package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_and_Epsilon(t *testing.T) {
	a := New("a")
	assert.Equal(t, "a", a.ID())
	assert.False(t, a.IsEpsilon())
	assert.True(t, Epsilon.IsEpsilon())
}

func Test_Linearized_roundTrip(t *testing.T) {
	a := New("a")
	lin := a.WithLinearizationIndex(3)
	assert.True(t, lin.Linearized())
	idx, ok := lin.LinearizationIndex()
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	back := lin.Delinearized()
	assert.False(t, back.Linearized())
	assert.Equal(t, a, back)
}

func Test_Annotated_roundTrip(t *testing.T) {
	a := New("a")
	ann := a.WithAnnotationIndex(2)
	assert.True(t, ann.Annotated())
	idx, ok := ann.AnnotationIndex()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	back := ann.Deannotated()
	assert.False(t, back.Annotated())
	assert.Equal(t, a, back)
}

func Test_NewAlphabet_dedupsAndSorts(t *testing.T) {
	alpha := NewAlphabet(New("b"), New("a"), New("a"))
	assert.Len(t, alpha, 2)
	assert.True(t, alpha[0].Less(alpha[1]))
}

func Test_Alphabet_Union(t *testing.T) {
	a := NewAlphabet(New("a"), New("b"))
	b := NewAlphabet(New("b"), New("c"))
	u := a.Union(b)
	assert.Len(t, u, 3)
	assert.True(t, u.Has(New("a")))
	assert.True(t, u.Has(New("c")))
}

func Test_Less_ordersByID(t *testing.T) {
	a := New("a")
	b := New("b")
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}
