// Package symbol defines the alphabet element shared by the regex algebra
// and the finite-automaton engine: a string identity plus two optional
// integer tags used by linearization and nondeterminism annotation.
package symbol

import "fmt"

// unset is the sentinel value for an absent linearization or annotation tag.
const unset = -1

// Symbol is an alphabet element. Two Symbols compare equal (via ==, since
// Symbol is a plain comparable struct usable as a map key) iff their
// identity and both tags agree.
type Symbol struct {
	id     string
	linIdx int
	annIdx int
}

// Epsilon is the distinguished empty-word value. It is never a member of any
// alphabet; NewAlphabet drops it and transition tables special-case it
// instead of storing it as an ordinary alphabet entry.
var Epsilon = Symbol{linIdx: unset, annIdx: unset}

// New returns a plain, untagged Symbol with the given identity.
func New(id string) Symbol {
	return Symbol{id: id, linIdx: unset, annIdx: unset}
}

// ID returns the symbol's string identity.
func (s Symbol) ID() string {
	return s.id
}

// IsEpsilon returns whether s denotes the empty word.
func (s Symbol) IsEpsilon() bool {
	return s.id == "" && s.linIdx == unset && s.annIdx == unset
}

// Linearized returns whether s carries a linearization tag.
func (s Symbol) Linearized() bool {
	return s.linIdx != unset
}

// LinearizationIndex returns the linearization tag, or (0, false) if unset.
func (s Symbol) LinearizationIndex() (int, bool) {
	if s.linIdx == unset {
		return 0, false
	}
	return s.linIdx, true
}

// WithLinearizationIndex returns a copy of s tagged with the given
// linearization position.
func (s Symbol) WithLinearizationIndex(idx int) Symbol {
	s.linIdx = idx
	return s
}

// Delinearized returns a copy of s with its linearization tag stripped.
func (s Symbol) Delinearized() Symbol {
	s.linIdx = unset
	return s
}

// Annotated returns whether s carries an annotation (nondeterminism marker)
// tag.
func (s Symbol) Annotated() bool {
	return s.annIdx != unset
}

// AnnotationIndex returns the annotation tag, or (0, false) if unset.
func (s Symbol) AnnotationIndex() (int, bool) {
	if s.annIdx == unset {
		return 0, false
	}
	return s.annIdx, true
}

// WithAnnotationIndex returns a copy of s tagged with the given annotation
// index.
func (s Symbol) WithAnnotationIndex(idx int) Symbol {
	s.annIdx = idx
	return s
}

// Deannotated returns a copy of s with its annotation tag stripped.
func (s Symbol) Deannotated() Symbol {
	s.annIdx = unset
	return s
}

// Less implements the lexicographic ordering on the (id, linIdx, annIdx)
// triple used for canonical sorting of alphabets and transition tables.
func (s Symbol) Less(o Symbol) bool {
	if s.id != o.id {
		return s.id < o.id
	}
	if s.linIdx != o.linIdx {
		return s.linIdx < o.linIdx
	}
	return s.annIdx < o.annIdx
}

// String renders the symbol for diagnostics: the bare identity, with any
// tags appended as subscripts-by-convention ("a_1", "a#2", "a_1#2").
func (s Symbol) String() string {
	if s.IsEpsilon() {
		return "eps"
	}
	str := s.id
	if s.Linearized() {
		str += fmt.Sprintf("_%d", s.linIdx)
	}
	if s.Annotated() {
		str += fmt.Sprintf("#%d", s.annIdx)
	}
	return str
}

// MemoryRef is a back-reference symbol carrying a memory-cell index. It is a
// variant distinct from Symbol, used only by BackRefRegex/MFA trees and
// transitions; it never appears in a plain Regex/NFA/DFA's alphabet.
type MemoryRef struct {
	Cell int
}

func (m MemoryRef) String() string {
	return fmt.Sprintf("&%d", m.Cell)
}

// Alphabet is an ordered, de-duplicated collection of Symbols (two
// Alphabets built by NewAlphabet from the same symbol set are element-wise
// equal regardless of insertion order).
type Alphabet []Symbol

// NewAlphabet builds an Alphabet from the given symbols, de-duplicating and
// sorting them for a canonical form.
func NewAlphabet(symbols ...Symbol) Alphabet {
	seen := make(map[Symbol]struct{}, len(symbols))
	out := make(Alphabet, 0, len(symbols))
	for _, s := range symbols {
		if s.IsEpsilon() {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	out.sort()
	return out
}

func (a Alphabet) sort() {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j].Less(a[j-1]); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// Key renders the Alphabet as a canonical string. Language caches are not
// keyed by it: cache identity is pointer identity (lang.Cache.Same).
func (a Alphabet) Key() string {
	str := ""
	for i, s := range a {
		if i > 0 {
			str += ","
		}
		str += s.String()
	}
	return str
}

// Union returns the sorted, de-duplicated union of a and o.
func (a Alphabet) Union(o Alphabet) Alphabet {
	return NewAlphabet(append(append(Alphabet{}, a...), o...)...)
}

// Has returns whether s is a member of the alphabet.
func (a Alphabet) Has(s Symbol) bool {
	for _, m := range a {
		if m == s {
			return true
		}
	}
	return false
}
