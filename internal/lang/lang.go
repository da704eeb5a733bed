// Package lang implements the Language cache: a shared handle that holds an
// alphabet plus lazily-memoized derived facts about one language-equivalence
// class (minimal DFA, pump length, syntactic monoid, minimum NFA size,
// 1-unambiguity witness). An object and the objects derived from it by
// language-preserving operations share one *Cache instance (see New); two
// objects built separately over the same language have distinct caches.
// Writes to a memo slot are monotonic — once set, a
// slot is never overwritten, matching the spec's write-once-on-first-read
// discipline.
//
// Cache avoids an import cycle with the automaton/monoid/regex packages
// (which would otherwise need to reference it right back) by storing the
// cross-package-typed slots as Slot[any]; automaton and monoid expose small
// typed wrapper functions over their untyped slots.
package lang

import "github.com/desitas1701/chipollino/internal/symbol"

// Slot is a monotonic, write-once memoization cell. SetOnce silently
// ignores a second write: readers either observe "unset" or the final
// value, never a partial or overwritten one.
type Slot[T any] struct {
	value T
	set   bool
}

// Get returns the stored value and whether it has been set.
func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}

// SetOnce stores v if the slot is not already set. No-op otherwise.
func (s *Slot[T]) SetOnce(v T) {
	if s.set {
		return
	}
	s.value = v
	s.set = true
}

// Cache is the per-language memoization store.
type Cache struct {
	alphabet symbol.Alphabet

	// MinDFA holds the canonical minimal DFA for this language. Typed as
	// `any`; see automaton.CacheMinDFA/automaton.CachedMinDFA.
	MinDFA Slot[any]

	// PumpLength is the pumping-lemma constant for this language.
	PumpLength Slot[int]

	// SyntacticMonoid holds the transformation monoid. Typed as `any`; see
	// monoid.CacheSyntacticMonoid/monoid.CachedSyntacticMonoid.
	SyntacticMonoid Slot[any]

	// NFAMinimumSize is the minimum NFA state count for this language.
	NFAMinimumSize Slot[int]

	// OneUnambiguous records whether the language is 1-unambiguous.
	OneUnambiguous Slot[bool]

	// OneUnambiguousWitness holds a witness regex string for a
	// 1-unambiguous language. Typed as `any`; no package in this module
	// reads or writes it.
	OneUnambiguousWitness Slot[any]
}

// New creates a fresh Language cache over the given alphabet. Parsing a
// regex, building a regex from a tree (Arden conversion, Linearize,
// Delinearize), union/intersection/difference/complement/reverse of
// automata, and Annote/Deannote/Delinearize of automata (which change the
// alphabet) each allocate a new Cache. Determinize, Minimize, RemoveEps,
// trap-state add/remove and the Thompson/Glushkov/IlieYu/Antimirov
// constructions propagate the input's existing Cache instead.
func New(alphabet symbol.Alphabet) *Cache {
	return &Cache{alphabet: alphabet}
}

// Alphabet returns the language's alphabet.
func (c *Cache) Alphabet() symbol.Alphabet {
	return c.alphabet
}

// Same returns whether c and o are the identical cache instance — the
// "shared Language handle" invariant from the spec: objects share a cache
// by reference, not by alphabet equality (two different languages can share
// an alphabet).
func (c *Cache) Same(o *Cache) bool {
	return c == o
}
