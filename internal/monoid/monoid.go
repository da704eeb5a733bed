// Package monoid implements TransformationMonoid: the syntactic monoid of a
// DFA built by shortlex BFS enumeration over words, its rewriting rules, and
// the Myhill-Nerode table.
package monoid

import (
	"fmt"
	"strings"

	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/lang"
	"github.com/desitas1701/chipollino/internal/symbol"
)

// MaxClasses bounds the number of distinct transformations Build will
// enumerate before giving up: the syntactic monoid of an n-state DFA can
// have up to n^n elements, so an unbounded BFS over a dense automaton can
// never terminate in practice.
const MaxClasses = 100000

// Term is one element of the monoid: a representative word plus the
// per-state next-state vector it induces over the fixed DFA, and whether
// reading it from the DFA's initial state lands in an accepting state. Two
// terms are equivalent iff their image vectors agree on every state.
type Term struct {
	Word        []symbol.Symbol
	Image       []int
	IsAccepting bool
}

// Monoid is the transformation monoid of a DFA: BFS-enumerated terms in
// shortlex order, deduplicated by induced image vector, plus a rewrite
// table mapping a duplicate word's printed form to its earlier (shorter)
// representative's.
type Monoid struct {
	DFA      *automaton.FA
	Terms    []Term
	Rewrites map[string]string
}

// Build enumerates the transformation monoid of dfa (assumed total and
// deterministic): start with the identity term for ε, extend every known
// term by every alphabet symbol in shortlex order, keep the result if its
// image vector is novel, otherwise record a rewrite rule pointing at the
// earlier term sharing that image. Aborts past MaxClasses distinct terms.
func Build(dfa *automaton.FA) (*Monoid, error) {
	n := dfa.NumStates()
	alphabet := dfa.Alphabet()

	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}

	m := &Monoid{DFA: dfa, Rewrites: map[string]string{}}
	seen := map[string]int{}

	addTerm := func(word []symbol.Symbol, image []int) int {
		idx := len(m.Terms)
		accepting := dfa.States[dfa.Initial].Terminal
		if dfa.Initial < len(image) {
			accepting = dfa.States[image[dfa.Initial]].Terminal
		}
		m.Terms = append(m.Terms, Term{Word: word, Image: image, IsAccepting: accepting})
		seen[imageKey(image)] = idx
		return idx
	}

	addTerm(nil, identity)
	var queue []int
	queue = append(queue, 0)

	for len(queue) > 0 {
		if len(m.Terms) > MaxClasses {
			return nil, fmt.Errorf("syntactic monoid exceeded %d classes without converging", MaxClasses)
		}
		idx := queue[0]
		queue = queue[1:]
		cur := m.Terms[idx]

		for _, a := range alphabet {
			nextImage := make([]int, n)
			ok := true
			for s := 0; s < n; s++ {
				t, stepOK := dfa.Step(cur.Image[s], a)
				if !stepOK {
					ok = false
					break
				}
				nextImage[s] = t
			}
			if !ok {
				continue
			}
			nextWord := append(append([]symbol.Symbol{}, cur.Word...), a)
			key := imageKey(nextImage)
			if existing, dup := seen[key]; dup {
				m.Rewrites[printWord(nextWord)] = printWord(m.Terms[existing].Word)
				continue
			}
			queue = append(queue, addTerm(nextWord, nextImage))
		}
	}
	return m, nil
}

func imageKey(image []int) string {
	var sb strings.Builder
	for i, v := range image {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	return sb.String()
}

func printWord(word []symbol.Symbol) string {
	var sb strings.Builder
	for _, s := range word {
		sb.WriteString(s.ID())
	}
	return sb.String()
}

// NumClasses is the Myhill-Nerode class count: the number of distinct image
// vectors, equivalently the number of terms retained in the monoid.
func (m *Monoid) NumClasses() int {
	return len(m.Terms)
}

// Minimal reports whether the underlying DFA is already minimal: its state
// count matches the Myhill-Nerode class count.
func (m *Monoid) Minimal() bool {
	return m.NumClasses() == m.DFA.NumStates()
}

// Table is the Myhill-Nerode table: rows are representative words (in
// shortlex enumeration order), columns are DFA state indices, and each cell
// is the state reached by reading that row's word starting from that
// column's state.
func (m *Monoid) Table() [][]int {
	rows := make([][]int, len(m.Terms))
	for i, t := range m.Terms {
		rows[i] = append([]int{}, t.Image...)
	}
	return rows
}

// RepresentativeWord returns the printed shortlex representative word for
// term index i.
func (m *Monoid) RepresentativeWord(i int) string {
	return printWord(m.Terms[i].Word)
}

// CacheSyntacticMonoid stores m as the memoized syntactic monoid for c, if
// not already set. Breaks the lang<->monoid import cycle the same way
// automaton.CacheMinDFA does.
func CacheSyntacticMonoid(c *lang.Cache, m *Monoid) {
	c.SyntacticMonoid.SetOnce(m)
}

// CachedSyntacticMonoid retrieves the memoized syntactic monoid for c, if
// any.
func CachedSyntacticMonoid(c *lang.Cache) (*Monoid, bool) {
	v, ok := c.SyntacticMonoid.Get()
	if !ok {
		return nil, false
	}
	return v.(*Monoid), true
}
