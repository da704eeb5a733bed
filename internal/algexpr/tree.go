// Package algexpr implements AlgExpression: the abstract syntax tree shared
// by the regex algebra and its back-reference extension. A tree is a tagged
// variant over {Eps, Symb, Alt, Conc, Star, Negation, MemoryWriter, Ref}.
// Plain Regex trees forbid Negation/MemoryWriter/Ref; BackRefRegex trees
// permit them — enforced by which parse entry point built the tree (see
// parse.go), not by a second Node type: one concrete representation
// generalized by a validity flag rather than a parallel class hierarchy.
//
// A Node owns its children exclusively; Copy performs a full deep clone, and
// a Node's subtree is reclaimed by the garbage collector once its parent
// drops it — there is no manual destructor bookkeeping to get wrong.
package algexpr

import "github.com/desitas1701/chipollino/internal/symbol"

// Kind identifies which AlgExpression variant a Node holds.
type Kind int

const (
	Eps Kind = iota
	Symb
	Alt
	Conc
	Star
	Negation
	MemoryWriter
	Ref

	// EmptySet (∅) never appears in a parsed tree; the regex package
	// produces it as the "no derivative" result of symbol-derivative
	// computation and as the empty-language result of Arden conversion, and
	// a tree returned to a caller may have it as its root.
	EmptySet
)

func (k Kind) String() string {
	switch k {
	case Eps:
		return "Eps"
	case Symb:
		return "Symb"
	case Alt:
		return "Alt"
	case Conc:
		return "Conc"
	case Star:
		return "Star"
	case Negation:
		return "Negation"
	case MemoryWriter:
		return "MemoryWriter"
	case Ref:
		return "Ref"
	case EmptySet:
		return "EmptySet"
	default:
		return "?"
	}
}

// NewEmptySet builds the internal-only ∅ node.
func NewEmptySet() *Node {
	return &Node{Kind: EmptySet}
}

// Node is one AlgExpression tree node. Each node carries the memoized
// alphabet of its subtree (computed bottom-up at construction time) and,
// for Symb leaves, an optional linearization position tag assigned by
// Linearize.
type Node struct {
	Kind   Kind
	Sym    symbol.Symbol // valid when Kind == Symb
	Cell   int           // valid when Kind == MemoryWriter or Kind == Ref
	Left   *Node         // Star, Negation, MemoryWriter use Left only
	Right  *Node         // Alt, Conc use both Left and Right
	LinTag int           // linearization position; 0 means "not linearized"

	alphabet symbol.Alphabet
}

// NewEps builds an epsilon leaf.
func NewEps() *Node {
	return &Node{Kind: Eps}
}

// NewSymb builds a symbol leaf.
func NewSymb(s symbol.Symbol) *Node {
	return &Node{Kind: Symb, Sym: s, alphabet: symbol.NewAlphabet(s)}
}

// NewAlt builds an alternation node, computing its subtree alphabet.
func NewAlt(l, r *Node) *Node {
	return &Node{Kind: Alt, Left: l, Right: r, alphabet: l.Alphabet().Union(r.Alphabet())}
}

// NewConc builds a concatenation node, computing its subtree alphabet.
func NewConc(l, r *Node) *Node {
	return &Node{Kind: Conc, Left: l, Right: r, alphabet: l.Alphabet().Union(r.Alphabet())}
}

// NewStar builds a Kleene-star node over l.
func NewStar(l *Node) *Node {
	return &Node{Kind: Star, Left: l, alphabet: l.Alphabet()}
}

// NewNegation builds a negation node over l. Valid only in BackRefRegex
// trees.
func NewNegation(l *Node) *Node {
	return &Node{Kind: Negation, Left: l, alphabet: l.Alphabet()}
}

// NewMemoryWriter builds a memory-writer node labelled with cell, wrapping
// l. Valid only in BackRefRegex trees.
func NewMemoryWriter(cell int, l *Node) *Node {
	return &Node{Kind: MemoryWriter, Cell: cell, Left: l, alphabet: l.Alphabet()}
}

// NewRef builds a back-reference leaf to the given memory cell. Valid only
// in BackRefRegex trees.
func NewRef(cell int) *Node {
	return &Node{Kind: Ref, Cell: cell}
}

// Alphabet returns the memoized alphabet of this subtree.
func (n *Node) Alphabet() symbol.Alphabet {
	if n == nil {
		return nil
	}
	return n.alphabet
}

// Copy produces a deep clone of the subtree rooted at n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Kind:     n.Kind,
		Sym:      n.Sym,
		Cell:     n.Cell,
		LinTag:   n.LinTag,
		alphabet: n.alphabet,
	}
	clone.Left = n.Left.Copy()
	clone.Right = n.Right.Copy()
	return clone
}

// IsExtended returns whether the subtree rooted at n uses a BackRefRegex-only
// variant (Negation, MemoryWriter, or Ref) anywhere.
func (n *Node) IsExtended() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case Negation, MemoryWriter, Ref:
		return true
	}
	return n.Left.IsExtended() || n.Right.IsExtended()
}

// ContainsEps reports whether the language of the subtree rooted at n
// contains the empty word.
func (n *Node) ContainsEps() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case Eps, Star:
		return true
	case Symb, Ref:
		return false
	case Alt:
		return n.Left.ContainsEps() || n.Right.ContainsEps()
	case Conc:
		return n.Left.ContainsEps() && n.Right.ContainsEps()
	case Negation:
		return !n.Left.ContainsEps()
	case MemoryWriter:
		return n.Left.ContainsEps()
	default:
		return false
	}
}

// Leaves returns every Symb leaf in the subtree, in left-to-right order.
// Used by Linearize to assign unique position tags.
func (n *Node) Leaves() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(m *Node) {
		if m == nil {
			return
		}
		if m.Kind == Symb {
			out = append(out, m)
			return
		}
		walk(m.Left)
		walk(m.Right)
	}
	walk(n)
	return out
}

// FirstPositions always returns nil. The Glushkov "first" set of
// linearization tags is computed by First.
func (n *Node) FirstPositions() symbol.Alphabet {
	return nil // unused; First/Last give the tag-set version.
}

// byTag returns the position tags of every Symb leaf reachable at the
// "entry" (first) or "exit" (last) of the subtree, per the standard
// Glushkov recursive rules. dir selects first (true) or last (false).
func (n *Node) byTag(dir bool) map[int]struct{} {
	out := map[int]struct{}{}
	if n == nil {
		return out
	}
	switch n.Kind {
	case Symb:
		if n.LinTag != 0 {
			out[n.LinTag] = struct{}{}
		}
	case Alt:
		for k := range n.Left.byTag(dir) {
			out[k] = struct{}{}
		}
		for k := range n.Right.byTag(dir) {
			out[k] = struct{}{}
		}
	case Conc:
		first, second := n.Left, n.Right
		if !dir {
			first, second = n.Right, n.Left
		}
		for k := range first.byTag(dir) {
			out[k] = struct{}{}
		}
		if first.ContainsEps() {
			for k := range second.byTag(dir) {
				out[k] = struct{}{}
			}
		}
	case Star, Negation, MemoryWriter:
		for k := range n.Left.byTag(dir) {
			out[k] = struct{}{}
		}
	}
	return out
}

// First returns the tag-set of leaves that may begin an accepted word.
func (n *Node) First() map[int]struct{} {
	return n.byTag(true)
}

// Last returns the tag-set of leaves that may end an accepted word.
func (n *Node) Last() map[int]struct{} {
	return n.byTag(false)
}

// Pair is a follow-relation edge: position j may directly follow position i.
type Pair struct {
	From, To int
}

// Pairs returns the follow relation of the subtree rooted at n: the set of
// (i, j) such that position j can immediately follow position i in some
// accepted word, per the standard Glushkov construction.
func (n *Node) Pairs() []Pair {
	var out []Pair
	if n == nil {
		return out
	}
	switch n.Kind {
	case Alt:
		out = append(out, n.Left.Pairs()...)
		out = append(out, n.Right.Pairs()...)
	case Conc:
		out = append(out, n.Left.Pairs()...)
		out = append(out, n.Right.Pairs()...)
		for i := range n.Left.Last() {
			for j := range n.Right.First() {
				out = append(out, Pair{From: i, To: j})
			}
		}
	case Star:
		out = append(out, n.Left.Pairs()...)
		for i := range n.Left.Last() {
			for j := range n.Left.First() {
				out = append(out, Pair{From: i, To: j})
			}
		}
	case Negation, MemoryWriter:
		out = append(out, n.Left.Pairs()...)
	}
	return out
}
