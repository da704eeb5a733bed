// Package regex implements the concrete Regex object over an AlgExpression
// tree: parsing entry points, Thompson/Glushkov/IlieYu/Antimirov
// construction, Brzozowski derivatives, and pump-length computation.
package regex

import (
	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/lang"
	"github.com/desitas1701/chipollino/internal/symbol"
)

// Regex is a regex (or, if Extended, BackRefRegex) value: an AlgExpression
// tree plus a shared handle to its Language cache.
type Regex struct {
	Tree     *algexpr.Node
	Extended bool
	cache    *lang.Cache
}

// Parse builds a plain Regex (no negation/memory-writer/back-reference)
// from source text. An empty string parses to epsilon.
func Parse(source string) (*Regex, error) {
	tree, err := algexpr.Parse(source, false)
	if err != nil {
		return nil, err
	}
	return &Regex{Tree: tree, cache: lang.New(tree.Alphabet())}, nil
}

// ParseBackRef builds a BackRefRegex, permitting ^, [ ]:k, and &k.
func ParseBackRef(source string) (*Regex, error) {
	tree, err := algexpr.Parse(source, true)
	if err != nil {
		return nil, err
	}
	return &Regex{Tree: tree, Extended: true, cache: lang.New(tree.Alphabet())}, nil
}

// FromTree wraps an already-built tree, allocating a fresh Language cache
// over its alphabet. Used by construction algorithms that synthesize a new
// tree (Arden conversion, Linearize, Delinearize).
func FromTree(tree *algexpr.Node, extended bool) *Regex {
	return &Regex{Tree: tree, Extended: extended, cache: lang.New(tree.Alphabet())}
}

// Cache returns the shared Language handle for this regex.
func (r *Regex) Cache() *lang.Cache {
	return r.cache
}

// Alphabet returns the regex's alphabet.
func (r *Regex) Alphabet() symbol.Alphabet {
	return r.Tree.Alphabet()
}

// String renders the regex back to its surface syntax.
func (r *Regex) String() string {
	return algexpr.Print(r.Tree)
}

// ContainsEps reports whether the regex's language contains the empty word.
func (r *Regex) ContainsEps() bool {
	return r.Tree.ContainsEps()
}

// Copy produces a deep clone sharing the same Language cache (copying does
// not change the accepted language).
func (r *Regex) Copy() *Regex {
	return &Regex{Tree: r.Tree.Copy(), Extended: r.Extended, cache: r.cache}
}

// Linearize assigns unique left-to-right position tags to every Symb leaf,
// returning a new Regex (the original is left untouched) whose alphabet
// symbols are additionally tagged with the same linearization index — the
// Glushkov/IlieYu constructions read these tags directly off the tree. Two
// tagged symbols compare equal only if their tags agree, so the tagged tree
// denotes a different, refined alphabet than the original; the result gets
// its own fresh Language cache rather than sharing the original's.
func (r *Regex) Linearize() *Regex {
	tree := r.Tree.Copy()
	for i, leaf := range tree.Leaves() {
		tag := i + 1
		leaf.LinTag = tag
		leaf.Sym = leaf.Sym.WithLinearizationIndex(tag)
	}
	return FromTree(tree, r.Extended)
}

// Delinearize strips linearization tags from every Symb leaf, returning a
// new Regex over the original (untagged) alphabet.
func (r *Regex) Delinearize() *Regex {
	delin := r.Copy()
	var walk func(*algexpr.Node)
	walk = func(n *algexpr.Node) {
		if n == nil {
			return
		}
		if n.Kind == algexpr.Symb {
			n.LinTag = 0
			n.Sym = n.Sym.Delinearized()
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(delin.Tree)
	return FromTree(delin.Tree, delin.Extended)
}
