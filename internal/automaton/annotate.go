package automaton

import "github.com/desitas1701/chipollino/internal/symbol"

// Annotate tags every occurrence of a symbol labeling more than one outgoing
// transition from the same state with a distinct annotation index, so the
// result is symbol-deterministic over the annotated alphabet. Every
// occurrence gets an explicit index, including the first, so Deannotate is a
// pure tag-strip with no special case. Two annotated symbols compare equal
// only if their tags agree, so the annotated automaton denotes a different
// alphabet than fa; the result gets its own fresh Language cache rather than
// sharing fa's.
func (fa *FA) Annotate() *FA {
	tagged := make(map[symbol.Symbol][]int)
	for _, s := range fa.States {
		for a, targets := range s.transitions {
			if a.IsEpsilon() {
				continue
			}
			if targets.Len() < 2 {
				tagged[a] = nil
				continue
			}
			idx := 0
			for range targets {
				tagged[a.WithAnnotationIndex(idx)] = nil
				idx++
			}
		}
	}
	taggedAlphabet := make(symbol.Alphabet, 0, len(tagged))
	for a := range tagged {
		taggedAlphabet = append(taggedAlphabet, a)
	}
	taggedAlphabet = symbol.NewAlphabet(taggedAlphabet...)

	out := New(taggedAlphabet)
	for _, s := range fa.States {
		out.States = append(out.States, newState(s.Index, s.ID, s.Terminal))
		out.States[s.Index].Label = s.Label.Copy()
	}
	for _, s := range fa.States {
		for a, targets := range s.transitions {
			idx := 0
			for t := range targets {
				dest := a
				if !a.IsEpsilon() && targets.Len() > 1 {
					dest = a.WithAnnotationIndex(idx)
					idx++
				}
				out.AddTransition(s.Index, dest, t)
			}
		}
	}
	out.Initial = fa.Initial
	return out
}

// Deannotate strips annotation tags, restoring the original NFA. Transitions
// on what become duplicate symbols are merged. The result gets a fresh
// Language cache since deannotating changes the alphabet's identity.
func (fa *FA) Deannotate() *FA {
	alphabet := make(map[symbol.Symbol]struct{})
	for _, s := range fa.States {
		for a := range s.transitions {
			alphabet[a.Deannotated()] = struct{}{}
		}
	}
	plainAlphabet := make(symbol.Alphabet, 0, len(alphabet))
	for a := range alphabet {
		plainAlphabet = append(plainAlphabet, a)
	}
	plainAlphabet = symbol.NewAlphabet(plainAlphabet...)

	out := New(plainAlphabet)
	for _, s := range fa.States {
		out.States = append(out.States, newState(s.Index, s.ID, s.Terminal))
		out.States[s.Index].Label = s.Label.Copy()
	}
	for _, s := range fa.States {
		for a, targets := range s.transitions {
			plain := a.Deannotated()
			for t := range targets {
				out.AddTransition(s.Index, plain, t)
			}
		}
	}
	out.Initial = fa.Initial
	return out
}

// Delinearize strips linearization tags from every transition symbol,
// merging transitions that become duplicates. The result gets a fresh
// Language cache since delinearizing changes the alphabet's identity.
func (fa *FA) Delinearize() *FA {
	alphabet := make(map[symbol.Symbol]struct{})
	for _, s := range fa.States {
		for a := range s.transitions {
			alphabet[a.Delinearized()] = struct{}{}
		}
	}
	plainAlphabet := make(symbol.Alphabet, 0, len(alphabet))
	for a := range alphabet {
		plainAlphabet = append(plainAlphabet, a)
	}
	plainAlphabet = symbol.NewAlphabet(plainAlphabet...)

	out := New(plainAlphabet)
	for _, s := range fa.States {
		out.States = append(out.States, newState(s.Index, s.ID, s.Terminal))
		out.States[s.Index].Label = s.Label.Copy()
	}
	for _, s := range fa.States {
		for a, targets := range s.transitions {
			plain := a.Delinearized()
			for t := range targets {
				out.AddTransition(s.Index, plain, t)
			}
		}
	}
	out.Initial = fa.Initial
	return out
}
