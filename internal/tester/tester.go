// Package tester implements the Tester component: word generation from
// star-only regex-iteration templates and membership/containment checks
// against a language.
package tester

import (
	"github.com/desitas1701/chipollino/internal/algexpr"
	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/symbol"
)

// Result pairs a generated word with its observed membership.
type Result struct {
	Word   []symbol.Symbol
	Member bool
}

// Report summarizes a test run.
type Report struct {
	Accepted int
	Rejected int
	Results  []Result
}

// Validate reports whether template is star-only over concatenation: no Alt
// node appears anywhere in it, since the word generator below only knows
// how to vary iteration counts, not choose among alternatives.
func Validate(template *algexpr.Node) bool {
	if template == nil {
		return true
	}
	if template.Kind == algexpr.Alt {
		return false
	}
	return Validate(template.Left) && Validate(template.Right)
}

// GenerateWords enumerates every word obtained by unrolling each Star in
// template exactly n times, recursively.
func GenerateWords(template *algexpr.Node, n int) [][]symbol.Symbol {
	return unroll(template, n)
}

func unroll(n_ *algexpr.Node, n int) [][]symbol.Symbol {
	if n_ == nil {
		return [][]symbol.Symbol{nil}
	}
	switch n_.Kind {
	case algexpr.Eps:
		return [][]symbol.Symbol{nil}
	case algexpr.Symb:
		return [][]symbol.Symbol{{n_.Sym}}
	case algexpr.Conc:
		left := unroll(n_.Left, n)
		right := unroll(n_.Right, n)
		out := make([][]symbol.Symbol, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				word := append(append([]symbol.Symbol{}, l...), r...)
				out = append(out, word)
			}
		}
		return out
	case algexpr.Star:
		base := unroll(n_.Left, n)
		out := [][]symbol.Symbol{nil}
		for i := 0; i < n; i++ {
			var next [][]symbol.Symbol
			for _, prefix := range out {
				for _, b := range base {
					word := append(append([]symbol.Symbol{}, prefix...), b...)
					next = append(next, word)
				}
			}
			out = next
		}
		return out
	case algexpr.Negation, algexpr.MemoryWriter:
		return unroll(n_.Left, n)
	default:
		return [][]symbol.Symbol{nil}
	}
}

// Run generates every word from template unrolled n times and checks each
// for membership in fa, returning a summary report.
func Run(fa *automaton.FA, template *algexpr.Node, n int) Report {
	var report Report
	for _, word := range GenerateWords(template, n) {
		member := fa.Accepts(word)
		report.Results = append(report.Results, Result{Word: word, Member: member})
		if member {
			report.Accepted++
		} else {
			report.Rejected++
		}
	}
	return report
}
