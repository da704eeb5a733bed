// Package interp implements the pipeline Interpreter: lexing and parsing of
// the three script statement shapes, typed function-sequence planning with
// idempotence pruning, evaluation over the Regex/FiniteAutomaton/
// TransformationMonoid objects of internal/regex, internal/automaton and
// internal/monoid, and a scoped diagnostic logger.
package interp

import (
	"fmt"

	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/monoid"
	"github.com/desitas1701/chipollino/internal/regex"
)

// Kind is the interpreter's closed type universe. Function signatures are
// expressed over Kind rather than Go's reflect.Type so overload resolution
// and idempotence pruning stay table-driven over a closed enumeration instead
// of runtime reflection.
type Kind int

const (
	KindRegex Kind = iota
	KindNFA
	KindDFA
	KindMFA
	KindMonoid
	KindBool
	KindInt
	KindAmbiguity
)

// String names a Kind the way it would appear in a TypeError message.
func (k Kind) String() string {
	switch k {
	case KindRegex:
		return "Regex"
	case KindNFA:
		return "NFA"
	case KindDFA:
		return "DFA"
	case KindMFA:
		return "MFA"
	case KindMonoid:
		return "TransformationMonoid"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindAmbiguity:
		return "Ambiguity"
	default:
		return "?"
	}
}

// Value is a tagged union over every object kind the interpreter's
// environment can hold. Only the field matching Kind is meaningful.
type Value struct {
	Kind    Kind
	Regex   *regex.Regex
	FA      *automaton.FA
	Monoid  *monoid.Monoid
	Bool    bool
	Int     int
	Ambig   automaton.AmbiguityValue
	Name    string // identifier this value was bound under, for diagnostics
}

// widensTo reports whether a value of kind from may stand in for a
// parameter declared as kind to: a DFA is always a valid NFA, never the
// reverse.
func widensTo(from, to Kind) bool {
	if from == to {
		return true
	}
	return from == KindDFA && to == KindNFA
}

func (v Value) String() string {
	switch v.Kind {
	case KindRegex:
		return v.Regex.String()
	case KindNFA, KindDFA:
		return fmt.Sprintf("%s(%d states)", v.Kind, v.FA.NumStates())
	case KindMonoid:
		return fmt.Sprintf("TransformationMonoid(%d classes)", v.Monoid.NumClasses())
	case KindBool:
		return fmt.Sprintf("%v", v.Bool)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindAmbiguity:
		return v.Ambig.String()
	default:
		return "?"
	}
}

// Equal compares two values structurally for the evaluator's "output equals
// input" diagnostic check. Kinds must match exactly (a DFA is never reported
// equal to an NFA, even if widened).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindRegex:
		return v.Regex.String() == o.Regex.String()
	case KindNFA, KindDFA:
		return v.FA.Equal(o.FA)
	case KindMonoid:
		return v.Monoid.NumClasses() == o.Monoid.NumClasses()
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return v.Int == o.Int
	case KindAmbiguity:
		return v.Ambig == o.Ambig
	default:
		return false
	}
}
