package interp

import (
	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/monoid"
	"github.com/desitas1701/chipollino/internal/regex"
)

// opSignature is one overload of one named operation: the kinds it accepts
// (after DFA→NFA widening), the kind it produces, and the Go closure that
// actually performs the work. Every function the interpreter can name maps
// directly onto one operation exported by internal/regex, internal/automaton,
// or internal/monoid.
type opSignature struct {
	name   string
	params []Kind
	out    Kind
	apply  func(args []Value) (Value, error)
}

func faOf(v Value) *automaton.FA { return v.FA }

// opTable lists every overload of every named operation. A name with more
// than one entry is an overloaded function — e.g. Delinearize accepts a
// Regex, an NFA or a DFA. DeAnnote accepts an NFA or a DFA only; it has no
// Regex overload.
var opTable = map[string][]opSignature{
	"Thompson": {{
		name: "Thompson", params: []Kind{KindRegex}, out: KindNFA,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: regex.Thompson(a[0].Regex)}, nil },
	}},
	"Glushkov": {{
		name: "Glushkov", params: []Kind{KindRegex}, out: KindNFA,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: regex.Glushkov(a[0].Regex)}, nil },
	}},
	"IlieYu": {{
		name: "IlieYu", params: []Kind{KindRegex}, out: KindNFA,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: regex.IlieYu(a[0].Regex)}, nil },
	}},
	"Antimirov": {{
		name: "Antimirov", params: []Kind{KindRegex}, out: KindNFA,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: regex.Antimirov(a[0].Regex)}, nil },
	}},
	"Arden": {
		{name: "Arden", params: []Kind{KindNFA}, out: KindRegex,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindRegex, Regex: regex.FromAutomaton(a[0].FA)}, nil }},
		{name: "Arden", params: []Kind{KindDFA}, out: KindRegex,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindRegex, Regex: regex.FromAutomaton(a[0].FA)}, nil }},
	},
	"PumpLength": {{
		name: "PumpLength", params: []Kind{KindRegex}, out: KindInt,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindInt, Int: regex.PumpLength(a[0].Regex)}, nil },
	}},
	"Linearize": {{
		name: "Linearize", params: []Kind{KindRegex}, out: KindRegex,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindRegex, Regex: a[0].Regex.Linearize()}, nil },
	}},
	"Delinearize": {
		{name: "Delinearize", params: []Kind{KindRegex}, out: KindRegex,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindRegex, Regex: a[0].Regex.Delinearize()}, nil }},
		{name: "Delinearize", params: []Kind{KindNFA}, out: KindNFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: faOf(a[0]).Delinearize()}, nil }},
		{name: "Delinearize", params: []Kind{KindDFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Delinearize()}, nil }},
	},
	"Annote": {
		{name: "Annote", params: []Kind{KindNFA}, out: KindNFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: faOf(a[0]).Annotate()}, nil }},
		{name: "Annote", params: []Kind{KindDFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Annotate()}, nil }},
	},
	"DeAnnote": {
		{name: "DeAnnote", params: []Kind{KindNFA}, out: KindNFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: faOf(a[0]).Deannotate()}, nil }},
		{name: "DeAnnote", params: []Kind{KindDFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Deannotate()}, nil }},
	},
	"Determinize": {
		{name: "Determinize", params: []Kind{KindNFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Determinize(true)}, nil }},
		{name: "Determinize", params: []Kind{KindDFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Determinize(true)}, nil }},
	},
	"Minimize": {
		{name: "Minimize", params: []Kind{KindNFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Minimize(true)}, nil }},
		{name: "Minimize", params: []Kind{KindDFA}, out: KindDFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Minimize(true)}, nil }},
	},
	"Reverse": {
		{name: "Reverse", params: []Kind{KindNFA}, out: KindNFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: faOf(a[0]).Reverse()}, nil }},
		{name: "Reverse", params: []Kind{KindDFA}, out: KindNFA,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: faOf(a[0]).Reverse()}, nil }},
	},
	"Complement": {{
		name: "Complement", params: []Kind{KindDFA}, out: KindDFA,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindDFA, FA: faOf(a[0]).Complement()}, nil },
	}},
	"Ambiguity": {
		{name: "Ambiguity", params: []Kind{KindNFA}, out: KindAmbiguity,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindAmbiguity, Ambig: faOf(a[0]).Ambiguity()}, nil }},
		{name: "Ambiguity", params: []Kind{KindDFA}, out: KindAmbiguity,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindAmbiguity, Ambig: faOf(a[0]).Ambiguity()}, nil }},
	},
	"SyntacticMonoid": {{
		name: "SyntacticMonoid", params: []Kind{KindDFA}, out: KindMonoid,
		apply: func(a []Value) (Value, error) {
			m, err := monoid.Build(faOf(a[0]))
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindMonoid, Monoid: m}, nil
		},
	}},
	"Minimal": {{
		name: "Minimal", params: []Kind{KindDFA}, out: KindBool,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).Minimal()}, nil },
	}},
	"IsDeterministic": {
		{name: "IsDeterministic", params: []Kind{KindNFA}, out: KindBool,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).IsDeterministic()}, nil }},
		{name: "IsDeterministic", params: []Kind{KindDFA}, out: KindBool,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).IsDeterministic()}, nil }},
	},
	"IsOneUnambiguous": {
		{name: "IsOneUnambiguous", params: []Kind{KindNFA}, out: KindBool,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).IsOneUnambiguous()}, nil }},
		{name: "IsOneUnambiguous", params: []Kind{KindDFA}, out: KindBool,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).IsOneUnambiguous()}, nil }},
	},
	"IsSemDeterministic": {
		{name: "IsSemDeterministic", params: []Kind{KindNFA}, out: KindBool,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).IsSemDeterministic()}, nil }},
		{name: "IsSemDeterministic", params: []Kind{KindDFA}, out: KindBool,
			apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).IsSemDeterministic()}, nil }},
	},
	"Union": {{
		name: "Union", params: []Kind{KindNFA, KindNFA}, out: KindNFA,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindNFA, FA: automaton.Union(faOf(a[0]), faOf(a[1]))}, nil },
	}},
	"Intersection": {{
		name: "Intersection", params: []Kind{KindNFA, KindNFA}, out: KindNFA,
		apply: func(a []Value) (Value, error) {
			return Value{Kind: KindNFA, FA: automaton.Intersection(faOf(a[0]), faOf(a[1]))}, nil
		},
	}},
	"Difference": {{
		name: "Difference", params: []Kind{KindNFA, KindNFA}, out: KindNFA,
		apply: func(a []Value) (Value, error) {
			return Value{Kind: KindNFA, FA: automaton.Difference(faOf(a[0]), faOf(a[1]))}, nil
		},
	}},
	"Subset": {{
		name: "Subset", params: []Kind{KindNFA, KindNFA}, out: KindBool,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).Subset(faOf(a[1]))}, nil },
	}},
	"Equal": {{
		name: "Equal", params: []Kind{KindNFA, KindNFA}, out: KindBool,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).Equal(faOf(a[1]))}, nil },
	}},
	"Equiv": {{
		name: "Equiv", params: []Kind{KindNFA, KindNFA}, out: KindBool,
		apply: func(a []Value) (Value, error) { return Value{Kind: KindBool, Bool: faOf(a[0]).Equivalent(faOf(a[1]))}, nil },
	}},
}

// predicateNames is the subset of opTable entries whose output is Bool and
// which may appear as a standalone Predicate statement.
var predicateNames = map[string]bool{
	"Minimal": true, "IsDeterministic": true, "IsOneUnambiguous": true,
	"IsSemDeterministic": true, "Subset": true, "Equal": true, "Equiv": true,
}
