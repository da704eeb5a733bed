package interp

import (
	"strings"

	"github.com/desitas1701/chipollino/internal/automaton"
	"github.com/desitas1701/chipollino/internal/regex"
	"github.com/desitas1701/chipollino/internal/tester"
)

// Interpreter is the top-level pipeline object: it owns the identifier
// environment and the scoped logger, and runs script lines against them one
// at a time. Identifiers in the environment are mutated only by the
// top-level loop between operations, never by an operation mid-evaluation.
type Interpreter struct {
	env    map[string]Value
	Logger *Logger
}

// New creates an Interpreter whose logger starts in the given mode.
func New(mode LogMode) *Interpreter {
	return &Interpreter{env: map[string]Value{}, Logger: NewLogger(mode)}
}

// RunScript runs every line of source in order, logging and skipping any
// line that errors, and reports whether any line failed (the CLI's
// exit-code signal).
func (ip *Interpreter) RunScript(source string) bool {
	hadError := false
	for i, raw := range strings.Split(source, "\n") {
		if err := ip.RunLine(raw, i+1); err != nil {
			hadError = true
			ip.Logger.Event(true, "%s", err.Error())
		}
	}
	return hadError
}

// RunLine lexes, parses, and executes one script line. A blank or
// comment-only line is a no-op.
func (ip *Interpreter) RunLine(raw string, lineNo int) error {
	toks, err := lexLine(raw, lineNo)
	if err != nil {
		return err
	}
	st, err := parseLine(toks, lineNo)
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}

	switch st.kind {
	case stmtDeclaration:
		return ip.execDeclaration(st)
	case stmtTest:
		return ip.execTest(st)
	case stmtPredicate:
		return ip.execPredicate(st)
	default:
		return nil
	}
}

func (ip *Interpreter) execDeclaration(st *statement) error {
	var result error
	ip.activated(st.verbose, func() {
		args, err := ip.resolveAll(st.args)
		if err != nil {
			result = err
			return
		}
		argKinds := kindsOf(args)
		calls, err := plan(st.line, st.fnNames, argKinds)
		if err != nil {
			result = err
			return
		}

		cur := args
		for _, call := range calls {
			ip.Logger.Event(false, "applying %s to %v", call.sig.name, cur)
			out, err := call.sig.apply(cur)
			if err != nil {
				result = evalErrorf(st.line, "%s: %s", call.sig.name, err.Error())
				return
			}
			if len(cur) == 1 && out.Equal(cur[0]) {
				ip.Logger.Event(false, "%s produced an output structurally equal to its input", call.sig.name)
			}
			cur = []Value{out}
		}
		ip.env[st.id] = cur[0]
		ip.Logger.Event(false, "%s = %v", st.id, cur[0])
	})
	return result
}

func (ip *Interpreter) execTest(st *statement) error {
	var result error
	ip.activated(true, func() {
		langVal, err := ip.resolveAtom(st.language)
		if err != nil {
			result = err
			return
		}
		fa, err := ip.asAutomaton(langVal, st.language.line)
		if err != nil {
			result = err
			return
		}

		setVal, err := ip.resolveAtom(st.testSet)
		if err != nil {
			result = err
			return
		}
		if setVal.Kind != KindRegex {
			result = typeErrorf(st.testSet.line, "Test's test_set must be a regex template, got %s", setVal.Kind)
			return
		}
		if !tester.Validate(setVal.Regex.Tree) {
			result = typeErrorf(st.testSet.line, "Test's test_set must be star-only over concatenation (no alternation)")
			return
		}

		report := tester.Run(fa, setVal.Regex.Tree, st.iterations)
		ip.Logger.Event(false, "Test: %d accepted, %d rejected", report.Accepted, report.Rejected)
	})
	return result
}

func (ip *Interpreter) execPredicate(st *statement) error {
	var result error
	ip.activated(true, func() {
		args, err := ip.resolveAll(st.predArgs)
		if err != nil {
			result = err
			return
		}
		overloads, ok := opTable[st.predName]
		if !ok {
			result = typeErrorf(st.line, "unknown predicate %q", st.predName)
			return
		}
		sig, err := resolveOverload(st.line, st.predName, overloads, kindsOf(args))
		if err != nil {
			result = err
			return
		}
		out, err := sig.apply(args)
		if err != nil {
			result = evalErrorf(st.line, "%s: %s", st.predName, err.Error())
			return
		}
		ip.Logger.Event(false, "%s %v = %v", st.predName, args, out.Bool)
	})
	return result
}

// activated runs fn inside one logger scope, forcing LogAll for the
// duration when active: a declaration only logs verbosely when its
// trailing !! is present, while predicates and tests are always verbose.
func (ip *Interpreter) activated(active bool, fn func()) {
	s := ip.Logger.Enter()
	defer s.Close()
	if active {
		prev := ip.Logger.mode
		ip.Logger.mode = LogAll
		defer func() { ip.Logger.mode = prev }()
	}
	fn()
}

func kindsOf(vs []Value) []Kind {
	out := make([]Kind, len(vs))
	for i, v := range vs {
		out[i] = v.Kind
	}
	return out
}

func (ip *Interpreter) resolveAll(atoms []exprAtom) ([]Value, error) {
	out := make([]Value, 0, len(atoms))
	for _, a := range atoms {
		v, err := ip.resolveAtom(a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// resolveAtom turns an unresolved expr atom into a Value: an identifier is
// looked up in the environment (RefError if unbound), a bareword or
// regex-charset atom is parsed as a Regex, and a number is an Int.
func (ip *Interpreter) resolveAtom(a exprAtom) (Value, error) {
	switch a.kind {
	case atomID:
		v, ok := ip.env[a.text]
		if !ok {
			return Value{}, refErrorf(a.line, "identifier %q used before binding", a.text)
		}
		return v, nil
	case atomRegex:
		r, err := regex.Parse(a.text)
		if err != nil {
			return Value{}, parseErrorf(a.line, "invalid regex %q: %s", a.text, err.Error())
		}
		return Value{Kind: KindRegex, Regex: r}, nil
	case atomNumber:
		return Value{Kind: KindInt, Int: a.number}, nil
	case atomFilename:
		return Value{}, typeErrorf(a.line, "a filename may not be used as an expression value")
	default:
		return Value{}, typeErrorf(a.line, "unrecognised argument")
	}
}

// asAutomaton coerces a resolved language value (Regex, NFA, or DFA) to a
// concrete automaton for the Tester, constructing one via Thompson's
// construction when given a bare Regex: it is the cheapest construction
// that always terminates and never raises the alphabet's linearization/
// annotation tags, so it is the natural default here.
func (ip *Interpreter) asAutomaton(v Value, line int) (*automaton.FA, error) {
	switch v.Kind {
	case KindNFA, KindDFA:
		return v.FA, nil
	case KindRegex:
		return regex.Thompson(v.Regex), nil
	default:
		return nil, typeErrorf(line, "Test's language must be a Regex, NFA, or DFA, got %s", v.Kind)
	}
}
