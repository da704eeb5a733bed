package interp

// pruneTarget selects which half of a no-op (producer, consumer) pair the
// pruning pass discards.
type pruneTarget int

const (
	dropConsumer pruneTarget = iota
	dropProducer
)

// pruneRule is one entry of the idempotence-pruning table. Which side is
// dropped is grounded in what the two real implementations actually do, not
// guessed: Minimize already determinizes its input (automaton/minimize.go),
// so a Determinize immediately before it is the redundant half, and its
// output is already deterministic, so a Determinize immediately after it is
// just as redundant; Glushkov and IlieYu already linearize their input
// (regex/glushkov.go), so a preceding explicit Linearize is redundant;
// Determinize.Determinize, Minimize.Minimize, and Determinize.Annote are
// redundant in the other direction — repeating (or annotating an
// already-deterministic automaton) changes nothing, so the later call is
// the one dropped.
var pruneRules = []struct {
	producer, consumer string
	drop               pruneTarget
}{
	{"Determinize", "Determinize", dropConsumer},
	{"Determinize", "Minimize", dropProducer},
	{"Minimize", "Determinize", dropConsumer},
	{"Determinize", "Annote", dropConsumer},
	{"Minimize", "Minimize", dropConsumer},
	{"Linearize", "Glushkov", dropProducer},
	{"Linearize", "IlieYu", dropProducer},
}

// selfIdempotentExcluded are the functions excluded from the blanket "f then
// f is a no-op" rule: reversing or complementing twice is not generally a
// no-op in the automaton's concrete representation.
var selfIdempotentExcluded = map[string]bool{"Reverse": true, "Complement": true}

// pruneIdempotent repeatedly scans adjacent (producer, consumer) pairs in
// execution order (leftmost applies first) and drops the redundant half of
// any no-op pair, restarting after each removal since a drop can create a
// new adjacency. names is execution order, not source order.
func pruneIdempotent(names []string) []string {
	out := append([]string{}, names...)
	for {
		changed := false
		for i := 0; i+1 < len(out); i++ {
			producer, consumer := out[i], out[i+1]
			drop, ok := matchRule(producer, consumer)
			if !ok {
				continue
			}
			if drop == dropConsumer {
				out = append(out[:i+1], out[i+2:]...)
			} else {
				out = append(out[:i], out[i+1:]...)
			}
			changed = true
			break
		}
		if !changed {
			return out
		}
	}
}

func matchRule(producer, consumer string) (pruneTarget, bool) {
	for _, r := range pruneRules {
		if r.producer == producer && r.consumer == consumer {
			return r.drop, true
		}
	}
	if producer == consumer && !selfIdempotentExcluded[producer] {
		if _, known := opTable[producer]; known {
			return dropConsumer, true
		}
	}
	return 0, false
}

// resolvedCall is one planned evaluation step: the chosen overload plus
// (for all but the first call) an implicit single argument taken from the
// previous step's output.
type resolvedCall struct {
	sig opSignature
}

// plan resolves sourceOrderNames (as written left-to-right, outermost
// first; the rightmost applies first) plus the initial argument kinds into a concrete, ordered
// list of resolved signatures, or fails with a PlanError/TypeError. The
// planner never evaluates; it only resolves overloads and prunes redundant
// steps.
func plan(line int, sourceOrderNames []string, argKinds []Kind) ([]resolvedCall, error) {
	// Rightmost written function applies first: reverse to get execution
	// order.
	exec := make([]string, len(sourceOrderNames))
	for i := range sourceOrderNames {
		exec[i] = sourceOrderNames[len(sourceOrderNames)-1-i]
	}
	exec = pruneIdempotent(exec)

	if len(exec) == 0 {
		return nil, planErrorf(line, "empty function chain")
	}

	var calls []resolvedCall
	cur := argKinds
	for i, name := range exec {
		overloads, ok := opTable[name]
		if !ok {
			return nil, typeErrorf(line, "unknown function %q", name)
		}
		sig, err := resolveOverload(line, name, overloads, cur)
		if err != nil {
			return nil, err
		}
		calls = append(calls, resolvedCall{sig: sig})
		cur = []Kind{sig.out}
		if i > 0 && len(sig.params) != 1 {
			// a non-unary function may only appear as the first step, since
			// every later step receives exactly one value (the prior
			// step's output).
			return nil, planErrorf(line, "%s takes %d arguments but only the first function in a chain may be n-ary", name, len(sig.params))
		}
	}
	return calls, nil
}

func resolveOverload(line int, name string, overloads []opSignature, argKinds []Kind) (opSignature, error) {
	var candidates []opSignature
	for _, sig := range overloads {
		if len(sig.params) != len(argKinds) {
			continue
		}
		ok := true
		for i, p := range sig.params {
			if !widensTo(argKinds[i], p) {
				ok = false
				break
			}
		}
		if ok {
			candidates = append(candidates, sig)
		}
	}
	switch len(candidates) {
	case 0:
		return opSignature{}, typeErrorf(line, "no overload of %s accepts argument types %v", name, argKinds)
	case 1:
		return candidates[0], nil
	default:
		// Prefer the overload requiring no widening: an exact-kind match
		// beats a DFA→NFA-widened one.
		for _, c := range candidates {
			exact := true
			for i, p := range c.params {
				if p != argKinds[i] {
					exact = false
					break
				}
			}
			if exact {
				return c, nil
			}
		}
		return candidates[0], nil
	}
}
