package regex

// PumpLength returns the pumping-lemma constant for r's language: the state
// count of its minimal DFA (any accepted word at least that long must
// revisit a state, per the Myhill-Nerode bound). Memoized on the shared
// Language cache.
func PumpLength(r *Regex) int {
	if v, ok := r.cache.PumpLength.Get(); ok {
		return v
	}
	min := Thompson(r).Determinize(false).Minimize(true)
	n := min.NumStates()
	r.cache.PumpLength.SetOnce(n)
	return n
}
