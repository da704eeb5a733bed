package automaton

import "github.com/desitas1701/chipollino/internal/util"

// IsOneUnambiguous implements the Brüggemann-Klein/Wood orbit-property test
// for one-unambiguous regular languages: minimize fa, decompose its state
// graph into orbits (maximal strongly-connected components under
// non-epsilon transitions), and require that within every orbit, no two
// distinct states transition to the same in-orbit target on the same
// symbol — i.e. the letter's action restricted to the orbit is injective.
// The result is memoized on the shared Language cache.
func (fa *FA) IsOneUnambiguous() bool {
	if v, ok := fa.cache.OneUnambiguous.Get(); ok {
		return v
	}

	min := fa.Minimize(true)
	orbits := tarjanSCC(min)
	alphabet := min.Alphabet()

	result := true
outer:
	for _, orbit := range orbits {
		if len(orbit) < 2 {
			continue
		}
		members := util.NewIntSet(orbit...)
		for _, a := range alphabet {
			targetCount := map[int]int{}
			for _, p := range orbit {
				t := soleTarget(min.States[p], a)
				if t < 0 || !members.Has(t) {
					continue
				}
				targetCount[t]++
			}
			for _, count := range targetCount {
				if count > 1 {
					result = false
					break outer
				}
			}
		}
	}

	fa.cache.OneUnambiguous.SetOnce(result)
	return result
}

// tarjanSCC decomposes fa's state graph into strongly-connected components
// (orbits), using every outgoing symbol (including epsilon) as an edge.
func tarjanSCC(fa *FA) [][]int {
	n := fa.NumStates()
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	counter := 0
	var comps [][]int

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, targets := range fa.States[v].transitions {
			for w := range targets {
				if index[w] == -1 {
					strongconnect(w)
					if lowlink[w] < lowlink[v] {
						lowlink[v] = lowlink[w]
					}
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
			}
		}

		if lowlink[v] == index[v] {
			var comp []int
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				comp = append(comp, top)
				if top == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}
	return comps
}
