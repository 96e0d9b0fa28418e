package nfa

import "strings"

// Simplify runs the five fixed phases of spec.md §4.D, in order, over a
// freshly built NFA and returns a new, independent NFA; the input is not
// mutated.
func Simplify(n *NFA) *NFA {
	out := &NFA{
		States:   append([]State(nil), n.States...),
		Start:    copySet(n.Start),
		Terminal: copySet(n.Terminal),
		Prefix:   n.Prefix,
	}

	extractLiteralPrefix(out)
	dedupeTransitions(out)
	eliminateEpsilon(out)
	dedupeTransitions(out)
	pruneDeadStates(out)

	return out
}

func copySet(m map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// extractLiteralPrefix runs phase 1: while there is exactly one start
// state with exactly one outgoing Literal transition, the literal joins
// the prefix and the start advances to its target.
func extractLiteralPrefix(n *NFA) {
	var prefix strings.Builder
	for len(n.Start) == 1 {
		var s int
		for id := range n.Start {
			s = id
		}
		trs := n.States[s].Transitions
		if len(trs) != 1 || trs[0].Cond.Kind != CondLiteral {
			break
		}
		prefix.WriteRune(trs[0].Cond.Rune)
		n.Start = map[int]bool{trs[0].Target: true}
	}
	n.Prefix = prefix.String()
}

// dedupeTransitions runs phases 2 and 4: per state, drop transitions that
// are structurally identical (same target, same condition) to one already
// kept.
func dedupeTransitions(n *NFA) {
	for i := range n.States {
		var out []Transition
		for _, tr := range n.States[i].Transitions {
			dup := false
			for _, kept := range out {
				if kept.Target == tr.Target && kept.Cond.Equal(tr.Cond) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, tr)
			}
		}
		n.States[i].Transitions = out
	}
}

// eliminateEpsilon runs phase 3: every non-ε transition reachable from a
// state via zero or more ε-transitions is copied directly onto that
// state, the ε-transitions themselves are dropped, and terminality and
// the start set are recomputed through the same ε-reach relation.
func eliminateEpsilon(n *NFA) {
	epsReach := make([]map[int]bool, len(n.States))
	for i := range n.States {
		epsReach[i] = epsilonReach(n, i)
	}

	newStates := make([]State, len(n.States))
	for i := range n.States {
		newStates[i] = State{ID: n.States[i].ID, Label: n.States[i].Label}
		var trs []Transition
		for r := range epsReach[i] {
			for _, tr := range n.States[r].Transitions {
				if tr.Cond.Kind == CondEpsilon {
					continue
				}
				trs = append(trs, tr)
			}
		}
		newStates[i].Transitions = trs
	}

	newStart := map[int]bool{}
	for s := range n.Start {
		for r := range epsReach[s] {
			newStart[r] = true
		}
	}

	newTerminal := map[int]bool{}
	for i := range n.States {
		for r := range epsReach[i] {
			if n.Terminal[r] {
				newTerminal[i] = true
				break
			}
		}
	}

	n.States = newStates
	n.Start = newStart
	n.Terminal = newTerminal
}

func epsilonReach(n *NFA, start int) map[int]bool {
	reach := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, tr := range n.States[cur].Transitions {
			if tr.Cond.Kind == CondEpsilon && !reach[tr.Target] {
				reach[tr.Target] = true
				stack = append(stack, tr.Target)
			}
		}
	}
	return reach
}

// pruneDeadStates runs phase 5: keep only states both reachable from the
// start set and able to reach a terminal state, then renumber compactly.
func pruneDeadStates(n *NFA) {
	forward := reachableForward(n, n.Start)
	backward := reachableBackward(n, n.Terminal)

	keep := map[int]bool{}
	for id := range forward {
		if backward[id] {
			keep[id] = true
		}
	}

	oldToNew := map[int]int{}
	var newStates []State
	for _, st := range n.States {
		if !keep[st.ID] {
			continue
		}
		newID := len(newStates)
		oldToNew[st.ID] = newID
		newStates = append(newStates, State{ID: newID, Label: st.Label})
	}
	for _, st := range n.States {
		if !keep[st.ID] {
			continue
		}
		newID := oldToNew[st.ID]
		var trs []Transition
		for _, tr := range st.Transitions {
			if !keep[tr.Target] {
				continue
			}
			trs = append(trs, Transition{Target: oldToNew[tr.Target], Cond: tr.Cond})
		}
		newStates[newID].Transitions = trs
	}

	newStart := map[int]bool{}
	for s := range n.Start {
		if keep[s] {
			newStart[oldToNew[s]] = true
		}
	}
	newTerminal := map[int]bool{}
	for t := range n.Terminal {
		if keep[t] {
			newTerminal[oldToNew[t]] = true
		}
	}

	n.States = newStates
	n.Start = newStart
	n.Terminal = newTerminal
}

func reachableForward(n *NFA, start map[int]bool) map[int]bool {
	visited := map[int]bool{}
	var stack []int
	for s := range start {
		visited[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, tr := range n.States[cur].Transitions {
			if !visited[tr.Target] {
				visited[tr.Target] = true
				stack = append(stack, tr.Target)
			}
		}
	}
	return visited
}

func reachableBackward(n *NFA, terminal map[int]bool) map[int]bool {
	rev := make([][]int, len(n.States))
	for _, st := range n.States {
		for _, tr := range st.Transitions {
			rev[tr.Target] = append(rev[tr.Target], st.ID)
		}
	}

	visited := map[int]bool{}
	var stack []int
	for t := range terminal {
		visited[t] = true
		stack = append(stack, t)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[cur] {
			if !visited[p] {
				visited[p] = true
				stack = append(stack, p)
			}
		}
	}
	return visited
}
