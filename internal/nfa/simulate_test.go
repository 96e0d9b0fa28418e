package nfa

import "github.com/relabs-tech/regexc/internal/unicat"

// accepts walks n directly (epsilon-closure each step, so it works on both
// pre- and post-simplification automata) to check whole-string acceptance.
// It exists only to let tests assert language equivalence; it has no
// relationship to either emitter strategy.
//
// n.Prefix is checked first and stripped before simulation, the same way
// codegen.Emitter.matchBody's literal-prefix prologue gates the generated
// matcher: Simplify's extraction phase moves matched literal characters out
// of the graph into n.Prefix, so language(n) is only the tail language —
// accepts(n, input) must hold language(n.Prefix)·language(n's graph) to
// mean the same thing before and after simplification (spec.md §8).
func accepts(n *NFA, input string) bool {
	if len(input) < len(n.Prefix) || input[:len(n.Prefix)] != n.Prefix {
		return false
	}
	rest := input[len(n.Prefix):]

	cur := epsilonClosureOfSet(n, n.Start)
	for _, r := range rest {
		next := map[int]bool{}
		for s := range cur {
			for _, tr := range n.States[s].Transitions {
				if tr.Cond.Kind == CondEpsilon {
					continue
				}
				if matchCond(tr.Cond, r) {
					next[tr.Target] = true
				}
			}
		}
		cur = epsilonClosureOfSet(n, next)
	}
	for s := range cur {
		if n.Terminal[s] {
			return true
		}
	}
	return false
}

func epsilonClosureOfSet(n *NFA, set map[int]bool) map[int]bool {
	result := map[int]bool{}
	var stack []int
	for s := range set {
		result[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, tr := range n.States[cur].Transitions {
			if tr.Cond.Kind == CondEpsilon && !result[tr.Target] {
				result[tr.Target] = true
				stack = append(stack, tr.Target)
			}
		}
	}
	return result
}

func matchCond(c Condition, r rune) bool {
	var in bool
	switch c.Kind {
	case CondAnyChar:
		return true
	case CondLiteral:
		return c.Rune == r
	case CondCharClass:
		for _, rg := range c.Ranges {
			if r >= rg.Lo && r <= rg.Hi {
				in = true
				break
			}
		}
	case CondUnicodeClass:
		in = unicat.Match(r, c.Categories)
	default:
		return false
	}
	if c.Negated {
		return !in
	}
	return in
}
