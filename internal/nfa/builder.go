package nfa

import (
	"github.com/relabs-tech/regexc/internal/regexast"
	"github.com/relabs-tech/regexc/internal/token"
)

// Build performs Thompson-style construction (spec.md §4.C): it allocates
// a single terminal state, then calls the recursive build(node, target)
// with that terminal as target; the returned id becomes the sole start
// state.
func Build(root regexast.Node) *NFA {
	b := &builder{}
	terminal := b.newState("terminal")
	start := b.build(root, terminal)
	return &NFA{
		States:   b.states,
		Start:    map[int]bool{start: true},
		Terminal: map[int]bool{terminal: true},
	}
}

type builder struct {
	states []State
}

func (b *builder) newState(label string) int {
	id := len(b.states)
	b.states = append(b.states, State{ID: id, Label: label})
	return id
}

func (b *builder) addTransition(s, target int, cond Condition) {
	b.states[s].Transitions = append(b.states[s].Transitions, Transition{Target: target, Cond: cond})
}

// build produces the states for node and returns the id of its entry
// state: entering that state and walking transitions consistent with
// node's language always leads to target.
func (b *builder) build(node regexast.Node, target int) int {
	switch n := node.(type) {
	case regexast.Empty:
		return target
	case regexast.AnyChar:
		s := b.newState("AnyChar")
		b.addTransition(s, target, Condition{Kind: CondAnyChar})
		return s
	case regexast.Literal:
		s := b.newState("Literal")
		b.addTransition(s, target, Condition{Kind: CondLiteral, Rune: n.Rune})
		return s
	case regexast.CharClass:
		s := b.newState("CharClass")
		b.addTransition(s, target, Condition{Kind: CondCharClass, Ranges: n.Ranges, Negated: n.Negated})
		return s
	case regexast.UnicodeClass:
		s := b.newState("UnicodeClass")
		b.addTransition(s, target, Condition{Kind: CondUnicodeClass, Categories: n.Categories, Negated: n.Negated})
		return s
	case regexast.Concat:
		t := target
		for i := len(n.Elems) - 1; i >= 0; i-- {
			t = b.build(n.Elems[i], t)
		}
		return t
	case regexast.Alt:
		s := b.newState("Alt")
		for _, elem := range n.Elems {
			branch := b.build(elem, target)
			b.addTransition(s, branch, Condition{Kind: CondEpsilon})
		}
		return s
	case regexast.Rep:
		return b.buildRep(n, target)
	}
	panic("nfa: unreachable AST node kind in build")
}

// buildRep implements the four repetition cases of spec.md §4.C.
func (b *builder) buildRep(n regexast.Rep, target int) int {
	if n.Min == 0 && n.Max == 0 {
		return target
	}
	if n.Max == token.Unbounded {
		return b.buildUnboundedRep(n.Base, n.Min, target)
	}
	return b.buildBoundedRep(n.Base, n.Min, n.Max, target)
}

// buildUnboundedRep handles max = ∞ (including the min = 0 special case,
// which falls out of the general construction with zero mandatory
// copies): a loop head L self-loops through one base occurrence and has
// an ε-exit to target; min mandatory copies chain in front of L.
func (b *builder) buildUnboundedRep(base regexast.Node, min int, target int) int {
	loop := b.newState("RepLoop")
	selfEntry := b.build(base, loop)
	b.addTransition(loop, target, Condition{Kind: CondEpsilon})
	b.addTransition(loop, selfEntry, Condition{Kind: CondEpsilon})

	entry := loop
	for i := 0; i < min; i++ {
		entry = b.build(base, entry)
	}
	return entry
}

// buildBoundedRep handles a finite max: min mandatory copies, then
// max-min optional copies, each of which gets an extra ε-transition
// straight to the outer target so it can be skipped.
func (b *builder) buildBoundedRep(base regexast.Node, min, max int, target int) int {
	entry := target
	for i := 0; i < max-min; i++ {
		copyEntry := b.build(base, entry)
		b.addTransition(copyEntry, target, Condition{Kind: CondEpsilon})
		entry = copyEntry
	}
	for i := 0; i < min; i++ {
		entry = b.build(base, entry)
	}
	return entry
}
