// Package nfa builds a Thompson-style NFA from a regex AST and simplifies
// it into the form the code emitter consumes.
package nfa

import "github.com/relabs-tech/regexc/internal/token"

// CondKind discriminates the ways a Transition may match an input code
// point, plus the Epsilon marker for transitions that consume nothing.
type CondKind int

const (
	CondAnyChar CondKind = iota
	CondLiteral
	CondCharClass
	CondUnicodeClass
	CondEpsilon
)

// Condition is the label on a Transition: what a code point must satisfy
// (or, for Epsilon, the absence of any requirement) for the transition to
// be taken.
type Condition struct {
	Kind       CondKind
	Rune       rune
	Ranges     []token.RuneRange
	Negated    bool
	Categories []string
}

// Equal reports structural equality, the notion spec.md §4.D's duplicate
// -transition removal and ε-elimination re-dedupe are defined in terms of.
func (c Condition) Equal(o Condition) bool {
	if c.Kind != o.Kind || c.Negated != o.Negated {
		return false
	}
	switch c.Kind {
	case CondLiteral:
		return c.Rune == o.Rune
	case CondCharClass:
		return sameRanges(c.Ranges, o.Ranges)
	case CondUnicodeClass:
		return sameStrings(c.Categories, o.Categories)
	default: // CondAnyChar, CondEpsilon
		return true
	}
}

func sameRanges(a, b []token.RuneRange) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Transition is one outgoing edge of a State.
type Transition struct {
	Target int
	Cond   Condition
}

// State is one node of the automaton: an id (also its index in NFA.States
// once the id range is dense), a debug label naming the source construct,
// and its outgoing transitions.
type State struct {
	ID          int
	Label       string
	Transitions []Transition
}

// NFA is the automaton produced by Build and consumed by Simplify and the
// code emitter. State ids are dense and index directly into States.
type NFA struct {
	States   []State
	Start    map[int]bool
	Terminal map[int]bool
	Prefix   string
}

// IsEmptyLanguage reports whether the NFA accepts no strings at all: the
// degenerate case spec.md §4.D requires the emitter be able to represent
// as an always-reject matcher.
func (n *NFA) IsEmptyLanguage() bool {
	return len(n.Start) == 0 || len(n.Terminal) == 0
}
