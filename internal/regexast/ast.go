// Package regexast turns a token stream into the regex abstract syntax
// tree consumed by the NFA builder.
package regexast

import "github.com/relabs-tech/regexc/internal/token"

// Node is the AST of a parsed pattern. The concrete variants are AnyChar,
// Literal, CharClass, UnicodeClass, Concat, Alt, Rep, and Empty.
type Node interface {
	isNode()
}

// AnyChar matches any single code point.
type AnyChar struct{}

// Literal matches exactly one code point.
type Literal struct {
	Rune rune
}

// CharClass matches a code point falling in (or, if Negated, outside) the
// union of Ranges.
type CharClass struct {
	Ranges  []token.RuneRange
	Negated bool
}

// UnicodeClass matches a code point belonging to (or, if Negated, outside)
// any of the named general categories.
type UnicodeClass struct {
	Categories []string
	Negated    bool
}

// Concat matches its elements one after another. Always has length >= 2;
// a parsed sequence of one element is represented by that element directly.
type Concat struct {
	Elems []Node
}

// Alt matches any one of its alternatives. Always has length >= 2, and no
// element is itself an Alt (nested alternations are flattened during
// parsing).
type Alt struct {
	Elems []Node
}

// Rep matches Base repeated between Min and Max times inclusive. Max may
// be token.Unbounded.
type Rep struct {
	Base     Node
	Min, Max int
}

// Empty matches only the empty string. It is the lowering of a pattern (or
// group) containing no tokens at all.
type Empty struct{}

func (AnyChar) isNode()      {}
func (Literal) isNode()      {}
func (CharClass) isNode()    {}
func (UnicodeClass) isNode() {}
func (Concat) isNode()       {}
func (Alt) isNode()          {}
func (Rep) isNode()          {}
func (Empty) isNode()        {}
