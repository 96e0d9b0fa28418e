package regexast

import "github.com/relabs-tech/regexc/internal/token"

// pkind discriminates the partially-parsed node shapes the parser's staged
// passes produce and consume, before lowering to Node.
type pkind int

const (
	pLexed pkind = iota
	pGroup
	pRepetition
	pAlternation
)

// pnode is the transient representation described in spec.md §3: a raw
// token, a group of sibling nodes, a repetition wrapping a base node, or
// an alternation of sibling nodes. Each pass below narrows the tree by
// consuming some tokens/shape and producing the next.
type pnode struct {
	kind pkind

	tok token.Token // pLexed

	children []*pnode // pGroup, pAlternation

	base     *pnode // pRepetition
	min, max int     // pRepetition
}
