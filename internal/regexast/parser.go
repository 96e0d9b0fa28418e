package regexast

import "github.com/relabs-tech/regexc/internal/token"

// Parse runs the four fixed passes of spec.md §4.B, in precedence order,
// over a lexed token stream and returns the resulting AST.
func Parse(toks []token.Token) (Node, error) {
	root, _, err := group(toks, 0, -1)
	if err != nil {
		return nil, err
	}
	if err := bindRepetitions(root); err != nil {
		return nil, err
	}
	if err := bindAlternations(root); err != nil {
		return nil, err
	}
	return lower(root)
}

// group is pass 1. It scans toks left to right starting at pos, recursing
// on OpenGroup and returning once the matching CloseGroup is consumed (or,
// at the top level, once the stream is exhausted). openOffset is the byte
// offset of the OpenGroup that triggered this recursion, or -1 at the top
// level; it locates an unmatched-open error.
func group(toks []token.Token, pos int, openOffset int) (*pnode, int, error) {
	topLevel := openOffset < 0
	var children []*pnode

	for pos < len(toks) {
		t := toks[pos]
		switch t.Kind {
		case token.OpenGroup:
			child, next, err := group(toks, pos+1, t.Offset)
			if err != nil {
				return nil, 0, err
			}
			children = append(children, child)
			pos = next
		case token.CloseGroup:
			if topLevel {
				return nil, 0, newErr(ErrUnmatchedParen, t.Offset)
			}
			return &pnode{kind: pGroup, children: children}, pos + 1, nil
		default:
			children = append(children, &pnode{kind: pLexed, tok: t})
			pos++
		}
	}

	if !topLevel {
		return nil, 0, newErr(ErrUnmatchedParen, openOffset)
	}
	return &pnode{kind: pGroup, children: children}, pos, nil
}

// bindRepetitions is pass 2, applied recursively at every group level: each
// Rep token binds to its immediately preceding sibling, becoming a
// pRepetition wrapping it.
func bindRepetitions(n *pnode) error {
	if n.kind != pGroup {
		return nil
	}

	out := n.children[:0:0]
	for _, c := range n.children {
		if c.kind == pLexed && c.tok.Kind == token.Rep {
			if len(out) == 0 {
				return newErr(ErrDanglingRepetition, c.tok.Offset)
			}
			prev := out[len(out)-1]
			if prev.kind == pRepetition {
				return newErr(ErrRepetitionOfRepetition, c.tok.Offset)
			}
			out[len(out)-1] = &pnode{kind: pRepetition, base: prev, min: c.tok.Min, max: c.tok.Max}
			continue
		}
		out = append(out, c)
	}
	n.children = out

	for _, c := range n.children {
		switch c.kind {
		case pGroup:
			if err := bindRepetitions(c); err != nil {
				return err
			}
		case pRepetition:
			if c.base.kind == pGroup {
				if err := bindRepetitions(c.base); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bindAlternations is pass 3, applied recursively at every group level
// (over the output of pass 2): the sibling sequence is split on Alt
// tokens into partitions, each becoming one alternative. A single-sibling
// partition is used directly; an alternative that is itself an
// Alternation (from a nested group) is inlined rather than nested.
func bindAlternations(n *pnode) error {
	if n.kind != pGroup {
		return nil
	}

	var partitions [][]*pnode
	var cur []*pnode
	sawAlt := false
	lastAltOffset := 0

	for _, c := range n.children {
		if c.kind == pLexed && c.tok.Kind == token.Alt {
			if len(cur) == 0 {
				return newErr(ErrEmptyAlternative, c.tok.Offset)
			}
			partitions = append(partitions, cur)
			cur = nil
			sawAlt = true
			lastAltOffset = c.tok.Offset
			continue
		}
		cur = append(cur, c)
	}

	if !sawAlt {
		for _, c := range n.children {
			if err := recurseAltBinding(c); err != nil {
				return err
			}
		}
		return nil
	}

	if len(cur) == 0 {
		return newErr(ErrEmptyAlternative, lastAltOffset)
	}
	partitions = append(partitions, cur)

	var alternatives []*pnode
	for _, part := range partitions {
		var alt *pnode
		if len(part) == 1 {
			alt = part[0]
		} else {
			alt = &pnode{kind: pGroup, children: part}
		}
		if err := recurseAltBinding(alt); err != nil {
			return err
		}
		for alt.kind == pGroup && len(alt.children) == 1 {
			alt = alt.children[0]
		}
		if alt.kind == pAlternation {
			alternatives = append(alternatives, alt.children...)
		} else {
			alternatives = append(alternatives, alt)
		}
	}

	n.kind = pAlternation
	n.children = alternatives
	return nil
}

// recurseAltBinding applies bindAlternations to the nested group a single
// alternative (or a repetition's base) may carry.
func recurseAltBinding(n *pnode) error {
	switch n.kind {
	case pGroup:
		return bindAlternations(n)
	case pRepetition:
		if n.base.kind == pGroup {
			return bindAlternations(n.base)
		}
	}
	return nil
}

// lower is pass 4: the partially-parsed tree becomes the final AST.
func lower(n *pnode) (Node, error) {
	switch n.kind {
	case pLexed:
		return lowerToken(n.tok)
	case pGroup:
		switch len(n.children) {
		case 0:
			return Empty{}, nil
		case 1:
			return lower(n.children[0])
		default:
			elems := make([]Node, len(n.children))
			for i, c := range n.children {
				e, err := lower(c)
				if err != nil {
					return nil, err
				}
				elems[i] = e
			}
			return Concat{Elems: elems}, nil
		}
	case pAlternation:
		elems := make([]Node, len(n.children))
		for i, c := range n.children {
			e, err := lower(c)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return Alt{Elems: elems}, nil
	case pRepetition:
		base, err := lower(n.base)
		if err != nil {
			return nil, err
		}
		return Rep{Base: base, Min: n.min, Max: n.max}, nil
	}
	panic("regexast: unreachable pnode kind in lower")
}

func lowerToken(t token.Token) (Node, error) {
	switch t.Kind {
	case token.AnyChar:
		return AnyChar{}, nil
	case token.Literal:
		return Literal{Rune: t.Rune}, nil
	case token.CharClass:
		return CharClass{Ranges: t.Ranges, Negated: t.Negated}, nil
	case token.UnicodeClass:
		return UnicodeClass{Categories: t.Categories, Negated: t.Negated}, nil
	}
	panic("regexast: unreachable token kind in lowerToken")
}
