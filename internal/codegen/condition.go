package codegen

import (
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/relabs-tech/regexc/internal/nfa"
	"github.com/relabs-tech/regexc/internal/unicat"
)

// litRune emits a Go rune literal ('a', '\n', ...) rather than the bare
// int32 value jen.Lit would produce for a rune argument, since Go itself
// cannot distinguish rune from int32 at the reflect level jennifer uses.
func litRune(r rune) jen.Code {
	return jen.Op(strconv.QuoteRune(r))
}

// condExpr renders the boolean expression deciding whether a Condition
// matches the rune bound to varName, per spec.md §4.E's matching-
// expression rules: range membership as paired inclusive comparisons,
// single-character matches as equality, Unicode categories via a runtime
// lookup, negation as the negation of the non-negated expression.
// alwaysTrue is set (and expr is nil) when the condition matches every
// rune, so callers can skip the test. CondEpsilon, which never reaches the
// emitter on a simplified NFA, renders as the constant false.
func condExpr(varName string, cond nfa.Condition) (expr jen.Code, alwaysTrue bool) {
	switch cond.Kind {
	case nfa.CondAnyChar:
		return nil, true

	case nfa.CondLiteral:
		return jen.Id(varName).Op("==").Add(litRune(cond.Rune)), false

	case nfa.CondCharClass:
		var terms []jen.Code
		for _, r := range cond.Ranges {
			if r.Lo == r.Hi {
				terms = append(terms, jen.Id(varName).Op("==").Add(litRune(r.Lo)))
				continue
			}
			terms = append(terms, jen.Parens(jen.Id(varName).Op(">=").Add(litRune(r.Lo)).
				Op("&&").Id(varName).Op("<=").Add(litRune(r.Hi))))
		}
		return wrapNegated(orChain(terms), cond.Negated), false

	case nfa.CondUnicodeClass:
		var terms []jen.Code
		for _, code := range cond.Categories {
			if _, ok := unicat.Table(code); !ok {
				continue // e.g. Cn: no stdlib table, never matches
			}
			terms = append(terms, jen.Qual("unicode", "Is").Call(jen.Qual("unicode", code), jen.Id(varName)))
		}
		if len(terms) == 0 {
			// No category in the set has a runtime table: the
			// non-negated condition never matches.
			if cond.Negated {
				return nil, true
			}
			return jen.False(), false
		}
		return wrapNegated(orChain(terms), cond.Negated), false
	}

	return jen.False(), false
}

func orChain(terms []jen.Code) jen.Code {
	if len(terms) == 0 {
		return jen.False()
	}
	stmt := jen.Add(terms[0])
	for _, t := range terms[1:] {
		stmt = stmt.Op("||").Add(t)
	}
	return stmt
}

func wrapNegated(expr jen.Code, negated bool) jen.Code {
	if !negated {
		return expr
	}
	return jen.Op("!").Parens(expr)
}
