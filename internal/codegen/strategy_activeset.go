package codegen

import (
	"github.com/dave/jennifer/jen"
	"github.com/relabs-tech/regexc/internal/nfa"
)

// emitActiveSet renders spec.md §4.E's Strategy 2 body: a fixed-capacity
// array of live state ids plus a generation-stamped dedup array, avoiding
// both the O(states) per-step scan of Strategy 1 and any heap allocation.
func emitActiveSet(n *nfa.NFA, inputVar string) []jen.Code {
	size := len(n.States)

	var stmts []jen.Code
	stmts = append(stmts, jen.Var().Id(CurName).Index(jen.Lit(size)).Int())
	stmts = append(stmts, jen.Id(CurLenName).Op(":=").Lit(0))
	for _, s := range sortedInts(n.Start) {
		stmts = append(stmts,
			jen.Id(CurName).Index(jen.Id(CurLenName)).Op("=").Lit(s),
			jen.Id(CurLenName).Op("++"),
		)
	}
	stmts = append(stmts, jen.Var().Id(StampName).Index(jen.Lit(size)).Int())
	stmts = append(stmts, jen.Id(GenName).Op(":=").Lit(0))

	stmts = append(stmts, jen.For(
		jen.List(jen.Id("_"), jen.Id(RuneVarName)).Op(":=").Range().Id(inputVar),
	).Block(activeSetStep(n, size)...))

	stmts = append(stmts, activeSetTerminalCheck(n)...)
	stmts = append(stmts, jen.Return(jen.False()))

	return stmts
}

func activeSetStep(n *nfa.NFA, size int) []jen.Code {
	var body []jen.Code

	var cases []jen.Code
	for _, st := range n.States {
		if len(st.Transitions) == 0 {
			continue
		}
		var inner []jen.Code
		for _, tr := range st.Transitions {
			expr, alwaysTrue := condExpr(RuneVarName, tr.Cond)
			add := activeSetAdd(tr.Target)
			if alwaysTrue {
				inner = append(inner, add...)
				continue
			}
			inner = append(inner, jen.If(expr).Block(add...))
		}
		cases = append(cases, jen.Case(jen.Lit(st.ID)).Block(inner...))
	}
	body = append(body, jen.Switch(jen.Id(CurName).Index(jen.Id("i"))).Block(cases...))

	loop := jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id(CurLenName), jen.Id("i").Op("++")).Block(body...)

	return []jen.Code{
		jen.Id(GenName).Op("++"),
		jen.Var().Id(NxtName).Index(jen.Lit(size)).Int(),
		jen.Id(NxtLenName).Op(":=").Lit(0),
		loop,
		jen.If(jen.Id(NxtLenName).Op("==").Lit(0)).Block(jen.Return(jen.False())),
		jen.List(jen.Id(CurName), jen.Id(CurLenName)).Op("=").List(jen.Id(NxtName), jen.Id(NxtLenName)),
	}
}

// activeSetAdd stamps target into nxt for the current generation if it was
// not already added this step.
func activeSetAdd(target int) []jen.Code {
	return []jen.Code{
		jen.If(jen.Id(StampName).Index(jen.Lit(target)).Op("!=").Id(GenName)).Block(
			jen.Id(StampName).Index(jen.Lit(target)).Op("=").Id(GenName),
			jen.Id(NxtName).Index(jen.Id(NxtLenName)).Op("=").Lit(target),
			jen.Id(NxtLenName).Op("++"),
		),
	}
}

func activeSetTerminalCheck(n *nfa.NFA) []jen.Code {
	terminals := sortedInts(n.Terminal)
	if len(terminals) == 0 {
		return nil
	}
	var lits []jen.Code
	for _, t := range terminals {
		lits = append(lits, jen.Lit(t))
	}
	return []jen.Code{
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id(CurLenName), jen.Id("i").Op("++")).Block(
			jen.Switch(jen.Id(CurName).Index(jen.Id("i"))).Block(
				jen.Case(lits...).Block(jen.Return(jen.True())),
			),
		),
	}
}
