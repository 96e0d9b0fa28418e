package codegen

import (
	"sort"

	"github.com/dave/jennifer/jen"
	"github.com/relabs-tech/regexc/internal/nfa"
)

// emitFlagVector renders spec.md §4.E's Strategy 1 body: a fixed-size bool
// array holding one flag per NFA state, advanced one input rune at a time.
// inputVar names the (already prefix-stripped) string being scanned; the
// returned statements are meant to sit directly inside a bool-returning
// function.
func emitFlagVector(n *nfa.NFA, inputVar string) []jen.Code {
	size := len(n.States)

	var stmts []jen.Code
	stmts = append(stmts, jen.Var().Id(ActiveName).Index(jen.Lit(size)).Bool())
	for _, s := range sortedInts(n.Start) {
		stmts = append(stmts, jen.Id(ActiveName).Index(jen.Lit(s)).Op("=").True())
	}

	stmts = append(stmts, jen.For(
		jen.List(jen.Id("_"), jen.Id(RuneVarName)).Op(":=").Range().Id(inputVar),
	).Block(flagVectorStep(n, size)...))

	for _, t := range sortedInts(n.Terminal) {
		stmts = append(stmts, jen.If(jen.Id(ActiveName).Index(jen.Lit(t))).Block(
			jen.Return(jen.True()),
		))
	}
	stmts = append(stmts, jen.Return(jen.False()))

	return stmts
}

func flagVectorStep(n *nfa.NFA, size int) []jen.Code {
	var body []jen.Code
	body = append(body, jen.Var().Id(NextName).Index(jen.Lit(size)).Bool())
	body = append(body, jen.Id(AnyName).Op(":=").False())

	for _, st := range n.States {
		if len(st.Transitions) == 0 {
			continue
		}
		var inner []jen.Code
		for _, tr := range st.Transitions {
			expr, alwaysTrue := condExpr(RuneVarName, tr.Cond)
			mark := []jen.Code{
				jen.Id(NextName).Index(jen.Lit(tr.Target)).Op("=").True(),
				jen.Id(AnyName).Op("=").True(),
			}
			if alwaysTrue {
				inner = append(inner, mark...)
				continue
			}
			inner = append(inner, jen.If(expr).Block(mark...))
		}
		body = append(body, jen.If(jen.Id(ActiveName).Index(jen.Lit(st.ID))).Block(inner...))
	}

	// Reject early when no flag is set: no suffix of the input can ever
	// make a dead state live again.
	body = append(body, jen.If(jen.Op("!").Id(AnyName)).Block(jen.Return(jen.False())))
	body = append(body, jen.Id(ActiveName).Op("=").Id(NextName))

	return body
}

func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
