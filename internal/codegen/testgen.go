package codegen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/relabs-tech/regexc/internal/nfa"
)

// generateTestFile writes a table test next to the generated matcher that
// cross-checks Compiled<Name>.Match against the standard library's regexp
// package, anchored to whole-string semantics with "^(?:pattern)$".
func (e *Emitter) generateTestFile(n *nfa.NFA) error {
	inputs := e.config.TestFileInputs
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	f := jen.NewFile(e.config.Package)
	f.Comment(fmt.Sprintf("Code generated by regexc for pattern: %s", e.config.Pattern))
	f.Comment("DO NOT EDIT.")
	f.Line()

	var inputLits []jen.Code
	for _, in := range inputs {
		inputLits = append(inputLits, jen.Lit(in))
	}

	f.Func().Id(fmt.Sprintf("Test%sMatch", e.config.Name)).Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("oracle").Op(":=").Qual("regexp", "MustCompile").Call(jen.Lit("^(?:" + e.config.Pattern + ")$")),
		jen.Id("inputs").Op(":=").Index().String().Values(inputLits...),
		jen.For(jen.List(jen.Id("_"), jen.Id("in")).Op(":=").Range().Id("inputs")).Block(
			jen.Id("got").Op(":=").Id(fmt.Sprintf("Compiled%s", e.config.Name)).Dot("Match").Call(jen.Id("in")),
			jen.Id("want").Op(":=").Id("oracle").Dot("MatchString").Call(jen.Id("in")),
			jen.If(jen.Id("got").Op("!=").Id("want")).Block(
				jen.Id("t").Dot("Errorf").Call(
					jen.Lit("Match(%q) = %v, want %v"),
					jen.Id("in"), jen.Id("got"), jen.Id("want"),
				),
			),
		),
	)

	path := testFilePath(e.config.OutputFile)
	if err := f.Save(path); err != nil {
		return err
	}
	return formatFile(path)
}

func testFilePath(outputFile string) string {
	trimmed := strings.TrimSuffix(outputFile, ".go")
	return trimmed + "_test.go"
}
