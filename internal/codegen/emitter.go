// Package codegen turns a simplified NFA into a standalone Go source file
// implementing its whole-string matcher, using jennifer to build the
// generated AST and go/format to canonicalize the result.
package codegen

import (
	"fmt"
	"go/format"
	"os"

	"github.com/dave/jennifer/jen"
	"github.com/relabs-tech/regexc/internal/nfa"
)

// Strategy selects one of spec.md §4.E's two code-emission shapes.
type Strategy int

const (
	// FlagVector emits a bool-per-state array advanced each rune (Strategy 1).
	FlagVector Strategy = iota
	// ActiveSet emits a fixed-capacity live-state array with a generation
	// counter for dedup, avoiding the full per-state scan (Strategy 2).
	ActiveSet
)

func (s Strategy) String() string {
	switch s {
	case FlagVector:
		return "flag-vector"
	case ActiveSet:
		return "active-set"
	default:
		return "unknown"
	}
}

// Config holds the configuration for a single matcher's code generation.
type Config struct {
	Pattern          string
	Name             string
	Package          string
	OutputFile       string
	Strategy         Strategy
	GenerateTestFile bool
	TestFileInputs   []string
	Verbose          bool
}

// Emitter generates a Go matcher type from a simplified NFA.
type Emitter struct {
	config Config
	file   *jen.File
	logger *Logger
}

// New creates an Emitter for the given configuration.
func New(config Config) *Emitter {
	return &Emitter{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (e *Emitter) method(name string) *jen.Statement {
	return e.file.Func().
		Params(jen.Id(e.config.Name)).
		Id(name)
}

// Generate writes the matcher for n to Config.OutputFile.
func (e *Emitter) Generate(n *nfa.NFA) error {
	e.logger.Section("Code Generation")
	e.logger.Log("Pattern: %s", e.config.Pattern)
	e.logger.Log("States: %d", len(n.States))
	e.logger.Log("Literal prefix: %q", n.Prefix)
	e.logger.Log("Strategy: %s", e.config.Strategy)

	e.file.Comment(fmt.Sprintf("Code generated by regexc for pattern: %s", e.config.Pattern))
	e.file.Comment("DO NOT EDIT.")
	e.file.Line()

	e.file.Type().Id(e.config.Name).Struct()
	e.file.Line()

	e.file.Var().Id(fmt.Sprintf("Compiled%s", e.config.Name)).Op("=").Id(e.config.Name).Values()
	e.file.Line()

	e.method("Match").
		Params(jen.Id(InputName).String()).
		Params(jen.Bool()).
		Block(e.matchBody(n)...)

	if err := e.file.Save(e.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(e.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	if e.config.GenerateTestFile {
		if err := e.generateTestFile(n); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// matchBody renders the full body of Match, including the literal-prefix
// prologue shared by both strategies.
func (e *Emitter) matchBody(n *nfa.NFA) []jen.Code {
	if n.IsEmptyLanguage() {
		e.logger.Log("NFA accepts no strings; emitting an always-false matcher")
		return []jen.Code{jen.Return(jen.False())}
	}

	var stmts []jen.Code
	inputVar := InputName

	if n.Prefix != "" {
		plen := len(n.Prefix)
		stmts = append(stmts,
			jen.If(
				jen.Len(jen.Id(InputName)).Op("<").Lit(plen).
					Op("||").
					Id(InputName).Index(jen.Empty(), jen.Lit(plen)).Op("!=").Lit(n.Prefix),
			).Block(jen.Return(jen.False())),
			jen.Id(RestName).Op(":=").Id(InputName).Index(jen.Lit(plen), jen.Empty()),
		)
		inputVar = RestName
	}

	switch e.config.Strategy {
	case ActiveSet:
		stmts = append(stmts, emitActiveSet(n, inputVar)...)
	default:
		stmts = append(stmts, emitFlagVector(n, inputVar)...)
	}

	return stmts
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}
