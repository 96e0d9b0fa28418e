// Package regex compiles a regular expression into a standalone Go source
// file implementing its whole-string matcher.
package regex

import (
	"fmt"

	"github.com/relabs-tech/regexc/internal/codegen"
	"github.com/relabs-tech/regexc/internal/nfa"
	"github.com/relabs-tech/regexc/internal/regexast"
	"github.com/relabs-tech/regexc/internal/token"
)

// Strategy selects one of the two code-emission shapes.
type Strategy = codegen.Strategy

const (
	// FlagVector emits a bool-per-state array advanced each rune.
	FlagVector = codegen.FlagVector
	// ActiveSet emits a fixed-capacity live-state array with a generation counter.
	ActiveSet = codegen.ActiveSet
)

// Options configures the regex compilation process.
type Options struct {
	// Pattern is the regular expression to compile.
	Pattern string

	// Name is the identifier prefix for the generated type (e.g. "Email"
	// generates "type Email struct{}" and "CompiledEmail").
	Name string

	// Package is the Go package name for the generated code.
	Package string

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// Strategy selects the code-emission shape. Defaults to FlagVector.
	Strategy Strategy

	// GenerateTestFile generates a test file comparing the matcher
	// against the standard library's regexp package.
	GenerateTestFile bool

	// TestFileInputs is the set of inputs exercised by the generated
	// test. If empty and GenerateTestFile is true, defaults to []string{""}.
	TestFileInputs []string

	// Verbose enables logging of compilation decisions to stderr.
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// CompileResult reports facts about the compiled matcher useful to callers
// that want to log or assert on compilation without parsing generated code.
type CompileResult struct {
	// StateCount is the number of states in the simplified NFA.
	StateCount int
	// Prefix is the literal prefix extracted during simplification, if any.
	Prefix string
}

// ErrorKind identifies which compilation stage a CompileError came from.
type ErrorKind int

const (
	// KindLex means the error was detected while tokenizing the pattern.
	KindLex ErrorKind = iota
	// KindParse means the error was detected while parsing the token stream.
	KindParse
	// KindOther covers option validation and code-generation failures.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindLex:
		return "lex error"
	case KindParse:
		return "parse error"
	default:
		return "error"
	}
}

// CompileError is returned by Compile when the pattern itself is invalid;
// it wraps the internal lex/parse error taxonomy with a public, stable
// representation.
type CompileError struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regex: %s at byte %d: %s", e.Kind, e.Offset, e.Message)
}

// Compile parses and compiles pattern and writes the generated matcher (and,
// if requested, a test file) to opts.OutputFile.
func Compile(opts Options) (CompileResult, error) {
	if err := opts.Validate(); err != nil {
		return CompileResult{}, fmt.Errorf("invalid options: %w", err)
	}

	toks, err := token.Lex(opts.Pattern)
	if err != nil {
		if le, ok := err.(*token.LexError); ok {
			return CompileResult{}, &CompileError{Kind: KindLex, Offset: le.Offset, Message: le.Error()}
		}
		return CompileResult{}, &CompileError{Kind: KindOther, Message: err.Error()}
	}

	ast, err := regexast.Parse(toks)
	if err != nil {
		if pe, ok := err.(*regexast.ParseError); ok {
			return CompileResult{}, &CompileError{Kind: KindParse, Offset: pe.Offset, Message: pe.Error()}
		}
		return CompileResult{}, &CompileError{Kind: KindOther, Message: err.Error()}
	}

	n := nfa.Simplify(nfa.Build(ast))

	e := codegen.New(codegen.Config{
		Pattern:          opts.Pattern,
		Name:             opts.Name,
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		Strategy:         opts.Strategy,
		GenerateTestFile: opts.GenerateTestFile,
		TestFileInputs:   opts.TestFileInputs,
		Verbose:          opts.Verbose,
	})

	if err := e.Generate(n); err != nil {
		return CompileResult{}, fmt.Errorf("failed to generate code: %w", err)
	}

	return CompileResult{StateCount: len(n.States), Prefix: n.Prefix}, nil
}
