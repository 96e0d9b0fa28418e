// Command regexc compiles a single regular expression into a standalone Go
// matcher file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/relabs-tech/regexc/pkg/regex"
)

// arrayFlags collects repeated occurrences of a string flag.
type arrayFlags []string

func (f *arrayFlags) String() string {
	return strings.Join(*f, ", ")
}

func (f *arrayFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("regexc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	pattern := fs.String("pattern", "", "regular expression to compile (required)")
	name := fs.String("name", "", "identifier prefix for the generated type (required)")
	pkg := fs.String("package", "main", "Go package name for the generated file")
	out := fs.String("out", "", "output file path (required)")
	strategyFlag := fs.String("strategy", "flags", "emission strategy: flags or activeset")
	verbose := fs.Bool("verbose", false, "log compilation decisions to stderr")
	genTest := fs.Bool("gen-test", false, "also emit a _test.go comparing the matcher against regexp")
	var testInputs arrayFlags
	fs.Var(&testInputs, "test", "input to exercise in the generated test file (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var strategy regex.Strategy
	switch *strategyFlag {
	case "flags":
		strategy = regex.FlagVector
	case "activeset":
		strategy = regex.ActiveSet
	default:
		fmt.Fprintf(stderr, "regexc: unknown strategy %q (want flags or activeset)\n", *strategyFlag)
		return 2
	}

	result, err := regex.Compile(regex.Options{
		Pattern:          *pattern,
		Name:             *name,
		Package:          *pkg,
		OutputFile:       *out,
		Strategy:         strategy,
		GenerateTestFile: *genTest || len(testInputs) > 0,
		TestFileInputs:   testInputs,
		Verbose:          *verbose,
	})
	if err != nil {
		fmt.Fprintf(stderr, "regexc: %v\n", err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(stderr, "[regexc] wrote %s (%d states, prefix %q)\n", *out, result.StateCount, result.Prefix)
	}
	return 0
}
