package regex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompileValidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"simple", "abc"},
		{"digits", `\d{4}-\d{2}-\d{2}`},
		{"star", "a*"},
		{"bounded", "(ab|cd){2,3}"},
		{"negatedClass", `[^0-9]+`},
		{"unicode", `\pL+`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			outputFile := filepath.Join(tmpDir, "matcher.go")

			result, err := Compile(Options{
				Pattern:    tt.pattern,
				Name:       "Gen",
				Package:    "gen",
				OutputFile: outputFile,
			})
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			if result.StateCount == 0 {
				t.Errorf("Compile(%q) reported zero states", tt.pattern)
			}
			if _, err := os.Stat(outputFile); err != nil {
				t.Errorf("output file not written: %v", err)
			}
		})
	}
}

func TestCompileActiveSetStrategy(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "matcher.go")

	_, err := Compile(Options{
		Pattern:    "a+b*",
		Name:       "Gen",
		Package:    "gen",
		OutputFile: outputFile,
		Strategy:   ActiveSet,
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	src, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(src), "gen") {
		t.Errorf("output missing package name:\n%s", src)
	}
}

func TestCompileLexError(t *testing.T) {
	tmpDir := t.TempDir()
	_, err := Compile(Options{
		Pattern:    "a{",
		Name:       "Gen",
		Package:    "gen",
		OutputFile: filepath.Join(tmpDir, "matcher.go"),
	})
	if err == nil {
		t.Fatal("expected a lex error, got nil")
	}
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Kind != KindLex {
		t.Errorf("Kind = %v, want KindLex", ce.Kind)
	}
}

func TestCompileParseError(t *testing.T) {
	tmpDir := t.TempDir()
	_, err := Compile(Options{
		Pattern:    "(a",
		Name:       "Gen",
		Package:    "gen",
		OutputFile: filepath.Join(tmpDir, "matcher.go"),
	})
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Kind != KindParse {
		t.Errorf("Kind = %v, want KindParse", ce.Kind)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"missing pattern", Options{Name: "X", Package: "p", OutputFile: "o.go"}, false},
		{"missing name", Options{Pattern: "a", Package: "p", OutputFile: "o.go"}, false},
		{"missing package", Options{Pattern: "a", Name: "X", OutputFile: "o.go"}, false},
		{"missing output", Options{Pattern: "a", Name: "X", Package: "p"}, false},
		{"complete", Options{Pattern: "a", Name: "X", Package: "p", OutputFile: "o.go"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
