package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestArrayFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    arrayFlags
		expected string
	}{
		{name: "empty", flags: arrayFlags{}, expected: ""},
		{name: "single", flags: arrayFlags{"abc"}, expected: "abc"},
		{name: "multiple", flags: arrayFlags{"abc", "def", "ghi"}, expected: "abc, def, ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.flags.String()
			if result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestArrayFlagsSet(t *testing.T) {
	var flags arrayFlags

	if err := flags.Set("abc"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 1 || flags[0] != "abc" {
		t.Errorf("Set() = %v, want [\"abc\"]", flags)
	}

	if err := flags.Set("def"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 2 || flags[1] != "def" {
		t.Errorf("Set() = %v, want [\"abc\", \"def\"]", flags)
	}
}

func TestRunSuccess(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "matcher.go")
	var stderr bytes.Buffer

	code := run([]string{"-pattern", "a*b", "-name", "Gen", "-package", "gen", "-out", out}, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRunCompileError(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "matcher.go")
	var stderr bytes.Buffer

	code := run([]string{"-pattern", "a{", "-name", "Gen", "-package", "gen", "-out", out}, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Error("expected an error message on stderr")
	}
}

func TestRunUnknownStrategy(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "matcher.go")
	var stderr bytes.Buffer

	code := run([]string{"-pattern", "a", "-name", "Gen", "-package", "gen", "-out", out, "-strategy", "bogus"}, &stderr)
	if code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}

func TestRunGenTestFile(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "matcher.go")
	var stderr bytes.Buffer

	code := run([]string{
		"-pattern", "a*b", "-name", "Gen", "-package", "gen", "-out", out,
		"-test", "b", "-test", "aab",
	}, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}
	testFile := tmpDir + "/matcher_test.go"
	if _, err := os.Stat(testFile); err != nil {
		t.Errorf("expected generated test file: %v", err)
	}
}
