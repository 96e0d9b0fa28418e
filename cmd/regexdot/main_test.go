package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesDigraph(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "graph.dot")
	var stderr bytes.Buffer

	code := run([]string{"-pattern", "a*b", "-out", out}, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(src), "digraph NFA {") {
		t.Errorf("output doesn't start with digraph header:\n%s", src)
	}
	if !strings.Contains(string(src), "doublecircle") {
		t.Errorf("expected at least one terminal state rendered as doublecircle:\n%s", src)
	}
}

func TestRunSimplifiedFlag(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "graph.dot")
	var stderr bytes.Buffer

	code := run([]string{"-pattern", "a+b*", "-out", out, "-simplified"}, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRunMissingFlags(t *testing.T) {
	var stderr bytes.Buffer
	code := run([]string{"-pattern", "a"}, &stderr)
	if code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}

func TestRunLexError(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "graph.dot")
	var stderr bytes.Buffer

	code := run([]string{"-pattern", "a{", "-out", out}, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
