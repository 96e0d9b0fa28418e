package nfa

import (
	"testing"

	"github.com/relabs-tech/regexc/internal/regexast"
	"github.com/relabs-tech/regexc/internal/token"
)

func mustBuild(t *testing.T, pattern string) *NFA {
	t.Helper()
	toks, err := token.Lex(pattern)
	if err != nil {
		t.Fatalf("Lex(%q) failed: %v", pattern, err)
	}
	ast, err := regexast.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return Build(ast)
}

type acceptCase struct {
	input  string
	accept bool
}

func checkCases(t *testing.T, pattern string, n *NFA, cases []acceptCase) {
	t.Helper()
	for _, c := range cases {
		if got := accepts(n, c.input); got != c.accept {
			t.Errorf("pattern %q, input %q: accepts = %v, want %v", pattern, c.input, got, c.accept)
		}
	}
}

func TestBuildLiteralConcat(t *testing.T) {
	n := mustBuild(t, "abc")
	checkCases(t, "abc", n, []acceptCase{
		{"abc", true},
		{"ab", false},
		{"abcd", false},
		{"", false},
	})
}

func TestBuildAlternation(t *testing.T) {
	n := mustBuild(t, "cat|dog")
	checkCases(t, "cat|dog", n, []acceptCase{
		{"cat", true},
		{"dog", true},
		{"cog", false},
		{"", false},
	})
}

func TestBuildStar(t *testing.T) {
	n := mustBuild(t, "a*")
	checkCases(t, "a*", n, []acceptCase{
		{"", true},
		{"a", true},
		{"aaaa", true},
		{"b", false},
		{"aab", false},
	})
}

func TestBuildPlus(t *testing.T) {
	n := mustBuild(t, "a+")
	checkCases(t, "a+", n, []acceptCase{
		{"", false},
		{"a", true},
		{"aaa", true},
	})
}

func TestBuildOptional(t *testing.T) {
	n := mustBuild(t, "a?")
	checkCases(t, "a?", n, []acceptCase{
		{"", true},
		{"a", true},
		{"aa", false},
	})
}

func TestBuildBoundedRepetition(t *testing.T) {
	n := mustBuild(t, "a{2,3}")
	checkCases(t, "a{2,3}", n, []acceptCase{
		{"", false},
		{"a", false},
		{"aa", true},
		{"aaa", true},
		{"aaaa", false},
	})
}

func TestBuildExactRepetition(t *testing.T) {
	n := mustBuild(t, "a{3}")
	checkCases(t, "a{3}", n, []acceptCase{
		{"aa", false},
		{"aaa", true},
		{"aaaa", false},
	})
}

func TestBuildUnboundedMinRepetition(t *testing.T) {
	n := mustBuild(t, "a{2,}")
	checkCases(t, "a{2,}", n, []acceptCase{
		{"a", false},
		{"aa", true},
		{"aaaaaa", true},
	})
}

func TestBuildZeroZeroRepetition(t *testing.T) {
	n := mustBuild(t, "a{0,0}b")
	checkCases(t, "a{0,0}b", n, []acceptCase{
		{"b", true},
		{"ab", false},
	})
}

func TestBuildGroupedAlternationRepetition(t *testing.T) {
	n := mustBuild(t, "(ab|cd){2,3}")
	checkCases(t, "(ab|cd){2,3}", n, []acceptCase{
		{"abab", true},
		{"abcd", true},
		{"cdcdcd", true},
		{"abcdab", true},
		{"ab", false},
		{"abcdabcd", false},
		{"abc", false},
	})
}

func TestBuildCharClassAndUnicodeClass(t *testing.T) {
	n := mustBuild(t, `[^0-9]+`)
	checkCases(t, `[^0-9]+`, n, []acceptCase{
		{"abc", true},
		{"a1", false},
		{"", false},
	})

	n2 := mustBuild(t, `\pL+`)
	checkCases(t, `\pL+`, n2, []acceptCase{
		{"Hello", true},
		{"Hello1", false},
		{"", false},
	})
}

func TestBuildAnyChar(t *testing.T) {
	n := mustBuild(t, "a.c")
	checkCases(t, "a.c", n, []acceptCase{
		{"abc", true},
		{"aXc", true},
		{"ac", false},
	})
}

func TestBuildEmptyPattern(t *testing.T) {
	n := mustBuild(t, "")
	checkCases(t, "", n, []acceptCase{
		{"", true},
		{"a", false},
	})
}
