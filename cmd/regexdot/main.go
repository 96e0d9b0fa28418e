// Command regexdot is a diagnostic collaborator: it compiles a pattern down
// to an NFA and writes a Graphviz DOT rendering of it, for inspecting what
// regexc's pipeline built without reading generated Go source.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/relabs-tech/regexc/internal/nfa"
	"github.com/relabs-tech/regexc/internal/regexast"
	"github.com/relabs-tech/regexc/internal/token"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("regexdot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	pattern := fs.String("pattern", "", "regular expression to render (required)")
	out := fs.String("out", "", "output DOT file path (required)")
	simplified := fs.Bool("simplified", false, "render the NFA after simplification instead of the raw build")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *pattern == "" || *out == "" {
		fmt.Fprintln(stderr, "regexdot: -pattern and -out are required")
		return 2
	}

	toks, err := token.Lex(*pattern)
	if err != nil {
		fmt.Fprintf(stderr, "regexdot: %v\n", err)
		return 1
	}

	ast, err := regexast.Parse(toks)
	if err != nil {
		fmt.Fprintf(stderr, "regexdot: %v\n", err)
		return 1
	}

	n := nfa.Build(ast)
	if *simplified {
		n = nfa.Simplify(n)
	}

	if err := os.WriteFile(*out, []byte(renderDOT(n)), 0o644); err != nil {
		fmt.Fprintf(stderr, "regexdot: %v\n", err)
		return 1
	}
	return 0
}

// renderDOT produces a minimal Graphviz digraph: plain circles for ordinary
// states, double circles for terminal states, and an unlabeled arrow into
// each start state from an invisible point node.
func renderDOT(n *nfa.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("\trankdir=LR;\n")

	ids := make([]int, len(n.States))
	for i, s := range n.States {
		ids[i] = s.ID
	}
	sort.Ints(ids)

	for _, id := range ids {
		shape := "circle"
		if n.Terminal[id] {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\tnode [shape=%s]; %d;\n", shape, id)
	}

	startIDs := sortedKeys(n.Start)
	for i, id := range startIDs {
		fmt.Fprintf(&b, "\t__start%d [shape=point]; __start%d -> %d;\n", i, i, id)
	}

	for _, s := range n.States {
		for _, tr := range s.Transitions {
			label := condLabel(tr.Cond)
			fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", s.ID, tr.Target, label)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// condLabel renders a Condition as a short human-readable edge label. Its
// exact format is not load-bearing: regexdot's output is a diagnostic aid,
// not a consumed data format.
func condLabel(c nfa.Condition) string {
	switch c.Kind {
	case nfa.CondEpsilon:
		return "ε"
	case nfa.CondAnyChar:
		return "."
	case nfa.CondLiteral:
		return string(c.Rune)
	case nfa.CondCharClass:
		var parts []string
		for _, r := range c.Ranges {
			if r.Lo == r.Hi {
				parts = append(parts, string(r.Lo))
			} else {
				parts = append(parts, fmt.Sprintf("%c-%c", r.Lo, r.Hi))
			}
		}
		label := "[" + strings.Join(parts, "") + "]"
		if c.Negated {
			label = "[^" + strings.Join(parts, "") + "]"
		}
		return label
	case nfa.CondUnicodeClass:
		label := "\\p{" + strings.Join(c.Categories, ",") + "}"
		if c.Negated {
			label = "\\P{" + strings.Join(c.Categories, ",") + "}"
		}
		return label
	default:
		return "?"
	}
}
