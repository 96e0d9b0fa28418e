package token

import (
	"strconv"
	"strings"

	"github.com/relabs-tech/regexc/internal/unicat"
)

// needsEscape reports whether r must be backslash-escaped to appear as a
// bare Literal when rendered back to pattern text.
func needsEscape(r rune) bool {
	return strings.ContainsRune(`.\^$|()[]{}*+?`, r)
}

func renderRune(r rune) string {
	if needsEscape(r) {
		return "\\" + string(r)
	}
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	}
	return string(r)
}

// Canonical renders a token stream back to pattern text in a fixed form:
// re-lexing the result always reproduces the same token kinds, ranges, and
// categories, even when the original surface syntax differed (e.g. "\d" and
// "[0-9]" both canonicalize through their own token shapes, not to a shared
// spelling). This exists to support the lexer round-trip property test in
// spec.md §8.
func Canonical(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		switch t.Kind {
		case AnyChar:
			b.WriteString(".")
		case Literal:
			b.WriteString(renderRune(t.Rune))
		case CharClass:
			b.WriteString("[")
			if t.Negated {
				b.WriteString("^")
			}
			for _, r := range t.Ranges {
				b.WriteString(renderClassRune(r.Lo))
				if r.Hi != r.Lo {
					b.WriteString("-")
					b.WriteString(renderClassRune(r.Hi))
				}
			}
			b.WriteString("]")
		case UnicodeClass:
			if isDigitShorthand(t.Categories) {
				if t.Negated {
					b.WriteString(`\D`)
				} else {
					b.WriteString(`\d`)
				}
				break
			}
			letter := "p"
			if t.Negated {
				letter = "P"
			}
			if name, ok := unicat.Name(t.Categories); ok {
				if len(name) == 1 {
					b.WriteString(`\` + letter + name)
				} else {
					b.WriteString(`\` + letter + "{" + name + "}")
				}
			}
		case Alt:
			b.WriteString("|")
		case OpenGroup:
			b.WriteString("(")
		case CloseGroup:
			b.WriteString(")")
		case Rep:
			b.WriteString(renderRep(t.Min, t.Max))
		}
	}
	return b.String()
}

func isDigitShorthand(codes []string) bool {
	if len(codes) != len(unicat.DigitCategories) {
		return false
	}
	for i, c := range codes {
		if c != unicat.DigitCategories[i] {
			return false
		}
	}
	return true
}

func renderClassRune(r rune) string {
	if strings.ContainsRune(`]\^-`, r) {
		return "\\" + string(r)
	}
	return renderRune(r)
}

func renderRep(min, max int) string {
	switch {
	case min == 0 && max == Unbounded:
		return "*"
	case min == 1 && max == Unbounded:
		return "+"
	case min == 0 && max == 1:
		return "?"
	case max == Unbounded:
		return "{" + strconv.Itoa(min) + ",}"
	case min == max:
		return "{" + strconv.Itoa(min) + "}"
	default:
		return "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}"
	}
}
