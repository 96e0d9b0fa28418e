// Package unicat resolves Unicode general-category names used by \p{Name}
// and \pX escapes to the set of leaf category codes they expand to, and
// answers category membership for a code point.
//
// Targets Unicode as shipped by the Go 1.25 standard library's unicode
// package (see https://unicode.org/reports/tr44/#General_Category_Values
// for the category taxonomy itself).
package unicat

import "unicode"

// leafTables maps a two-letter general-category code to the stdlib range
// table that recognizes it. Cn (Unassigned) has no table: the stdlib only
// describes assigned code points, and computing the exact complement of
// every other category is impractical, so Cn is accepted as a category
// name but matches no code point.
var leafTables = map[string]*unicode.RangeTable{
	"Lu": unicode.Lu, "Ll": unicode.Ll, "Lt": unicode.Lt, "Lm": unicode.Lm, "Lo": unicode.Lo,
	"Mn": unicode.Mn, "Mc": unicode.Mc, "Me": unicode.Me,
	"Nd": unicode.Nd, "Nl": unicode.Nl, "No": unicode.No,
	"Pc": unicode.Pc, "Pd": unicode.Pd, "Ps": unicode.Ps, "Pe": unicode.Pe,
	"Pi": unicode.Pi, "Pf": unicode.Pf, "Po": unicode.Po,
	"Sm": unicode.Sm, "Sc": unicode.Sc, "Sk": unicode.Sk, "So": unicode.So,
	"Zs": unicode.Zs, "Zl": unicode.Zl, "Zp": unicode.Zp,
	"Cc": unicode.Cc, "Cf": unicode.Cf, "Cs": unicode.Cs, "Co": unicode.Co,
}

// groups maps a one-letter grouping category to the leaf codes it expands to.
var groups = map[string][]string{
	"L": {"Lu", "Ll", "Lt", "Lm", "Lo"},
	"M": {"Mn", "Mc", "Me"},
	"N": {"Nd", "Nl", "No"},
	"P": {"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po"},
	"S": {"Sm", "Sc", "Sk", "So"},
	"Z": {"Zs", "Zl", "Zp"},
	"C": {"Cc", "Cf", "Cs", "Co", "Cn"},
}

// longNames maps the long form of a leaf category to its two-letter code.
var longNames = map[string]string{
	"Uppercase_Letter": "Lu", "Lowercase_Letter": "Ll", "Titlecase_Letter": "Lt",
	"Modifier_Letter": "Lm", "Other_Letter": "Lo",
	"Nonspacing_Mark": "Mn", "Spacing_Mark": "Mc", "Enclosing_Mark": "Me",
	"Decimal_Number": "Nd", "Letter_Number": "Nl", "Other_Number": "No",
	"Connector_Punctuation": "Pc", "Dash_Punctuation": "Pd", "Open_Punctuation": "Ps",
	"Close_Punctuation": "Pe", "Initial_Punctuation": "Pi", "Final_Punctuation": "Pf",
	"Other_Punctuation": "Po",
	"Math_Symbol": "Sm", "Currency_Symbol": "Sc", "Modifier_Symbol": "Sk", "Other_Symbol": "So",
	"Space_Separator": "Zs", "Line_Separator": "Zl", "Paragraph_Separator": "Zp",
	"Control": "Cc", "Format": "Cf", "Surrogate": "Cs", "Private_Use": "Co", "Unassigned": "Cn",
}

// Shorthand expansions for the conventional escapes beyond \p{...}. \d is
// taken from original_source/src/parser.rs verbatim (Nd, No, Nl). \w and \s
// are this compiler's own documented decision (spec.md §9 leaves them
// undefined): \w is ASCII word characters, \s is ASCII whitespace, matched
// directly against a literal rune set rather than a general category.
var (
	DigitCategories = []string{"Nd", "No", "Nl"}
)

// Resolve returns the leaf category codes a \p{Name}/\pX identifier expands
// to, and whether the name is recognized at all.
func Resolve(name string) ([]string, bool) {
	if codes, ok := groups[name]; ok {
		return codes, true
	}
	if code, ok := longNames[name]; ok {
		return []string{code}, true
	}
	if _, ok := leafTables[name]; ok {
		return []string{name}, true
	}
	if name == "Cn" {
		return []string{"Cn"}, true
	}
	return nil, false
}

// Match reports whether r belongs to any of the given leaf category codes.
func Match(r rune, codes []string) bool {
	for _, code := range codes {
		if t, ok := leafTables[code]; ok && unicode.Is(t, r) {
			return true
		}
	}
	return false
}

// Table returns the stdlib range table backing a leaf category code, and
// whether one exists (false for Cn).
func Table(code string) (*unicode.RangeTable, bool) {
	t, ok := leafTables[code]
	return t, ok
}

// Name returns a canonical \p{Name} identifier for a set of leaf category
// codes, the inverse of Resolve for the shapes this package itself
// produces (a single leaf code, or exactly one grouping expansion). Used by
// the lexer's round-trip canonicalization.
func Name(codes []string) (string, bool) {
	if len(codes) == 1 {
		return codes[0], true
	}
	for group, expansion := range groups {
		if sameSet(expansion, codes) {
			return group, true
		}
	}
	return "", false
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
