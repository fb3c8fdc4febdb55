package renamer

import "github.com/coregx/coregex"

// SuffixPattern recognizes a name this package (or a previous run of it)
// has already suffixed: "$jscomp$" followed by an optional alphabetic
// Inline prefix and a decimal id. internal/inverter strips exactly this
// grammar back off, so it is compiled once here and shared rather than
// duplicated.
var SuffixPattern = coregex.MustCompile(`\$jscomp\$([A-Za-z_]*)([0-9]+)$`)

// HasSuffix reports whether name already carries the "$jscomp$..." suffix
// grammar.
func HasSuffix(name string) bool {
	return SuffixPattern.MatchString(name)
}

// SplitSuffix separates a suffixed name into its base, its Inline prefix
// (empty for a Contextual-style suffix), and its numeric id. ok is false
// if name does not carry the suffix grammar.
func SplitSuffix(name string) (base, prefix string, id int, ok bool) {
	loc := SuffixPattern.FindStringSubmatchIndex(name)
	if loc == nil {
		return name, "", 0, false
	}
	base = name[:loc[0]]
	prefix = name[loc[2]:loc[3]]
	numStr := name[loc[4]:loc[5]]
	n := 0
	for _, r := range numStr {
		n = n*10 + int(r-'0')
	}
	return base, prefix, n, true
}
