// Package convention holds the single naming heuristic spec.md section 6
// exposes as a pluggable coding convention: whether a name looks like a
// constant, which the Inline renamer's removeConst option consults to
// decide whether to leave a binding unrenamed.
package convention

// IsConstantName reports whether name follows the all-caps,
// underscore-separated convention ("MAX_SIZE", "A", "_PRIVATE_CONST") used
// to mark a binding as a constant. Mixed-case and single-lowercase-letter
// names are not constants; an empty name is not a constant.
func IsConstantName(name string) bool {
	if name == "" {
		return false
	}
	sawLetter := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			sawLetter = true
		case r >= '0' && r <= '9', r == '_', r == '$':
			// allowed anywhere
		default:
			return false
		}
	}
	return sawLetter
}
