package jsuniquify

import "fmt"

// ScopeError wraps a failure from the scope builder, such as an
// unrecognized scope-root node reached while walking the tree.
type ScopeError struct {
	Message string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("scope error: %s", e.Message)
}

// RenameError wraps a failure from a renaming or inversion pass.
type RenameError struct {
	Message string
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename error: %s", e.Message)
}
