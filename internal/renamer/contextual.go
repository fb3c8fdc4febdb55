package renamer

import (
	"fmt"

	"github.com/mjarrett/jsuniquify/internal/scope"
)

// ContextualRenamer implements spec.md section 4.C.1. A binding keeps its
// bare name the first time that literal name is declared anywhere in the
// scope tree's pre-order traversal; every later, independent declaration
// of the same name receives the next "$jscomp$<n>" suffix for that name
// (n starting at 1), regardless of whether the two declarations could
// ever actually collide lexically — a conservative, always-safe choice
// that matches
// original_source/.../MakeDeclaredNamesUniqueTest.java's worked examples,
// including sibling function scopes that share no non-global ancestor
// (spec.md section 8, scenarios 2 and 3).
//
// Global bindings are never renamed, but still consume a slot in the
// per-name counter, so a local binding declared later with the same name
// as a global is correctly treated as that name's second occurrence.
type ContextualRenamer struct{}

// NewContextual returns a ready-to-use ContextualRenamer.
func NewContextual() *ContextualRenamer { return &ContextualRenamer{} }

// Rename implements Renamer.
func (r *ContextualRenamer) Rename(tree *scope.Tree) error {
	counts := make(map[string]int)
	renameScopeContextual(tree, tree.Global, counts)
	return nil
}

func renameScopeContextual(tree *scope.Tree, s *scope.Scope, counts map[string]int) {
	for _, v := range s.Vars() {
		if v.Name == argumentsName {
			continue
		}
		idx := counts[v.Name]
		counts[v.Name]++
		if s.IsGlobal() || idx == 0 {
			continue
		}
		newName := fmt.Sprintf("%s$jscomp$%d", v.Name, idx)
		rewriteReferences(tree, v, newName)
	}
	for _, child := range s.Children {
		renameScopeContextual(tree, child, counts)
	}
}
