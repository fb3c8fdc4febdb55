// Package renamer implements spec.md section 4.C: the two
// name-uniquifying strategies (Contextual and Inline) that turn the Scope
// Builder's resolved bindings into textual renames, plus the reserved-
// name computation shared by callers that need to avoid minting a name
// that collides with a free identifier.
package renamer

import (
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/scope"
)

const argumentsName = "arguments"

// Renamer is the common interface both strategies satisfy, grounded on
// mmmommm-microEsbuild/renamer/renamer.go's Renamer interface shape
// (itself not importable here — microEsbuild's own ast package is absent
// from the pack — so only the interface shape is borrowed, not any code).
type Renamer interface {
	Rename(tree *scope.Tree) error
}

// rewriteReferences renames v's declaration site and every reference to
// it within v's own scope subtree — the only place a lexically scoped
// binding's references can legally appear — to newName. A reference is
// any NAME node that, resolved from its own enclosing scope, names
// exactly this Var (spec.md section 4.C.3); this also transparently
// leaves alone any reference that resolves to a different, shadowing
// declaration of the same literal name nested inside v's subtree.
func rewriteReferences(tree *scope.Tree, v *scope.Var, newName string) {
	root := v.Scope.RootNode()
	ast.Walk(root, func(n *ast.Node) bool {
		if !ast.IsReferencePosition(n) {
			return true
		}
		if tree.EnclosingScope(n).GetSlot(n.StringValue) == v {
			n.SetString(newName)
		}
		return true
	})
}
