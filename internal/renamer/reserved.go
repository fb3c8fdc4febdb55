package renamer

import (
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/scope"
	"github.com/mjarrett/jsuniquify/internal/token"
)

// ComputeReservedNames collects every name a renamer must never mint as a
// fresh binding name: JS's reserved words, and every identifier
// referenced in root that does not resolve to any declaration the given
// tree knows about (an implicit global — `window`, `document`, an
// undeclared ambient name) since such a reference's actual target is
// unknown to this pass and must not be shadowed by a synthesized name.
//
// Grounded on mmmommm-microEsbuild/renamer/renamer.go's
// ComputeReservedNames (scan every module scope for symbols that must
// never be handed out as a rename target) — an other-pack enrichment
// pulled in because kolkov-uawk has no renaming pass of its own; the
// algorithm, not the code, is what's borrowed, since microEsbuild's own
// ast package is not present in the retrieval and could not be imported
// directly.
func ComputeReservedNames(tree *scope.Tree, root *ast.Node) map[string]struct{} {
	reserved := make(map[string]struct{}, len(token.Keywords)+len(token.StrictModeReservedWords))
	for kw := range token.Keywords {
		reserved[kw] = struct{}{}
	}
	for kw := range token.StrictModeReservedWords {
		reserved[kw] = struct{}{}
	}

	ast.Walk(root, func(n *ast.Node) bool {
		if ast.IsReferencePosition(n) && tree.EnclosingScope(n).GetSlot(n.StringValue) == nil {
			reserved[n.StringValue] = struct{}{}
		}
		return true
	})
	return reserved
}
