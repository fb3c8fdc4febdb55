package renamer

import (
	"fmt"
	"strings"

	"github.com/mjarrett/jsuniquify/internal/convention"
	"github.com/mjarrett/jsuniquify/internal/scope"
	"github.com/mjarrett/jsuniquify/internal/uid"
)

// InlineRenamer implements spec.md section 4.C.2: unlike Contextual, every
// non-global binding is unconditionally given a
// "$jscomp$<prefix><k>" suffix drawn from a single monotonic counter
// shared across the whole tree, regardless of whether it would actually
// collide with anything. This costs uniqueness guarantees nothing (it
// never needs to consult sibling declarations) at the cost of renaming
// names that didn't need it.
type InlineRenamer struct {
	// UID supplies the monotonic suffix numbers; defaults to a fresh
	// *uid.Source if left nil when NewInline constructs the renamer.
	UID *uid.Source

	// Prefix is inserted between "$jscomp$" and the numeric id, letting
	// callers namespace multiple Inline passes against each other
	// (spec.md section 6's localNamePrefix).
	Prefix string

	// RemoveConst, when true, leaves a binding whose name already
	// follows the all-caps constant convention
	// (internal/convention.IsConstantName) untouched, so constant names
	// stay stable and readable across a pass.
	RemoveConst bool
}

// NewInline returns an InlineRenamer using prefix and a fresh id source.
func NewInline(prefix string) *InlineRenamer {
	return &InlineRenamer{UID: &uid.Source{}, Prefix: prefix}
}

// Rename implements Renamer.
func (r *InlineRenamer) Rename(tree *scope.Tree) error {
	return r.renameScope(tree, tree.Global)
}

func (r *InlineRenamer) renameScope(tree *scope.Tree, s *scope.Scope) error {
	if !s.IsGlobal() {
		for _, v := range s.Vars() {
			if v.Name == argumentsName {
				continue
			}
			if r.RemoveConst && convention.IsConstantName(v.Name) {
				continue
			}
			rewriteReferences(tree, v, r.replacementName(v.Name))
		}
	}
	for _, child := range s.Children {
		if err := r.renameScope(tree, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *InlineRenamer) replacementName(name string) string {
	return fmt.Sprintf("%s$jscomp$%s%d", mangleLeadingUnderscore(name), r.Prefix, r.UID.Next())
}

// mangleLeadingUnderscore rewrites a conventionally-private leading
// underscore into an explicit "JSCompiler_" marker, so a name like
// "_cache" never collides with a later compiler-internal synthetic name
// that also happens to start with an underscore.
func mangleLeadingUnderscore(name string) string {
	if strings.HasPrefix(name, "_") {
		return "JSCompiler_" + name
	}
	return name
}
