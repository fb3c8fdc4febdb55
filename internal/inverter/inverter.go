// Package inverter implements spec.md section 4.D: undoing a renaming
// pass's suffixes, scope by scope, innermost first.
package inverter

import (
	"fmt"

	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/renamer"
	"github.com/mjarrett/jsuniquify/internal/scope"
)

// Invert strips the "$jscomp$..." suffix grammar back off every
// declaration (and its references) in tree, processing scopes innermost
// first so that a function's own suffixes are removed before its
// enclosing scope's — the reverse of the order the Scope Builder
// constructs scopes in.
//
// Within one scope, bindings that share a base name are renumbered from
// 0 in declaration order: the first member of the group loses its suffix
// entirely, the rest keep a suffix but renumbered contiguously. A whole
// group is kept suffixed, renumbered from 1 instead, if the bare base
// name is already visible from an enclosing scope, or if some scope
// nested inside this one already owns that bare name as its own
// declaration (spec.md section 4.D's shadowing guard, both directions).
//
// Inversion is deliberately lossy for catch parameters: two sibling
// `catch(e$jscomp$1){}` clauses produced by a prior renaming pass both
// invert back to plain `catch(e){}`, exactly as
// original_source/.../MakeDeclaredNamesUniqueTest.java documents
// ("Inversion does not handle exceptions correctly") — each catch scope
// is inverted independently of its siblings, so nothing here tracks
// that two different scopes happened to share a suffix number.
func Invert(tree *scope.Tree) error {
	var firstErr error
	ast.WalkPostOrder(tree.Global.RootNode(), func(n *ast.Node) {
		if firstErr != nil {
			return
		}
		if s := tree.ScopeOf(n); s != nil {
			if err := invertScope(tree, s); err != nil {
				firstErr = err
			}
		}
	})
	return firstErr
}

func invertScope(tree *scope.Tree, s *scope.Scope) error {
	groups := make(map[string][]*scope.Var)
	order := make([]string, 0)
	for _, v := range s.Vars() {
		base, _, _, ok := renamer.SplitSuffix(v.Name)
		if !ok {
			base = v.Name
		}
		if _, seen := groups[base]; !seen {
			order = append(order, base)
		}
		groups[base] = append(groups[base], v)
	}

	for _, base := range order {
		members := groups[base]
		next := 0
		if blocksBareRename(s, base) {
			// The bare base name would collide with a declaration
			// visible from an enclosing scope, or would be shadowed by
			// one a descendant scope already owns; this whole group
			// keeps a suffix, just renumbered starting at 1 instead of
			// 0.
			next = 1
		}
		for _, v := range members {
			var candidate string
			if next == 0 {
				candidate = base
			} else {
				candidate = fmt.Sprintf("%s$jscomp$%d", base, next)
			}
			next++
			if candidate != v.Name {
				renameInScope(tree, v, candidate)
			}
			// Record the decided name on the Var itself (not just in the
			// AST) so that an enclosing scope processed later in this
			// same post-order walk can see what this scope finally
			// settled on — blocksBareRename's descendant check depends
			// on this being up to date.
			v.Name = candidate
		}
	}
	return nil
}

// blocksBareRename reports whether base is already visible from s's
// enclosing scope, or already owned by some scope nested inside s,
// meaning no member of this scope's same-named group may ever take the
// bare, unsuffixed form.
//
// The descendant half of this check matters even though a nested
// declaration of the same bare name is ordinarily legal shadowing: a
// reference inside that nested scope may currently resolve — via its
// "$jscomp$..." suffix — to s's own var, precisely because the nested
// scope's own bare declaration is a *different* binding. Stripping s's
// var down to the same bare name would make that reference resolve to
// the nearer, nested declaration instead, silently changing which
// variable it reads or writes. Grounded on
// original_source/.../MakeDeclaredNamesUniqueTest.java's
// testOnlyInversion4: function x1(){var a$jscomp$0;function
// x2(){var a;a$jscomp$0++}} must keep x1's var suffixed (as
// a$jscomp$1) rather than strip it to the bare "a" that x2 already owns.
func blocksBareRename(s *scope.Scope, base string) bool {
	if parent := s.ParentScope(); parent != nil && parent.GetSlot(base) != nil {
		return true
	}
	return ownedByDescendant(s, base)
}

// ownedByDescendant reports whether any scope nested (at any depth)
// inside s declares base as one of its own bindings. It reads each Var's
// current Name field directly rather than Scope.GetOwnSlot, since a
// descendant scope already processed this walk may have renamed one of
// its own vars without changing the map key it was originally declared
// under.
func ownedByDescendant(s *scope.Scope, base string) bool {
	for _, child := range s.Children {
		for _, v := range child.Vars() {
			if v.Name == base {
				return true
			}
		}
		if ownedByDescendant(child, base) {
			return true
		}
	}
	return false
}

// renameInScope mirrors renamer's reference rewrite but keyed on the
// var's *current* (suffixed) name rather than its original declared
// name, since inversion runs after a prior rename pass already changed
// Var.Name's backing declaration text.
func renameInScope(tree *scope.Tree, v *scope.Var, newName string) {
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
