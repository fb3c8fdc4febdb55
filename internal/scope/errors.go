package scope

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/token"
)

// IllegalScopeRootError is fatal: the builder was invoked on a node whose
// token cannot root a scope (spec.md section 7).
type IllegalScopeRootError struct {
	Node *ast.Node
	Pos  token.Position
}

func (e *IllegalScopeRootError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("illegal scope root: %s at %s", e.Node.Token, e.Pos)
	}
	return fmt.Sprintf("illegal scope root: %s", e.Node.Token)
}

// DetachedNodeError marks a scope built on a function node without an
// input id (e.g. synthesized). It is tolerated, not raised as a Go
// error — the builder proceeds and declares the function's bindings
// with no input association — but Builder.Detached records one of
// these per occurrence so a caller that walks the whole tree up front
// (the CLI's "scopes" command) can report them as diagnostics.
type DetachedNodeError struct {
	Node *ast.Node
	Pos  token.Position
}

func (e *DetachedNodeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("detached node: %s at %s has no input id", e.Node.Token, e.Pos)
	}
	return fmt.Sprintf("detached node: %s has no input id", e.Node.Token)
}

// newIllegalScopeRoot wraps an IllegalScopeRootError with a stack trace,
// grounded on mbovo-pulumi's pervasive github.com/pkg/errors usage for
// fatal, should-never-happen conditions raised deep in a recursive walk.
func newIllegalScopeRoot(n *ast.Node) error {
	return errors.WithStack(&IllegalScopeRootError{Node: n, Pos: n.Pos})
}

// RedeclarationHandler is the injected capability spec.md section 4.A
// delegates redeclaration detection to; the default implementation is a
// no-op, matching
// Es6SyntacticScopeCreator.DefaultRedeclarationHandler's documented
// behavior ("earlier validation passes emit user-facing diagnostics").
type RedeclarationHandler interface {
	OnRedeclaration(s *Scope, name string, n *ast.Node)
}

// NoOpRedeclarationHandler is the default RedeclarationHandler.
type NoOpRedeclarationHandler struct{}

func (NoOpRedeclarationHandler) OnRedeclaration(*Scope, string, *ast.Node) {}

// CollectingRedeclarationHandler records every redeclaration instead of
// discarding it, for callers (tests, the CLI's "scopes" command) that
// want to observe them without wiring a full diagnostic pipeline.
type CollectingRedeclarationHandler struct {
	Redeclarations []Redeclaration
}

// Redeclaration records one redeclaration event: name, the scope it
// occurred in, and the node that triggered it.
type Redeclaration struct {
	Scope *Scope
	Name  string
	Node  *ast.Node
	Pos   token.Position
}

func (h *CollectingRedeclarationHandler) OnRedeclaration(s *Scope, name string, n *ast.Node) {
	h.Redeclarations = append(h.Redeclarations, Redeclaration{Scope: s, Name: name, Node: n, Pos: n.Pos})
}
