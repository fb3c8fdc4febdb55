package scope

import (
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/token"
)

const argumentsName = "arguments"

// Builder constructs Scope objects from AST subtrees, per spec.md section
// 4.B. Ported method-for-method from
// original_source's Es6SyntacticScopeCreator.ScopeScanner
// (populate/scanVars/declareVar/isShadowingDisallowed), generalized from
// the Closure Compiler's Node/Scope types to this repo's ast.Node/Scope.
type Builder struct {
	// Redecl receives every redeclaration this builder observes;
	// defaults to a no-op, per spec.md section 4.A.
	Redecl RedeclarationHandler

	// ChangeRootSet, when non-nil, restricts scope (re)building to the
	// given SCRIPT nodes — spec.md section 6's incremental-rebuild
	// support.
	ChangeRootSet map[*ast.Node]bool

	// Detached accumulates one *DetachedNodeError per function/arrow
	// scope root built with no input id — no enclosing SCRIPT, or one
	// whose InputID is empty (spec.md section 7's DetachedNode case). The builder never returns these as a Go
	// error — declarations proceed normally — but a caller that wants
	// to surface them as diagnostics (the CLI's "scopes" command) can
	// read this slice after BuildTree returns.
	Detached []*DetachedNodeError

	inputID string
}

// NewBuilder returns a Builder with the default (no-op) redeclaration
// handler.
func NewBuilder() *Builder {
	return &Builder{Redecl: NoOpRedeclarationHandler{}}
}

// BuildScope creates and populates a single scope rooted at root. parent
// is nil only for the Global scope.
func (b *Builder) BuildScope(root *ast.Node, parent *Scope) (*Scope, error) {
	var s *Scope
	if parent == nil {
		s = NewGlobal(root)
	} else {
		s = parent.NewChild(kindForRoot(root), root)
	}
	if err := b.populate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func kindForRoot(root *ast.Node) Kind {
	switch root.Token {
	case token.FUNCTION, token.ARROW:
		return Function
	case token.CLASS:
		return ClassBody
	case token.MODULE_BODY:
		return Module
	case token.FOR, token.FOR_IN, token.FOR_OF, token.SWITCH:
		return For
	case token.CATCH:
		return Catch
	case token.BLOCK:
		if ast.IsFunctionBlock(root) {
			return FunctionBlock
		}
		return Block
	default:
		return Block
	}
}

// populate dispatches on the scope's root node token — spec.md section
// 4.B's "Root-node dispatch".
func (b *Builder) populate(s *Scope) error {
	n := s.RootNode()
	b.inputID = ast.GetInputID(n)

	switch n.Token {
	case token.FUNCTION, token.ARROW:
		if b.inputID == "" {
			b.Detached = append(b.Detached, &DetachedNodeError{Node: n, Pos: n.Pos})
		}
		nameNode := n.FirstChild
		args := n.SecondChild()
		if n.Token == token.FUNCTION && !nameNode.IsEmpty() && ast.IsFunctionExpression(n) {
			b.declareVar(s, nameNode, DeclFunction, false)
		}
		if args != nil {
			for _, lhs := range ast.GetLhsNodesOfDeclaration(args) {
				b.declareVar(s, lhs, DeclParam, true)
			}
		}
		return nil // the body is a nested scope

	case token.CLASS:
		nameNode := n.FirstChild
		if !nameNode.IsEmpty() && ast.IsClassExpression(n) {
			b.declareVar(s, nameNode, DeclClass, false)
		}
		return nil

	case token.ROOT, token.SCRIPT, token.MODULE_BODY:
		return b.scanVars(n, s, s)

	case token.FOR, token.FOR_IN, token.FOR_OF, token.SWITCH:
		return b.scanVars(n, nil, s)

	case token.CATCH:
		// Unlike the rest of this dispatch table, CATCH is not listed
		// among the root-dispatch cases original_source's
		// Es6SyntacticScopeCreator.populate() itself enumerates — that
		// scanner folds a catch parameter into whichever lexical scope
		// is already active at the try statement's position, which
		// would make two sibling `catch(e)` blocks collide. spec.md
		// section 4.A lists Catch as a first-class Kind and section
		// 4.C.1's worked example requires the second of two sibling
		// `catch(e)` blocks to rename independently, so this builder
		// gives every CATCH its own scope instead, and its own body
		// block is absorbed into that scope rather than forming a
		// further nested Block scope (spec.md section 4.B, "a new
		// scope is not created for this BLOCK because there is a
		// scope created for the BLOCK above the CATCH").
		for _, lhs := range ast.GetLhsNodesOfDeclaration(n) {
			b.declareVar(s, lhs, DeclCatch, false)
		}
		body := n.SecondChild()
		if body == nil {
			return nil
		}
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			if err := b.scanVars(c, nil, s); err != nil {
				return err
			}
		}
		return nil

	case token.BLOCK:
		if ast.IsFunctionBlock(n) {
			return b.scanVars(n, s, s)
		}
		return b.scanVars(n, nil, s)

	default:
		return newIllegalScopeRoot(n)
	}
}

// scanVars is the recursive scan described in spec.md section 4.B: it
// walks n's subtree gathering declarations for hoistScope (vars,
// imports) and blockScope (let/const/class/function-statement), stopping
// at function/class boundaries and deferring nested block scopes to
// their own later BuildScope call.
func (b *Builder) scanVars(n *ast.Node, hoistScope, blockScope *Scope) error {
	switch n.Token {
	case token.VAR:
		if hoistScope != nil {
			for _, lhs := range ast.GetLhsNodesOfDeclaration(n) {
				b.declareVar(hoistScope, lhs, DeclVar, false)
			}
		}
		return nil

	case token.LET:
		if blockScope != nil {
			for _, lhs := range ast.GetLhsNodesOfDeclaration(n) {
				b.declareVar(blockScope, lhs, DeclLet, false)
			}
		}
		return nil

	case token.CONST:
		if blockScope != nil {
			for _, lhs := range ast.GetLhsNodesOfDeclaration(n) {
				b.declareVar(blockScope, lhs, DeclConst, false)
			}
		}
		return nil

	case token.IMPORT:
		if hoistScope != nil {
			for _, lhs := range ast.GetLhsNodesOfDeclaration(n) {
				b.declareVar(hoistScope, lhs, DeclImport, false)
			}
		}
		return nil

	case token.FUNCTION:
		if ast.IsFunctionExpression(n) || blockScope == nil {
			return nil
		}
		nameNode := n.FirstChild
		if nameNode.IsEmpty() {
			return nil // invalid; let earlier validation catch it
		}
		b.declareVar(blockScope, nameNode, DeclFunction, false)
		return nil // do not examine the function's params/body here

	case token.CLASS:
		if ast.IsClassExpression(n) || blockScope == nil {
			return nil
		}
		nameNode := n.FirstChild
		if nameNode.IsEmpty() {
			return nil
		}
		b.declareVar(blockScope, nameNode, DeclClass, false)
		return nil

	case token.SCRIPT:
		if b.ChangeRootSet != nil && !b.ChangeRootSet[n] {
			return nil
		}
		b.inputID = n.InputID

	case token.MODULE_BODY:
		if hoistScope != nil && hoistScope.IsGlobal() && n != hoistScope.RootNode() {
			return nil
		}
	}

	isBlockStart := blockScope != nil && n == blockScope.RootNode()
	enteringNewBlock := !isBlockStart && ast.CreatesBlockScope(n)
	if enteringNewBlock && hoistScope == nil {
		// Only descend into a fresh block while still hunting hoisted vars.
		return nil
	}

	if ast.IsControlStructure(n) || ast.IsStatementBlock(n) {
		nextBlockScope := blockScope
		if enteringNewBlock {
			nextBlockScope = nil
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := b.scanVars(c, hoistScope, nextBlockScope); err != nil {
				return err
			}
		}
	}
	return nil
}

// declareVar mirrors Es6SyntacticScopeCreator.ScopeScanner.declareVar:
// silently returns if this exact node was already declared (an artifact
// of how scanVars can re-visit a node), otherwise routes true
// redeclarations, disallowed parameter shadowing, and `arguments`
// shadowing to the RedeclarationHandler instead of raising a Go error.
func (b *Builder) declareVar(s *Scope, n *ast.Node, kind DeclKind, isParam bool) {
	name := n.StringValue

	if v := s.GetOwnSlot(name); v != nil && v.Decl == n {
		return
	}

	v := s.GetOwnSlot(name)
	switch {
	case v != nil:
		b.Redecl.OnRedeclaration(s, name, n)
	case shadowingDisallowed(name, s):
		b.Redecl.OnRedeclaration(s, name, n)
	case (s.IsFunctionScope() || s.IsFunctionBlockScope()) && name == argumentsName:
		b.Redecl.OnRedeclaration(s, name, n)
	default:
		s.Declare(name, n, kind, isParam)
	}
}

// shadowingDisallowed reports whether name, declared in a FunctionBlock
// scope, would shadow a parameter of the enclosing Function scope —
// spec.md section 4.B's "Shadowing check".
func shadowingDisallowed(name string, s *Scope) bool {
	if !s.IsFunctionBlockScope() {
		return false
	}
	maybeParam := s.ParentScope().GetOwnSlot(name)
	return maybeParam != nil && maybeParam.IsParam
}
