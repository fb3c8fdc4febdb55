// Package scope implements the Scope Model (spec.md section 4.A) and the
// Scope Builder (section 4.B): an in-memory representation of lexical
// scopes and the AST walker that populates them.
package scope

import "github.com/mjarrett/jsuniquify/internal/ast"

// Kind tags what a Scope represents, per spec.md section 3.
type Kind int

const (
	Global Kind = iota
	Module
	Function
	FunctionBlock
	Block
	For
	Catch
	ClassBody
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "Global"
	case Module:
		return "Module"
	case Function:
		return "Function"
	case FunctionBlock:
		return "FunctionBlock"
	case Block:
		return "Block"
	case For:
		return "For"
	case Catch:
		return "Catch"
	case ClassBody:
		return "ClassBody"
	default:
		return "Unknown"
	}
}

// DeclKind tags the syntactic form that introduced a Var.
type DeclKind int

const (
	DeclVar DeclKind = iota
	DeclLet
	DeclConst
	DeclClass
	DeclFunction
	DeclParam
	DeclCatch
	DeclImport
)

// Var is a single binding: a declared name and the node that introduced
// it, per spec.md section 3.
type Var struct {
	Scope   *Scope
	Name    string
	Decl    *ast.Node
	Kind    DeclKind
	IsParam bool
}

// Scope is a single lexical scope, holding its bindings in insertion
// order so that renaming (which assigns suffixes "in traversal order") is
// deterministic, per spec.md section 3.
//
// Grounded on Spicery-nutmeg-compiler/pkg/resolver/scope.go's Scope
// (parent pointer, root node, child-scope-factory method) crossed with
// kolkov-uawk/internal/semantic/symbols.go's SymbolTable (ordered,
// parent-linked name→binding map) — neither pack example has block
// scopes or a Kind tag, since Nutmeg and AWK are both function-scoped
// languages; those are added directly from spec.md section 3/4.A.
type Scope struct {
	Kind   Kind
	Parent *Scope
	Root   *ast.Node

	// Children holds nested scopes in the order the Scope Builder's
	// driver (Builder.BuildTree) created them — the same pre-order,
	// depth-first sequence the renamer's "traversal order" suffix
	// numbering (spec.md section 4.C.1) depends on.
	Children []*Scope

	names []string
	vars  map[string]*Var
}

// NewGlobal creates the root Global scope for a compilation unit.
func NewGlobal(root *ast.Node) *Scope {
	return &Scope{Kind: Global, Root: root, vars: make(map[string]*Var)}
}

// NewChild creates a scope nested under s, rooted at root, per spec.md
// section 3's invariant that every non-Global scope has a non-nil
// parent.
func (s *Scope) NewChild(kind Kind, root *ast.Node) *Scope {
	child := &Scope{Kind: kind, Parent: s, Root: root, vars: make(map[string]*Var)}
	s.Children = append(s.Children, child)
	return child
}

// RootNode returns the AST node that introduced this scope.
func (s *Scope) RootNode() *ast.Node { return s.Root }

// ParentScope returns the enclosing scope, or nil for Global.
func (s *Scope) ParentScope() *Scope { return s.Parent }

// IsGlobal, IsFunctionScope, IsFunctionBlockScope and IsCatchScope expose
// the Kind tag the way spec.md section 4.A's
// isGlobal/isFunctionScope/isFunctionBlockScope/isCatchScope do.
func (s *Scope) IsGlobal() bool          { return s.Kind == Global }
func (s *Scope) IsModuleScope() bool     { return s.Kind == Module }
func (s *Scope) IsFunctionScope() bool   { return s.Kind == Function }
func (s *Scope) IsFunctionBlockScope() bool {
	return s.Kind == FunctionBlock
}
func (s *Scope) IsCatchScope() bool { return s.Kind == Catch }
func (s *Scope) IsBlockScope() bool { return s.Kind == Block || s.Kind == For || s.Kind == Catch }

// Declare inserts a new binding without checking for a prior declaration
// of the same name — per spec.md section 4.A, "declare does not detect
// re-declaration itself; callers must consult getOwnSlot first."
func (s *Scope) Declare(name string, decl *ast.Node, kind DeclKind, isParam bool) *Var {
	v := &Var{Scope: s, Name: name, Decl: decl, Kind: kind, IsParam: isParam}
	if _, exists := s.vars[name]; !exists {
		s.names = append(s.names, name)
	}
	s.vars[name] = v
	return v
}

// GetOwnSlot looks up name in this scope only.
func (s *Scope) GetOwnSlot(name string) *Var {
	return s.vars[name]
}

// GetSlot looks up name in this scope, then walks parents until found or
// the chain is exhausted.
func (s *Scope) GetSlot(name string) *Var {
	for cur := s; cur != nil; cur = cur.Parent {
		if v := cur.vars[name]; v != nil {
			return v
		}
	}
	return nil
}

// Names returns the scope's own binding names in declaration order, the
// order renaming must assign suffixes in.
func (s *Scope) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Vars returns the scope's own bindings in declaration order.
func (s *Scope) Vars() []*Var {
	out := make([]*Var, len(s.names))
	for i, name := range s.names {
		out[i] = s.vars[name]
	}
	return out
}

// Depth returns the scope's nesting level, with Global at 0.
func (s *Scope) Depth() int {
	d := 0
	for cur := s.Parent; cur != nil; cur = cur.Parent {
		d++
	}
	return d
}
