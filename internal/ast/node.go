// Package ast defines the tree shape consumed and mutated by the scope
// builder, renamer, and inverter: a single tagged Node type linked by
// parent/first-child/next-sibling pointers, matching spec.md section 3's
// AST contract (the Closure Compiler's Node design) rather than a
// typed-struct-per-kind hierarchy.
package ast

import "github.com/mjarrett/jsuniquify/internal/token"

// Node is one AST node. Children are held as a doubly-linked
// sibling list off FirstChild/LastChild, not a slice, so that splicing a
// node out (as the inverter and renamer never need, but later compiler
// passes do) stays O(1) — the representation spec.md section 3 specifies.
type Node struct {
	Token token.Token

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	NextSibling *Node
	PrevSibling *Node

	// StringValue holds the payload for NAME / STRING_KEY / STRING nodes:
	// an identifier, property key, or string literal value.
	StringValue string

	// InputID is set on SCRIPT nodes to identify which source file a
	// subtree came from. The scope builder reads it (via GetInputID) to
	// detect function scopes built outside any input; declarations do
	// not record it.
	InputID string

	// Pos is the node's source position, if known. Nodes built directly
	// (by tests, or synthesized by a pass) carry the zero Position;
	// internal/astio populates it on decode from its wire "line"/"column"
	// fields, and scope.Builder copies it onto the errors and
	// diagnostics (IllegalScopeRootError, DetachedNodeError,
	// Redeclaration) it produces, so a caller reading those back after
	// "jsuniquify scopes" knows where in the original source to look.
	Pos token.Position

	// IsExpr distinguishes the expression form from the statement form
	// for FUNCTION and CLASS nodes: a function/class *expression* bleeds
	// its own name into a scope visible only to its own body (spec.md
	// section 4.B); a function/class *declaration* binds its name into
	// the enclosing block scope instead. Real parsers infer this from
	// the node's position in the tree; since this AST is constructed
	// directly (by a parser external to this module, or by tests), the
	// flag is set explicitly at construction time instead of re-deriving
	// it from parent context.
	IsExpr bool
}

// New creates a detached node of the given token.
func New(tok token.Token) *Node {
	return &Node{Token: tok}
}

// NewName creates a NAME node carrying the given identifier.
func NewName(name string) *Node {
	return &Node{Token: token.NAME, StringValue: name}
}

// SetString mutates a node's string payload in place. The Renamer and
// Inverter call this, never replacing the Node itself, so that any other
// pointer into the tree (e.g. a Var.Decl) continues to observe the new
// name.
func (n *Node) SetString(s string) {
	n.StringValue = s
}

// AddChild appends child as the new last child of n, linking both sibling
// pointers and the parent pointer. Panics if child already has a parent,
// the same defensive check the teacher's AST constructors apply to catch
// accidental node reuse.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		panic("ast: AddChild on a node that already has a parent")
	}
	child.Parent = n
	child.PrevSibling = n.LastChild
	if n.LastChild != nil {
		n.LastChild.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// Children returns the node's children as a slice, in source order. Most
// traversal should prefer walking FirstChild/NextSibling directly to avoid
// the allocation; Children exists for call sites (tests, the JSON
// encoder) that want random access.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// SecondChild returns the node's second child, or nil. Several dispatch
// rules in spec.md section 4.B (FUNCTION's param list, CATCH's block) are
// phrased in terms of "the first/second child".
func (n *Node) SecondChild() *Node {
	if n.FirstChild == nil {
		return nil
	}
	return n.FirstChild.NextSibling
}

// IsEmpty reports whether a name-bearing node (a function or class
// expression's name slot) was left unnamed, per spec.md section 4.B's
// "declare ... if it is an expression and named".
func (n *Node) IsEmpty() bool {
	return n == nil || (n.Token == token.NAME && n.StringValue == "")
}
