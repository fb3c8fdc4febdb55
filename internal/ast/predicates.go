package ast

import "github.com/mjarrett/jsuniquify/internal/token"

// IsFunctionExpression reports whether n is a FUNCTION node used in
// expression position — its bleeding name (if any) is visible only inside
// its own body, per spec.md section 4.B.
func IsFunctionExpression(n *Node) bool {
	return n != nil && n.Token == token.FUNCTION && n.IsExpr
}

// IsClassExpression reports whether n is a CLASS node used in expression
// position, by analogy with IsFunctionExpression.
func IsClassExpression(n *Node) bool {
	return n != nil && n.Token == token.CLASS && n.IsExpr
}

// IsFunctionLike reports whether n introduces a Function scope on its own
// (FUNCTION) or shares one with its enclosing scope's parameter binding
// the way an ARROW does. The scope builder's root-node dispatch treats
// both the same way for param/body scoping; arrow functions additionally
// have no name slot to bleed and inherit the enclosing `arguments`
// binding rather than minting their own (spec.md's ARROW token is called
// out in section 3 but the builder dispatch table in section 4.B only
// names FUNCTION — this generalizes it the way a real JS scope builder
// must, since arrow params and bodies are lexically scoped just like a
// function's).
func IsFunctionLike(n *Node) bool {
	return n != nil && (n.Token == token.FUNCTION || n.Token == token.ARROW)
}

// IsFunctionBlock reports whether n is the BLOCK that forms a function's
// body — the last child of a FUNCTION/ARROW node — as opposed to an
// ordinary nested block. The scope builder makes its FunctionBlock scope
// the hoist scope for the body's var declarations; the enclosing Function
// scope holds only the parameters and a function expression's own name.
func IsFunctionBlock(n *Node) bool {
	return n != nil && n.Token == token.BLOCK &&
		n.Parent != nil && IsFunctionLike(n.Parent) && n == n.Parent.LastChild
}

// CreatesBlockScope reports whether entering n during traversal should
// push a new Block-kind scope, per spec.md section 4.B's
// createsBlockScope predicate.
func CreatesBlockScope(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Token {
	case token.BLOCK:
		return !IsFunctionBlock(n)
	case token.FOR, token.FOR_IN, token.FOR_OF, token.SWITCH, token.CATCH:
		return true
	default:
		return false
	}
}

// IsControlStructure reports whether n is a control-structure node whose
// children the recursive scan must descend into to find declarations
// (spec.md section 4.B's descent rule).
func IsControlStructure(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Token {
	case token.FOR, token.FOR_IN, token.FOR_OF, token.SWITCH,
		token.IF, token.WHILE, token.DO, token.TRY, token.CATCH:
		return true
	default:
		return false
	}
}

// IsStatementBlock reports whether n is a statement-list node (as opposed
// to an expression), the other half of spec.md section 4.B's descent
// rule.
func IsStatementBlock(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Token {
	case token.BLOCK, token.SCRIPT, token.MODULE_BODY, token.ROOT:
		return true
	default:
		return false
	}
}

// IsReferencePosition reports whether n is a NAME node that the renamer
// should treat as a variable reference (and therefore candidate for
// resolution and possible rewriting) rather than a property key or an
// import/export specifier's externally-visible half — spec.md section
// 4.C.3.
func IsReferencePosition(n *Node) bool {
	if n == nil || n.Token != token.NAME || n.StringValue == "" {
		return false
	}
	p := n.Parent
	if p == nil {
		return true
	}
	switch p.Token {
	case token.GETPROP:
		return p.FirstChild == n
	case token.IMPORT_SPEC:
		return p.SecondChild() == n
	case token.EXPORT_SPEC:
		return p.FirstChild == n
	default:
		return true
	}
}

// GetInputID walks up from n to the nearest enclosing SCRIPT node and
// returns its InputID, or "" if n is not (yet) attached under one —
// spec.md section 7's DetachedNode case.
func GetInputID(n *Node) string {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Token == token.SCRIPT {
			return cur.InputID
		}
	}
	return ""
}

// GetLhsNodesOfDeclaration enumerates every NAME / STRING_KEY /
// IMPORT_STAR node introduced by a declaration node (VAR, LET, CONST,
// IMPORT, CATCH, or a function/arrow's PARAM_LIST), traversing
// OBJECT_PATTERN / ARRAY_PATTERN / DEFAULT_VALUE / REST along the way —
// spec.md section 4.B, "LHS extraction".
func GetLhsNodesOfDeclaration(n *Node) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	switch n.Token {
	case token.VAR, token.LET, token.CONST, token.IMPORT, token.PARAM_LIST:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, collectTargets(c)...)
		}
	case token.CATCH:
		out = append(out, collectTargets(n.FirstChild)...)
	}
	return out
}

// collectTargets recurses through the binding-pattern shapes that can
// appear as a single declarator or parameter: a bare NAME/IMPORT_STAR
// leaf, a shorthand STRING_KEY that is its own binding, a STRING_KEY
// wrapping a renamed target, an OBJECT_PATTERN/ARRAY_PATTERN of further
// targets, a DEFAULT_VALUE wrapping a target and its default expression
// (the default expression itself is never a binding site and is not
// walked), a REST wrapping a single target, or an IMPORT_SPEC whose
// first child (the external name in `import {y as x}`) must stay
// untouched while its second child (the local binding) is collected.
func collectTargets(n *Node) []*Node {
	if n == nil {
		return nil
	}
	switch n.Token {
	case token.NAME, token.IMPORT_STAR:
		return []*Node{n}
	case token.STRING_KEY:
		if n.FirstChild != nil {
			return collectTargets(n.FirstChild)
		}
		return []*Node{n}
	case token.OBJECT_PATTERN:
		var out []*Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, collectTargets(c)...)
		}
		return out
	case token.ARRAY_PATTERN:
		var out []*Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Token == token.ILLEGAL {
				continue // elided hole, e.g. `[a, , b]`
			}
			out = append(out, collectTargets(c)...)
		}
		return out
	case token.DEFAULT_VALUE:
		return collectTargets(n.FirstChild)
	case token.REST:
		return collectTargets(n.FirstChild)
	case token.IMPORT_SPEC:
		return collectTargets(n.SecondChild())
	default:
		return nil
	}
}
