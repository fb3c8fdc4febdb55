package scope

import (
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/token"
)

// Tree is the full set of scopes built for one compilation unit, indexed
// by the AST node that roots each one. Renamer and inverter passes both
// need this: the builder populates one Scope at a time, but resolving a
// reference requires knowing the scope in force at an arbitrary node.
type Tree struct {
	Global *Scope

	byNode map[*ast.Node]*Scope
}

// ScopeOf returns the scope rooted at n, or nil if n is not a scope root.
func (t *Tree) ScopeOf(n *ast.Node) *Scope { return t.byNode[n] }

// EnclosingScope returns the innermost scope lexically containing n,
// walking up through n's ancestors (including n itself) until it finds
// one that is itself a scope root.
func (t *Tree) EnclosingScope(n *ast.Node) *Scope {
	for cur := n; cur != nil; cur = cur.Parent {
		if s, ok := t.byNode[cur]; ok {
			return s
		}
	}
	return t.Global
}

// BuildTree builds a scope for every scope-introducing node reachable
// from root, in AST pre-order. This is the driver half of the Scope
// Builder: BuildScope populates one scope at a time; BuildTree walks the
// whole program instantiating one per FUNCTION/ARROW/CLASS/BLOCK/FOR
// family/CATCH/MODULE_BODY node and wiring each to its lexical parent.
func (b *Builder) BuildTree(root *ast.Node) (*Tree, error) {
	tree := &Tree{byNode: make(map[*ast.Node]*Scope)}

	global, err := b.BuildScope(root, nil)
	if err != nil {
		return nil, err
	}
	tree.Global = global
	tree.byNode[root] = global

	var walk func(n *ast.Node, current *Scope) error
	walk = func(n *ast.Node, current *Scope) error {
		if n.Token == token.SCRIPT && b.ChangeRootSet != nil && !b.ChangeRootSet[n] {
			return nil
		}
		switch n.Token {
		case token.FUNCTION, token.ARROW:
			fnScope, err := b.BuildScope(n, current)
			if err != nil {
				return err
			}
			tree.byNode[n] = fnScope
			// Default-value expressions in the param list can embed their
			// own function/class expressions (e.g. `function f(x = function(){}) {}`);
			// walk them under fnScope so those nested scopes get built too.
			if params := n.SecondChild(); params != nil {
				for c := params.FirstChild; c != nil; c = c.NextSibling {
					if err := walk(c, fnScope); err != nil {
						return err
					}
				}
			}
			if body := n.LastChild; body != nil {
				return walk(body, fnScope)
			}
			return nil

		case token.CATCH:
			catchScope, err := b.BuildScope(n, current)
			if err != nil {
				return err
			}
			tree.byNode[n] = catchScope
			body := n.SecondChild()
			if body == nil {
				return nil
			}
			for c := body.FirstChild; c != nil; c = c.NextSibling {
				if err := walk(c, catchScope); err != nil {
					return err
				}
			}
			return nil

		case token.BLOCK, token.FOR, token.FOR_IN, token.FOR_OF, token.SWITCH,
			token.MODULE_BODY, token.CLASS:
			childScope, err := b.BuildScope(n, current)
			if err != nil {
				return err
			}
			tree.byNode[n] = childScope
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if err := walk(c, childScope); err != nil {
					return err
				}
			}
			return nil

		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if err := walk(c, current); err != nil {
					return err
				}
			}
			return nil
		}
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := walk(c, global); err != nil {
			return nil, err
		}
	}
	return tree, nil
}
