// Package astio de/serializes ast.Node trees to a small JSON shape, the
// textual interchange format the CLI and tests use in place of a real
// JavaScript parser (spec.md explicitly treats parsing as an external
// concern; this package is the boundary format for its output/input).
//
// Grounded on Spicery-nutmeg-compiler/pkg/common/json_writer.go's
// PrintASTJSON/ReadASTJSON, generalized from that package's slice-of-
// children Node to this repo's parent/sibling-linked ast.Node, which
// cannot be fed to encoding/json directly (its pointers would cycle back
// through Parent).
package astio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/token"
)

// wireNode is the acyclic, JSON-friendly shape a Node is flattened to.
type wireNode struct {
	Token    string     `json:"token"`
	Name     string     `json:"name,omitempty"`
	InputID  string     `json:"input,omitempty"`
	IsExpr   bool       `json:"isExpr,omitempty"`
	Line     int        `json:"line,omitempty"`
	Column   int        `json:"column,omitempty"`
	Children []wireNode `json:"children,omitempty"`
}

func toWire(n *ast.Node) wireNode {
	w := wireNode{
		Token:   n.Token.String(),
		Name:    n.StringValue,
		InputID: n.InputID,
		IsExpr:  n.IsExpr,
		Line:    n.Pos.Line,
		Column:  n.Pos.Column,
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.Children = append(w.Children, toWire(c))
	}
	return w
}

func fromWire(w wireNode) (*ast.Node, error) {
	tok, ok := token.Lookup(w.Token)
	if !ok {
		return nil, fmt.Errorf("astio: unknown token %q", w.Token)
	}
	n := ast.New(tok)
	n.StringValue = w.Name
	n.InputID = w.InputID
	n.IsExpr = w.IsExpr
	n.Pos = token.Position{Filename: w.InputID, Line: w.Line, Column: w.Column}
	for _, cw := range w.Children {
		c, err := fromWire(cw)
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}
	return n, nil
}

// Write encodes root as indented JSON.
func Write(root *ast.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toWire(root))
}

// Read decodes a Node tree previously produced by Write.
func Read(r io.Reader) (*ast.Node, error) {
	var w wireNode
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, err
	}
	return fromWire(w)
}
