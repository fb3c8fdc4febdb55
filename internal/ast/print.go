package ast

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

// treeNode adapts a Node into the shape go-asciitree renders, following
// Spicery-nutmeg-compiler/pkg/parser/asciitree_writer.go's
// convertToTree/AsciiNode pattern.
type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

func toTreeNode(n *Node) treeNode {
	label := n.Token.String()
	var props []string
	if n.StringValue != "" {
		props = append(props, fmt.Sprintf("name: %s", n.StringValue))
	}
	if n.InputID != "" {
		props = append(props, fmt.Sprintf("input: %s", n.InputID))
	}
	if n.IsExpr {
		props = append(props, "expr: true")
	}
	var children []treeNode
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, toTreeNode(c))
	}
	return treeNode{Label: label, Props: props, Children: children}
}

// Dump renders the subtree rooted at n as a fancy ASCII tree, used by the
// CLI's dump subcommand.
func Dump(root *Node, w io.Writer) {
	fmt.Fprintln(w, asciitree.RenderFancy(toTreeNode(root)))
}
