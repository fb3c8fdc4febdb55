package jsuniquify

import (
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/inverter"
	"github.com/mjarrett/jsuniquify/internal/renamer"
)

// Pass is a configured renaming or inversion operation ready to run
// against one or more trees.
type Pass struct {
	config  *Config
	renamer renamer.Renamer
}

// Rename builds a scope tree over root and applies the configured
// renaming strategy (Contextual when config.UseDefaultRenamer is true,
// Inline when it is false, its zero value) in place. When config.Invert is
// set, it dispatches to Invert instead, per spec.md section 5's
// invert knob.
//
// root must be a SCRIPT, MODULE_BODY, or ROOT node; it is the tree's own
// global scope root.
func (p *Pass) Rename(root *ast.Node) error {
	if p.config.Invert {
		return p.Invert(root)
	}

	tree, err := p.buildTree(root)
	if err != nil {
		return err
	}
	if err := p.renamer.Rename(tree); err != nil {
		return &RenameError{Message: err.Error()}
	}
	return nil
}

// Invert builds a scope tree over root and strips the
// "$jscomp$..." suffix grammar back off every binding where it is safe
// to do so, regardless of config.UseDefaultRenamer.
func (p *Pass) Invert(root *ast.Node) error {
	tree, err := p.buildTree(root)
	if err != nil {
		return err
	}
	if err := inverter.Invert(tree); err != nil {
		return &RenameError{Message: err.Error()}
	}
	return nil
}
