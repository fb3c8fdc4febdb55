package jsuniquify

import (
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/renamer"
	"github.com/mjarrett/jsuniquify/internal/scope"
)

// Version is the jsuniquify version string.
const Version = "0.1.0"

// Rename is a convenience function that builds a Pass from config and
// runs it against root once.
//
// Parameters:
//   - root: the SCRIPT, MODULE_BODY, or ROOT node to process
//   - config: pass configuration (can be nil for defaults)
//
// Example:
//
//	err := jsuniquify.Rename(root, nil)
func Rename(root *ast.Node, config *Config) error {
	pass, err := NewPass(config)
	if err != nil {
		return err
	}
	return pass.Rename(root)
}

// Invert is a convenience function that builds a Pass from config and
// runs its Invert method against root once.
func Invert(root *ast.Node, config *Config) error {
	pass, err := NewPass(config)
	if err != nil {
		return err
	}
	return pass.Invert(root)
}

// NewPass builds a Pass from config. The returned Pass can be reused
// against multiple trees; its Inline renamer, if selected, shares one
// monotonic id counter across every call, matching the teacher's
// package-level regex-cache pattern of sharing state across calls
// rather than resetting it per invocation.
//
// Example:
//
//	pass, err := jsuniquify.NewPass(&jsuniquify.Config{LocalNamePrefix: "unique_"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, root := range roots {
//	    pass.Rename(root)
//	}
func NewPass(config *Config) (*Pass, error) {
	if config == nil {
		config = &Config{}
	}
	cfg := *config
	cfg.applyDefaults()

	var r renamer.Renamer
	if cfg.UseDefaultRenamer {
		r = renamer.NewContextual()
	} else {
		inline := renamer.NewInline(cfg.LocalNamePrefix)
		inline.RemoveConst = cfg.RemoveConst
		r = inline
	}

	return &Pass{config: &cfg, renamer: r}, nil
}

// MustNewPass is like NewPass but panics if config cannot be applied.
func MustNewPass(config *Config) *Pass {
	p, err := NewPass(config)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pass) buildTree(root *ast.Node) (*scope.Tree, error) {
	b := scope.NewBuilder()
	b.ChangeRootSet = p.config.changeRootSet()
	tree, err := b.BuildTree(root)
	if err != nil {
		return nil, &ScopeError{Message: err.Error()}
	}
	return tree, nil
}
