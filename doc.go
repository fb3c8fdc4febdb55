// Package jsuniquify makes every declared name in a JavaScript AST
// unique within its scope, and can invert that renaming later.
//
// jsuniquify is a Go port of the scope-aware renaming core at the heart
// of Google Closure Compiler's MakeDeclaredNamesUnique pass, featuring:
//   - A scope builder that follows ECMAScript's var-hoisting, lexical
//     let/const/class, function-expression, and catch-parameter rules
//   - Two renaming strategies, Contextual and Inline
//   - An inverter that undoes a renaming pass where it is safe to do so
//
// # Quick Start
//
// For simple one-off renaming:
//
//	root, err := astio.Read(f)
//	err = jsuniquify.Rename(root, nil)
//
// With configuration:
//
//	err := jsuniquify.Rename(root, &jsuniquify.Config{
//	    UseDefaultRenamer: false,
//	    LocalNamePrefix:   "unique_",
//	})
//
// # Compiled Passes
//
// For repeated use against many trees with the same settings:
//
//	pass, err := jsuniquify.NewPass(&jsuniquify.Config{RemoveConst: true})
//	for _, root := range roots {
//	    if err := pass.Rename(root); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Configuration
//
// The [Config] type selects the renaming strategy and its knobs:
//   - UseDefaultRenamer chooses Contextual (true) or Inline (false)
//   - RemoveConst and LocalNamePrefix tune the Inline renamer
//   - ChangeRootSet restricts scope construction to a subset of scripts
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ScopeError]: the scope builder encountered a malformed tree
//   - [RenameError]: a renaming or inversion pass failed
//
// # Thread Safety
//
// A [Pass] is not safe for concurrent use against overlapping trees; under
// the Inline strategy its renamer shares one uid.Source counter across
// every call to Rename, so the suffix numbers a Pass hands out keep
// advancing across successive trees rather than restarting at 0.
package jsuniquify
