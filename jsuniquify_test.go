package jsuniquify_test

import (
	"testing"

	"github.com/mjarrett/jsuniquify"
	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/token"
)

// ref builds a NAME node used as a variable reference (as opposed to a
// declaration site).
func ref(name string) *ast.Node {
	return ast.NewName(name)
}

// stmt wraps an expression node in an EXPR_RESULT statement.
func stmt(expr *ast.Node) *ast.Node {
	n := ast.New(token.EXPR_RESULT)
	n.AddChild(expr)
	return n
}

// funcDecl builds a FUNCTION declaration named name, with the given
// param names, whose body is the given statements.
func funcDecl(name string, params []string, body ...*ast.Node) *ast.Node {
	fn := ast.New(token.FUNCTION)
	fn.AddChild(ast.NewName(name))

	paramList := ast.New(token.PARAM_LIST)
	for _, p := range params {
		paramList.AddChild(ast.NewName(p))
	}
	fn.AddChild(paramList)

	block := ast.New(token.BLOCK)
	for _, s := range body {
		block.AddChild(s)
	}
	fn.AddChild(block)
	return fn
}

func varDecl(names ...string) *ast.Node {
	v := ast.New(token.VAR)
	for _, name := range names {
		v.AddChild(ast.NewName(name))
	}
	return v
}

func names(n *ast.Node) []string {
	var out []string
	ast.Walk(n, func(c *ast.Node) bool {
		if ast.IsReferencePosition(c) {
			out = append(out, c.StringValue)
		}
		return true
	})
	return out
}

func containsName(n *ast.Node, name string) bool {
	for _, s := range names(n) {
		if s == name {
			return true
		}
	}
	return false
}

func TestRenameContextualParamShadowsGlobal(t *testing.T) {
	// var a; function foo(a) { a; }
	root := ast.New(token.SCRIPT)
	root.AddChild(varDecl("a"))
	root.AddChild(funcDecl("foo", []string{"a"}, stmt(ref("a"))))

	if err := jsuniquify.Rename(root, &jsuniquify.Config{UseDefaultRenamer: true}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	fn := root.Children()[1]
	body := fn.Children()[2]
	if !containsName(body, "a$jscomp$1") {
		t.Errorf("expected shadowing param renamed to a$jscomp$1, body names = %v", names(body))
	}
}

func TestRenameContextualSiblingFunctionsGetSequentialSuffixes(t *testing.T) {
	// function f1(a) { a; } function f2(a) { a; }
	root := ast.New(token.SCRIPT)
	root.AddChild(funcDecl("f1", []string{"a"}, stmt(ref("a"))))
	root.AddChild(funcDecl("f2", []string{"a"}, stmt(ref("a"))))

	if err := jsuniquify.Rename(root, &jsuniquify.Config{UseDefaultRenamer: true}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	f1Body := root.Children()[0].Children()[2]
	f2Body := root.Children()[1].Children()[2]
	if containsName(f1Body, "a$jscomp$1") {
		t.Errorf("first occurrence should stay bare, got %v", names(f1Body))
	}
	if !containsName(f2Body, "a$jscomp$1") {
		t.Errorf("second occurrence should become a$jscomp$1, got %v", names(f2Body))
	}
}

func TestRenameInlineRenamesEveryLocal(t *testing.T) {
	root := ast.New(token.SCRIPT)
	root.AddChild(funcDecl("f", []string{"x"}, stmt(ref("x"))))

	if err := jsuniquify.Rename(root, &jsuniquify.Config{UseDefaultRenamer: false, LocalNamePrefix: "unique_"}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	body := root.Children()[0].Children()[2]
	got := names(body)
	if len(got) != 1 || got[0] == "x" {
		t.Errorf("expected x to be renamed with unique_ prefix, got %v", got)
	}
}

func TestInlineMangleLeadingUnderscore(t *testing.T) {
	root := ast.New(token.SCRIPT)
	root.AddChild(funcDecl("f", []string{"_cache"}, stmt(ref("_cache"))))

	if err := jsuniquify.Rename(root, &jsuniquify.Config{UseDefaultRenamer: false}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	body := root.Children()[0].Children()[2]
	got := names(body)
	if len(got) != 1 {
		t.Fatalf("expected exactly one reference, got %v", got)
	}
	if got[0] != "JSCompiler__cache$jscomp$0" {
		t.Errorf("expected the leading underscore kept, got %q", got[0])
	}
}

// function bar(a) { a; } function foo(a) { a; } — the forward pass
// suffixes foo's "a"; with no outer "a" in scope, inverting restores it.
func TestInvertRestoresShortNames(t *testing.T) {
	root := ast.New(token.SCRIPT)
	root.AddChild(funcDecl("bar", []string{"a"}, stmt(ref("a"))))
	root.AddChild(funcDecl("foo", []string{"a"}, stmt(ref("a"))))

	if err := jsuniquify.Rename(root, &jsuniquify.Config{UseDefaultRenamer: true}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if err := jsuniquify.Invert(root, nil); err != nil {
		t.Fatalf("Invert() error = %v", err)
	}

	fn := root.Children()[1]
	paramName := fn.Children()[1].FirstChild.StringValue
	if paramName != "a" {
		t.Errorf("expected param to invert back to %q, got %q", "a", paramName)
	}
}

// spec.md section 6's "invert" configuration option: Config.Invert must
// make Rename (and the Pass it builds) dispatch to the Inverter instead
// of a forward renamer, not just leave Invert as a separate method a
// caller has to know to call themselves.
func TestRenameDispatchesToInverterWhenConfigInvertSet(t *testing.T) {
	root := ast.New(token.SCRIPT)
	root.AddChild(varDecl("a"))
	root.AddChild(funcDecl("foo", []string{"a$jscomp$1"}, stmt(ref("a$jscomp$1"))))

	if err := jsuniquify.Rename(root, &jsuniquify.Config{Invert: true}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	fn := root.Children()[1]
	paramName := fn.Children()[1].FirstChild.StringValue
	if paramName != "a$jscomp$1" {
		t.Errorf("expected param to keep its suffix (shadows outer \"a\"), got %q", paramName)
	}
}

// buildNestedTree returns a tree shaped like:
//
//	var a; function outer(a) { function inner(a) { a; } a; }
//
// deep enough that a scope-ordering bug would show up as a different
// numbering between two otherwise-identical runs.
func buildNestedTree() *ast.Node {
	inner := funcDecl("inner", []string{"a"}, stmt(ref("a")))
	root := ast.New(token.SCRIPT)
	root.AddChild(varDecl("a"))
	root.AddChild(funcDecl("outer", []string{"a"}, inner, stmt(ref("a"))))
	return root
}

// Two independent passes (fresh Pass, fresh uid.Source) over structurally
// identical trees must assign identical names — invariant 7, determinism.
func TestRenameIsDeterministicAcrossIndependentPasses(t *testing.T) {
	treeA := buildNestedTree()
	treeB := buildNestedTree()

	cfg := &jsuniquify.Config{UseDefaultRenamer: false, LocalNamePrefix: "unique_"}
	if err := jsuniquify.Rename(treeA, cfg); err != nil {
		t.Fatalf("Rename(treeA) error = %v", err)
	}
	if err := jsuniquify.Rename(treeB, cfg); err != nil {
		t.Fatalf("Rename(treeB) error = %v", err)
	}

	gotA, gotB := names(treeA), names(treeB)
	if len(gotA) != len(gotB) {
		t.Fatalf("name count mismatch: %v vs %v", gotA, gotB)
	}
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Errorf("position %d: %q != %q (non-deterministic rename)", i, gotA[i], gotB[i])
		}
	}
}

func TestMustNewPassDoesNotPanicOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustNewPass(nil) should not panic, got %v", r)
		}
	}()
	_ = jsuniquify.MustNewPass(nil)
}
