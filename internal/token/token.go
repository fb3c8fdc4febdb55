// Package token defines the AST node-kind tags consumed by the scope
// builder, renamer, and inverter.
package token

//go:generate stringer -type=Token -linecomment

// Token tags the kind of an ast.Node. It plays the role of the Closure
// Compiler's Node.getToken() in spec.md section 3: a single tagged
// enumeration dispatched on by the scope builder, rather than a class
// hierarchy.
type Token uint8

const (
	ILLEGAL Token = iota // <illegal>

	// Program structure.
	ROOT        // ROOT
	SCRIPT      // SCRIPT
	MODULE_BODY // MODULE_BODY

	// Declarations and binding forms.
	FUNCTION      // FUNCTION
	CLASS         // CLASS
	VAR           // VAR
	LET           // LET
	CONST         // CONST
	IMPORT        // IMPORT
	IMPORT_STAR   // IMPORT_STAR
	IMPORT_SPEC   // IMPORT_SPEC
	EXPORT        // EXPORT
	EXPORT_SPEC   // EXPORT_SPEC
	PARAM_LIST    // PARAM_LIST
	REST          // REST
	DEFAULT_VALUE // DEFAULT_VALUE
	ARROW         // ARROW

	// Control structures / block scopes.
	BLOCK  // BLOCK
	FOR    // FOR
	FOR_IN // FOR_IN
	FOR_OF // FOR_OF
	SWITCH // SWITCH
	CATCH  // CATCH
	TRY    // TRY
	IF     // IF
	WHILE  // WHILE
	DO     // DO

	// Patterns.
	OBJECT_PATTERN // OBJECT_PATTERN
	ARRAY_PATTERN  // ARRAY_PATTERN

	// Leaves and expressions relevant to reference rewriting.
	NAME        // NAME
	STRING_KEY  // STRING_KEY
	GETPROP     // GETPROP
	CALL        // CALL
	ASSIGN      // ASSIGN
	NUMBER      // NUMBER
	STRING      // STRING
	EXPR_RESULT // EXPR_RESULT
)

// String reports the canonical textual name used in golden tests and the
// JSON interchange format, matching the spelling spec.md section 3 uses.
func (t Token) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "<illegal>"
}

var names = map[Token]string{
	ROOT:           "ROOT",
	SCRIPT:         "SCRIPT",
	MODULE_BODY:    "MODULE_BODY",
	FUNCTION:       "FUNCTION",
	CLASS:          "CLASS",
	VAR:            "VAR",
	LET:            "LET",
	CONST:          "CONST",
	IMPORT:         "IMPORT",
	IMPORT_STAR:    "IMPORT_STAR",
	IMPORT_SPEC:    "IMPORT_SPEC",
	EXPORT:         "EXPORT",
	EXPORT_SPEC:    "EXPORT_SPEC",
	PARAM_LIST:     "PARAM_LIST",
	REST:           "REST",
	DEFAULT_VALUE:  "DEFAULT_VALUE",
	ARROW:          "ARROW",
	BLOCK:          "BLOCK",
	FOR:            "FOR",
	FOR_IN:         "FOR_IN",
	FOR_OF:         "FOR_OF",
	SWITCH:         "SWITCH",
	CATCH:          "CATCH",
	TRY:            "TRY",
	IF:             "IF",
	WHILE:          "WHILE",
	DO:             "DO",
	OBJECT_PATTERN: "OBJECT_PATTERN",
	ARRAY_PATTERN:  "ARRAY_PATTERN",
	NAME:           "NAME",
	STRING_KEY:     "STRING_KEY",
	GETPROP:        "GETPROP",
	CALL:           "CALL",
	ASSIGN:         "ASSIGN",
	NUMBER:         "NUMBER",
	STRING:         "STRING",
	EXPR_RESULT:    "EXPR_RESULT",
}

var byName = func() map[string]Token {
	m := make(map[string]Token, len(names))
	for tok, name := range names {
		m[name] = tok
	}
	return m
}()

// Lookup returns the Token for its canonical name, used by internal/astio
// when decoding the JSON interchange format.
func Lookup(name string) (Token, bool) {
	tok, ok := byName[name]
	return tok, ok
}

// Keywords is the set of ECMAScript reserved words that can never be used
// as a renamed identifier, regardless of scope.
var Keywords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "export": {}, "extends": {}, "finally": {}, "for": {},
	"function": {}, "if": {}, "import": {}, "in": {}, "instanceof": {},
	"new": {}, "return": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {}, "let": {}, "static": {},
	"enum": {}, "await": {}, "null": {}, "true": {}, "false": {},
}

// StrictModeReservedWords are additionally reserved in ECMAScript strict
// mode (and therefore in every module, which is always strict).
var StrictModeReservedWords = map[string]struct{}{
	"implements": {}, "interface": {}, "package": {}, "private": {},
	"protected": {}, "public": {},
}
