package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mjarrett/jsuniquify/internal/astio"
	"github.com/mjarrett/jsuniquify/internal/scope"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes [file]",
	Short: "Report scope-builder diagnostics for a JSON-encoded AST",
	Long: `scopes builds a scope tree over the given AST using a collecting
redeclaration handler and reports, with source positions where known,
every detached function/arrow scope root (one with no input id: no
enclosing SCRIPT, or a SCRIPT without one) and every redeclaration the builder observed — the two
diagnostic conditions spec.md section 7 describes as tolerated rather
than fatal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScopes,
}

func runScopes(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	root, err := astio.Read(in)
	if err != nil {
		return fmt.Errorf("decoding AST: %w", err)
	}

	redecl := &scope.CollectingRedeclarationHandler{}
	b := scope.NewBuilder()
	b.Redecl = redecl
	if _, err := b.BuildTree(root); err != nil {
		return fmt.Errorf("building scopes: %w", err)
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorEnabled(colorFlag)
	out := cmd.OutOrStdout()

	if len(b.Detached) == 0 && len(redecl.Redeclarations) == 0 {
		fmt.Fprintln(out, "no diagnostics")
		return nil
	}

	for _, d := range b.Detached {
		printDiagnostic(out, useColor, d.Error())
	}
	for _, r := range redecl.Redeclarations {
		msg := fmt.Sprintf("redeclaration: %q in %s scope", r.Name, r.Scope.Kind)
		if r.Pos.IsValid() {
			msg = fmt.Sprintf("%s at %s", msg, r.Pos)
		}
		printDiagnostic(out, useColor, msg)
	}
	return nil
}

func printDiagnostic(out io.Writer, useColor bool, msg string) {
	if useColor {
		color.New(color.FgRed).Fprintln(out, msg)
		return
	}
	fmt.Fprintln(out, msg)
}
