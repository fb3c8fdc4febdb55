package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mjarrett/jsuniquify/internal/astio"
	"github.com/mjarrett/jsuniquify/internal/renamer"
	"github.com/mjarrett/jsuniquify/internal/scope"
)

var reservedCmd = &cobra.Command{
	Use:   "reserved [file]",
	Short: "List names a renamer must never mint for this tree",
	Long: `reserved builds a scope tree over the given AST and prints every
ECMAScript reserved word plus every identifier referenced but never
declared in it (an implicit global) — the set a renamer must avoid
colliding with.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReserved,
}

func runReserved(cmd *cobra.Command, args []string) error {
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

	tree, err := scope.NewBuilder().BuildTree(root)
	if err != nil {
		return fmt.Errorf("building scopes: %w", err)
	}

	names := renamer.ComputeReservedNames(tree, root)
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorEnabled(colorFlag)
	for _, n := range sorted {
		if useColor {
			color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), n)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
	}
	return nil
}
