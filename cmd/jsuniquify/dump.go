package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjarrett/jsuniquify/internal/ast"
	"github.com/mjarrett/jsuniquify/internal/astio"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Render a JSON-encoded AST as an ASCII tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
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

	ast.Dump(root, cmd.OutOrStdout())
	return nil
}
