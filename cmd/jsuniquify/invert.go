package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjarrett/jsuniquify"
	"github.com/mjarrett/jsuniquify/internal/astio"
)

var invertCmd = &cobra.Command{
	Use:   "invert [file ...]",
	Short: "Strip a prior renaming pass's suffixes where it is safe to do so",
	Long: `invert reads one or more JSON-encoded ASTs produced by a previous
"jsuniquify rename" (or any renamer emitting the "$jscomp$..." suffix
grammar) and removes suffixes scope by scope, innermost first, wherever
doing so would not introduce a collision.`,
	RunE: runInvert,
}

func runInvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	files := inputFiles(args)
	multi := len(files) > 1

	return eachFile(files, func(path string) error {
		in, err := openInput(path)
		if err != nil {
			return err
		}
		defer in.Close()

		root, err := astio.Read(in)
		if err != nil {
			return fmt.Errorf("decoding AST: %w", err)
		}

		if err := jsuniquify.Invert(root, cfg); err != nil {
			return fmt.Errorf("inverting: %w", err)
		}

		outPath := "-"
		if multi {
			outPath = path + ".out.json"
		}
		out, err := openOutput(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		return astio.Write(root, out)
	})
}
