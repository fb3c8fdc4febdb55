package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjarrett/jsuniquify"
	"github.com/mjarrett/jsuniquify/internal/astio"
)

var renameCmd = &cobra.Command{
	Use:   "rename [file ...]",
	Short: "Make every declared name in a JSON-encoded AST unique",
	Long: `rename reads one or more JSON-encoded ASTs (see internal/astio),
runs the Contextual or Inline renamer over each, and writes the result
back out as JSON — to stdout for a single file, or to "<file>.out.json"
for each input when more than one file is given.`,
	RunE: runRename,
}

func init() {
	renameCmd.Flags().Bool("inline", false, "use the Inline renamer instead of the default Contextual renamer")
	renameCmd.Flags().String("prefix", "", "prefix inserted into Inline suffixes (localNamePrefix)")
	renameCmd.Flags().Bool("remove-const", false, "leave ALL_CAPS constant names untouched (Inline renamer only)")
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	inline, _ := cmd.Flags().GetBool("inline")
	prefix, _ := cmd.Flags().GetString("prefix")
	removeConst, _ := cmd.Flags().GetBool("remove-const")
	if cmd.Flags().Changed("inline") {
		cfg.UseDefaultRenamer = !inline
	}
	if cmd.Flags().Changed("prefix") {
		cfg.LocalNamePrefix = prefix
	}
	if cmd.Flags().Changed("remove-const") {
		cfg.RemoveConst = removeConst
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

		if err := jsuniquify.Rename(root, cfg); err != nil {
			return fmt.Errorf("renaming: %w", err)
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
