// jsuniquify - scope-aware identifier uniquifier
//
// Reads a JSON-encoded AST (see internal/astio), runs a renaming or
// inversion pass over it, and writes the result back out as JSON.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mjarrett/jsuniquify"
)

// version is set by GoReleaser at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jsuniquify",
	Short: "Scope-aware identifier uniquifier for JavaScript ASTs",
	Long: `jsuniquify makes every declared name in a JavaScript AST unique
within its scope, or inverts a previous renaming pass where it is safe to
do so.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(reservedCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(scopesCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds a jsuniquify.Config from the --config flag. When the
// flag is unset it returns a Config selecting the Contextual renamer,
// with every other field at its default.
func loadConfig(cmd *cobra.Command) (*jsuniquify.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil || path == "" {
		return &jsuniquify.Config{UseDefaultRenamer: true}, nil
	}
	return jsuniquify.LoadConfig(path)
}
