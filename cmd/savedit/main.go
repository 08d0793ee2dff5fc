// Command savedit is a command-line front-end for editing game save
// files. All document logic lives in the savedit package; this layer only
// parses and validates input, invokes the document operations and prints
// results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	savePath    string
	catalogPath string
	backup      bool
)

var rootCmd = &cobra.Command{
	Use:   "savedit",
	Short: "Edit game save files",
	Long: `Savedit edits persisted game saves: player credits, sandbox mode,
prestige points, ship sizes, storage contents and crew members. Edits are
written back losslessly; everything not touched stays byte-identical.

Examples:
  savedit -f game.sav show
  savedit -f game.sav globals set --credits 100000
  savedit -f game.sav ship resize 42 12 10
  savedit -f game.sav storage add 42 1 158 50
  savedit -f game.sav crew skill 8001 22 8`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&savePath, "save", "f", "", "Path to the save file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Optional YAML catalog overriding the built-in id tables")
	rootCmd.PersistentFlags().BoolVar(&backup, "backup", false, "Copy the save to a timestamped backup before writing")
	_ = rootCmd.MarkPersistentFlagRequired("save")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
