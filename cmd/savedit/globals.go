package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haven-tools/savedit/savedit"
)

var (
	globalsCredits  string
	globalsSandbox  string
	globalsPrestige string
)

var globalsCmd = &cobra.Command{
	Use:   "globals",
	Short: "Edit player-wide values",
}

var globalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set credits, sandbox mode or prestige points",
	Long: `Set any of the player-wide values. Omitted flags leave the current
value untouched.

Examples:
  savedit -f game.sav globals set --credits 100000
  savedit -f game.sav globals set --sandbox true --prestige 12`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var u savedit.GlobalsUpdate
		if globalsCredits != "" {
			v, err := parseInt(globalsCredits, "credits")
			if err != nil {
				return err
			}
			u.Credits = &v
		}
		if globalsSandbox != "" {
			v, err := strconv.ParseBool(globalsSandbox)
			if err != nil {
				return fmt.Errorf("invalid sandbox value %q (use true or false)", globalsSandbox)
			}
			u.Sandbox = &v
		}
		if globalsPrestige != "" {
			v, err := parseInt(globalsPrestige, "prestige points")
			if err != nil {
				return err
			}
			u.PrestigePoints = &v
		}
		if u.Credits == nil && u.Sandbox == nil && u.PrestigePoints == nil {
			return fmt.Errorf("nothing to set: pass --credits, --sandbox or --prestige")
		}

		doc, err := openSave()
		if err != nil {
			return err
		}
		defer func() { _ = doc.Close() }()

		if err := doc.UpdateGlobals(u); err != nil {
			return err
		}
		if err := writeSave(doc); err != nil {
			return err
		}
		fmt.Printf("Globals updated: credits %d, sandbox %v, prestige %d\n",
			doc.Credits, doc.SandboxEnabled, doc.PrestigePoints)
		return nil
	},
}

func parseInt(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}

func init() {
	globalsSetCmd.Flags().StringVar(&globalsCredits, "credits", "", "Player credits")
	globalsSetCmd.Flags().StringVar(&globalsSandbox, "sandbox", "", "Sandbox mode (true/false)")
	globalsSetCmd.Flags().StringVar(&globalsPrestige, "prestige", "", "Prestige points")
	globalsCmd.AddCommand(globalsSetCmd)
	rootCmd.AddCommand(globalsCmd)
}
