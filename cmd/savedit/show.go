package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print globals, ships and crew",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openSave()
		if err != nil {
			return err
		}
		defer func() { _ = doc.Close() }()

		fmt.Printf("Credits:  %d\n", doc.Credits)
		fmt.Printf("Sandbox:  %v\n", doc.SandboxEnabled)
		fmt.Printf("Prestige: %d\n", doc.PrestigePoints)

		fmt.Printf("\nShips (%d):\n", len(doc.Ships))
		for _, s := range doc.Ships {
			fmt.Printf("  %d  %-24s %dx%d squares\n", s.ID, s.Name, s.WidthUnits(), s.HeightUnits())
		}

		fmt.Printf("\nCrew (%d):\n", len(doc.Characters))
		for _, c := range doc.Characters {
			fmt.Printf("  %d  %-24s ship %d  %d skills, %d traits, %d conditions\n",
				c.ID, c.Name, c.ShipID, len(c.Skills), len(c.Traits), len(c.Conditions))
		}
		return nil
	},
}

var showCrewCmd = &cobra.Command{
	Use:   "crew <character-id>",
	Short: "Print one crew member in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		charID, err := parseInt(args[0], "character id")
		if err != nil {
			return err
		}
		doc, err := openSave()
		if err != nil {
			return err
		}
		defer func() { _ = doc.Close() }()

		c := doc.Character(charID)
		if c == nil {
			return fmt.Errorf("no crew member with id %d", charID)
		}
		fmt.Printf("%s (id %d, ship %d)\n", c.Name, c.ID, c.ShipID)
		fmt.Println("Attributes:")
		for _, a := range c.Attributes {
			fmt.Printf("  %-20s %d\n", a.DisplayName, a.Value)
		}
		fmt.Println("Skills:")
		for _, s := range c.Skills {
			fmt.Printf("  %-20s %d\n", s.DisplayName, s.Value)
		}
		fmt.Println("Traits:")
		for _, t := range c.Traits {
			fmt.Printf("  %s\n", t.DisplayName)
		}
		fmt.Println("Conditions:")
		for _, cond := range c.Conditions {
			fmt.Printf("  %s\n", cond.DisplayName)
		}
		fmt.Println("Relationships:")
		for _, r := range c.Relationships {
			fmt.Printf("  %-24s friendship %d, attraction %d, compatibility %d\n",
				r.TargetDisplayName, r.Friendship, r.Attraction, r.Compatibility)
		}
		return nil
	},
}

func init() {
	showCmd.AddCommand(showCrewCmd)
	rootCmd.AddCommand(showCmd)
}
