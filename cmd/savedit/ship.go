package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Edit ships",
}

var shipResizeCmd = &cobra.Command{
	Use:   "resize <ship-id> <width> <height>",
	Short: "Resize a ship's build grid (in squares)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		shipID, err := parseInt(args[0], "ship id")
		if err != nil {
			return err
		}
		w, err := parseInt(args[1], "width")
		if err != nil {
			return err
		}
		h, err := parseInt(args[2], "height")
		if err != nil {
			return err
		}
		if w < 1 || h < 1 {
			return fmt.Errorf("width and height must be at least 1 square")
		}

		doc, err := openSave()
		if err != nil {
			return err
		}
		defer func() { _ = doc.Close() }()

		ship := doc.Ship(shipID)
		if ship == nil {
			return fmt.Errorf("no ship with id %d", shipID)
		}
		if err := doc.UpdateShipSize(shipID, w, h); err != nil {
			return err
		}
		if err := writeSave(doc); err != nil {
			return err
		}
		fmt.Printf("%s resized to %dx%d squares\n", ship.Name, ship.WidthUnits(), ship.HeightUnits())
		return nil
	},
}

func init() {
	shipCmd.AddCommand(shipResizeCmd)
	rootCmd.AddCommand(shipCmd)
}
