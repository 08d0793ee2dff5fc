package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haven-tools/savedit/savedit"
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Edit storage containers",
	Long: `Edit the storage containers of a ship. Containers are addressed by
their 1-based position in "storage list" output.`,
}

var storageListCmd = &cobra.Command{
	Use:   "list <ship-id>",
	Short: "List a ship's storage containers and contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shipID, err := parseInt(args[0], "ship id")
		if err != nil {
			return err
		}
		doc, err := openSave()
		if err != nil {
			return err
		}
		defer func() { _ = doc.Close() }()

		containers := doc.Containers(shipID)
		if len(containers) == 0 {
			fmt.Printf("No storage containers on ship %d\n", shipID)
			return nil
		}
		for i, c := range containers {
			fmt.Printf("%d. %s\n", i+1, c.DisplayName)
			for _, it := range c.Items {
				fmt.Printf("   %6d x %s\n", it.Quantity, itemName(doc, it.ElementID))
			}
		}
		return nil
	},
}

var storageAddCmd = &cobra.Command{
	Use:   "add <ship-id> <container> <element-id> <quantity>",
	Short: "Add items to a container, merging with an existing line",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return storageMutation(args, func(doc *savedit.SaveDocument, c *savedit.StorageContainer, elem, qty int) error {
			if qty <= 0 {
				return fmt.Errorf("quantity must be a positive integer")
			}
			return doc.AddItem(c, elem, qty)
		})
	},
}

var storageSetCmd = &cobra.Command{
	Use:   "set <ship-id> <container> <element-id> <quantity>",
	Short: "Set a line's exact quantity; zero removes the line",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return storageMutation(args, func(doc *savedit.SaveDocument, c *savedit.StorageContainer, elem, qty int) error {
			return doc.SetItemQuantity(c, elem, qty)
		})
	},
}

var storageRemoveCmd = &cobra.Command{
	Use:   "remove <ship-id> <container> <element-id>",
	Short: "Remove a line from a container",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return storageMutation(append(args, "0"), func(doc *savedit.SaveDocument, c *savedit.StorageContainer, elem, _ int) error {
			return doc.RemoveItem(c, elem)
		})
	},
}

// storageMutation handles the shared open-resolve-mutate-save flow of the
// storage subcommands. args is ship id, container position, element id
// and quantity.
func storageMutation(args []string, fn func(*savedit.SaveDocument, *savedit.StorageContainer, int, int) error) error {
	shipID, err := parseInt(args[0], "ship id")
	if err != nil {
		return err
	}
	pos, err := parseInt(args[1], "container position")
	if err != nil {
		return err
	}
	elem, err := parseInt(args[2], "element id")
	if err != nil {
		return err
	}
	qty, err := parseInt(args[3], "quantity")
	if err != nil {
		return err
	}

	doc, err := openSave()
	if err != nil {
		return err
	}
	defer func() { _ = doc.Close() }()

	containers := doc.Containers(shipID)
	if pos < 1 || pos > len(containers) {
		return fmt.Errorf("ship %d has no container %d (it has %d)", shipID, pos, len(containers))
	}
	c := containers[pos-1]

	if err := fn(doc, c, elem, qty); err != nil {
		return err
	}
	if err := writeSave(doc); err != nil {
		return err
	}
	fmt.Printf("%s now holds %d line(s)\n", c.DisplayName, len(c.Items))
	return nil
}

func itemName(doc *savedit.SaveDocument, elementID int) string {
	return doc.Catalog().StorageName(elementID)
}

func init() {
	storageCmd.AddCommand(storageListCmd)
	storageCmd.AddCommand(storageAddCmd)
	storageCmd.AddCommand(storageSetCmd)
	storageCmd.AddCommand(storageRemoveCmd)
	rootCmd.AddCommand(storageCmd)
}
