package savedit

import (
	"fmt"
	"strconv"

	"github.com/haven-tools/savedit/savedit/xmltree"
)

// inv returns the container's inventory element, or nil.
func (c *StorageContainer) inv() *xmltree.Node {
	return firstDescendant(c.node, "inv")
}

// AddItem adds quantity to a container line, merging into an existing line
// for the element or appending a new one. Quantity must be positive; the
// removal threshold belongs to SetItemQuantity.
func (d *SaveDocument) AddItem(c *StorageContainer, elementID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}
	inv := c.inv()
	if inv == nil {
		inv = xmltree.NewElement("inv")
		c.node.AppendChild(inv)
	}

	elem := strconv.Itoa(elementID)
	s := inv.ChildWithAttr("s", "elementaryId", elem)
	if s == nil {
		s = xmltree.NewElement("s")
		s.SetAttr("elementaryId", elem)
		s.SetAttr("inStorage", strconv.Itoa(qty))
		s.SetAttr("onTheWayIn", "0")
		s.SetAttr("onTheWayOut", "0")
		inv.AppendChild(s)
	} else {
		cur, _ := s.AttrInt("inStorage")
		s.SetAttr("inStorage", strconv.Itoa(cur+qty))
	}

	for i := range c.Items {
		if c.Items[i].ElementID == elementID {
			c.Items[i].Quantity += qty
			return nil
		}
	}
	c.Items = append(c.Items, StorageItem{ElementID: elementID, Quantity: qty})
	return nil
}

// SetItemQuantity upserts a container line to an exact quantity. A
// quantity of zero or less removes the line from both views.
func (d *SaveDocument) SetItemQuantity(c *StorageContainer, elementID, qty int) error {
	inv := c.inv()
	if inv == nil {
		return nil
	}
	elem := strconv.Itoa(elementID)
	s := inv.ChildWithAttr("s", "elementaryId", elem)

	if qty <= 0 {
		if s != nil {
			inv.RemoveChild(s)
		}
		c.removeItem(elementID)
		return nil
	}

	if s == nil {
		s = xmltree.NewElement("s")
		s.SetAttr("elementaryId", elem)
		inv.AppendChild(s)
	}
	s.SetAttr("inStorage", strconv.Itoa(qty))

	for i := range c.Items {
		if c.Items[i].ElementID == elementID {
			c.Items[i].Quantity = qty
			return nil
		}
	}
	c.Items = append(c.Items, StorageItem{ElementID: elementID, Quantity: qty})
	return nil
}

// RemoveItem deletes a container line if present.
func (d *SaveDocument) RemoveItem(c *StorageContainer, elementID int) error {
	inv := c.inv()
	if inv == nil {
		return nil
	}
	if s := inv.ChildWithAttr("s", "elementaryId", strconv.Itoa(elementID)); s != nil {
		inv.RemoveChild(s)
	}
	c.removeItem(elementID)
	return nil
}

func (c *StorageContainer) removeItem(elementID int) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ElementID != elementID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}
