package savedit

import "strconv"

// GlobalsUpdate names the global fields to change. Nil fields are left
// untouched.
type GlobalsUpdate struct {
	Credits        *int
	Sandbox        *bool
	PrestigePoints *int
}

// UpdateGlobals writes each present field to the tree and the typed view
// in one step. A field whose backing structure is absent from the
// document is skipped; the document does not grow scaffolding for it.
func (d *SaveDocument) UpdateGlobals(u GlobalsUpdate) error {
	root := d.tree.Root

	if u.Credits != nil {
		if bank := root.Child("playerBank"); bank != nil {
			bank.SetAttr("ca", strconv.Itoa(*u.Credits))
			d.Credits = *u.Credits
		}
	}

	if u.Sandbox != nil {
		if diff := root.Find("settings", "diff"); diff != nil {
			diff.SetAttr("sandbox", strconv.FormatBool(*u.Sandbox))
			d.SandboxEnabled = *u.Sandbox
		}
	}

	if u.PrestigePoints != nil {
		if ql := root.Find("questLines", "questLines"); ql != nil {
			for _, l := range ql.Children {
				if l.Tag == "l" && l.Attr("type") == prestigeQuestLine {
					l.SetAttr("playerPrestigePoints", strconv.Itoa(*u.PrestigePoints))
					d.PrestigePoints = *u.PrestigePoints
					break
				}
			}
		}
	}

	return nil
}

// UpdateShipSize converts grid-square dimensions to device units and
// writes both views. Unknown ship ids are a no-op.
func (d *SaveDocument) UpdateShipSize(shipID, widthUnits, heightUnits int) error {
	entry, ok := d.index.ships[shipID]
	if !ok {
		return nil
	}
	w := widthUnits * TileSize
	h := heightUnits * TileSize
	entry.node.SetAttr("sx", strconv.Itoa(w))
	entry.node.SetAttr("sy", strconv.Itoa(h))
	entry.ship.Width = w
	entry.ship.Height = h
	return nil
}
