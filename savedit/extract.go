package savedit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haven-tools/savedit/savedit/xmltree"
)

// prestigeQuestLine is the sentinel value of the quest-line "type"
// attribute that carries the player's prestige points.
const prestigeQuestLine = "ExodusFleet"

// extract is the single pass over the tree that builds the typed entity
// projection and the entity index. Missing optional structure degrades to
// zero values; only the root-kind check (done by Load) is fatal.
func (d *SaveDocument) extract() {
	d.index = newEntityIndex()
	root := d.tree.Root

	d.extractGlobals(root)

	// Ships: every descendant ship element with a usable non-zero sid;
	// the first occurrence of an id wins.
	for _, shipEl := range root.FindAll("ship") {
		sid, err := shipEl.AttrInt("sid")
		if err != nil || sid == 0 {
			continue
		}
		if _, dup := d.index.ships[sid]; dup {
			continue
		}
		name := shipEl.Attr("sname")
		if name == "" {
			name = "Unnamed Ship"
		}
		w, _ := shipEl.AttrInt("sx")
		h, _ := shipEl.AttrInt("sy")
		ship := &Ship{ID: sid, Name: name, Width: w, Height: h}
		d.Ships = append(d.Ships, ship)
		d.index.ships[sid] = &shipEntry{ship: ship, node: shipEl}
		d.index.containers[sid] = d.extractContainers(shipEl)
	}

	// Characters: iterated per ship, in document order, so relationship
	// target names resolve against everyone extracted so far.
	for _, shipEl := range root.FindAll("ship") {
		sid, err := shipEl.AttrInt("sid")
		if err != nil {
			continue
		}
		chars := shipEl.Child("characters")
		if chars == nil {
			continue
		}
		for _, c := range chars.Children {
			if c.Tag == "c" {
				d.extractCharacter(c, sid)
			}
		}
	}
}

func (d *SaveDocument) extractGlobals(root *xmltree.Node) {
	if bank := root.Child("playerBank"); bank != nil && bank.HasAttr("ca") {
		// The balance is occasionally written with a fractional part.
		if v, err := strconv.ParseFloat(bank.Attr("ca"), 64); err == nil {
			d.Credits = int(v)
		}
	}
	if diff := root.Find("settings", "diff"); diff != nil && diff.HasAttr("sandbox") {
		d.SandboxEnabled = strings.EqualFold(diff.Attr("sandbox"), "true")
	}
	if ql := root.Find("questLines", "questLines"); ql != nil {
		for _, l := range ql.Children {
			if l.Tag != "l" || l.Attr("type") != prestigeQuestLine {
				continue
			}
			if l.HasAttr("playerPrestigePoints") {
				if v, err := l.AttrInt("playerPrestigePoints"); err == nil {
					d.PrestigePoints = v
				}
			}
			break
		}
	}
}

// extractCharacter builds one character and its index entry. A malformed
// numeric attribute on a sub-element skips that sub-element only.
func (d *SaveDocument) extractCharacter(node *xmltree.Node, shipID int) {
	id, err := node.AttrInt("entId")
	if err != nil || id == 0 {
		return
	}
	if _, dup := d.index.chars[id]; dup {
		return
	}
	name := node.Attr("name")
	if name == "" {
		name = "Unknown"
	}

	ch := &Character{Name: name, ID: id, ShipID: shipID}
	entry := newCharEntry(ch, node)

	if pers := node.Child("pers"); pers != nil {
		if skills := pers.Child("skills"); skills != nil {
			for _, s := range skills.Children {
				if s.Tag != "s" {
					continue
				}
				sk, err1 := s.AttrInt("sk")
				lvl, err2 := s.AttrInt("level")
				if err1 != nil || err2 != nil {
					continue
				}
				ch.Skills = append(ch.Skills, NamedValue{ID: sk, DisplayName: d.catalog.SkillName(sk), Value: lvl})
				entry.skills[sk] = s
			}
		}
		if traits := pers.Child("traits"); traits != nil {
			for _, t := range traits.Children {
				if t.Tag != "t" {
					continue
				}
				tid, err := t.AttrInt("id")
				if err != nil {
					continue
				}
				ch.Traits = append(ch.Traits, NamedValue{ID: tid, DisplayName: d.catalog.TraitName(tid)})
				entry.traits[tid] = t
			}
		}
		if attrs := pers.Child("attr"); attrs != nil {
			for _, a := range attrs.Children {
				if a.Tag != "a" {
					continue
				}
				aid, err1 := a.AttrInt("id")
				pts, err2 := a.AttrInt("points")
				if err1 != nil || err2 != nil {
					continue
				}
				ch.Attributes = append(ch.Attributes, NamedValue{ID: aid, DisplayName: d.catalog.AttributeName(aid), Value: pts})
				entry.attrs[aid] = a
			}
		}
		if conds := pers.Child("conditions"); conds != nil {
			for _, c := range conds.Children {
				if c.Tag != "c" {
					continue
				}
				cid, err := c.AttrInt("id")
				if err != nil {
					continue
				}
				// Only conditions the catalog knows surface in the typed
				// view; the game tracks many internal ones.
				if cname, known := d.catalog.Conditions[cid]; known {
					ch.Conditions = append(ch.Conditions, NamedValue{ID: cid, DisplayName: cname})
					entry.conds[cid] = c
				}
			}
		}
		if rels := pers.Find("sociality", "relationships"); rels != nil {
			for _, l := range rels.Children {
				if l.Tag != "l" {
					continue
				}
				target, err1 := l.AttrInt("targetId")
				friendship, err2 := l.AttrInt("friendship")
				attraction, err3 := l.AttrInt("attraction")
				compatibility, err4 := l.AttrInt("compatibility")
				if err1 != nil || err2 != nil || err3 != nil || err4 != nil || target == 0 {
					continue
				}
				ch.Relationships = append(ch.Relationships, Relationship{
					TargetID:          target,
					TargetDisplayName: d.targetName(target),
					Friendship:        friendship,
					Attraction:        attraction,
					Compatibility:     compatibility,
				})
				entry.rels[target] = l
			}
		}
	}

	d.Characters = append(d.Characters, ch)
	d.index.chars[id] = entry
}

// targetName resolves a relationship target against the characters known
// right now. Targets not yet extracted get a placeholder that is never
// retroactively fixed.
func (d *SaveDocument) targetName(targetID int) string {
	if e, ok := d.index.chars[targetID]; ok {
		return e.char.Name
	}
	return fmt.Sprintf("Unknown ID (%d)", targetID)
}

// extractContainers finds every storage feature under a ship. A feature
// counts as a container when it allows consumption and carries an
// inventory with at least one positive-quantity line.
func (d *SaveDocument) extractContainers(shipEl *xmltree.Node) []*StorageContainer {
	var out []*StorageContainer
	feats := shipEl.FindAllFunc(func(n *xmltree.Node) bool {
		return n.Tag == "feat" && n.HasAttr("eatAllowed")
	})
	for idx, feat := range feats {
		inv := firstDescendant(feat, "inv")
		if inv == nil {
			continue
		}

		display := fmt.Sprintf("Storage Bay - %d", idx+1)
		var parentEnt int
		var parentObj string
		if p := feat.Parent; p != nil && p.Tag == "e" {
			parentEnt, _ = p.AttrInt("entId")
			parentObj = p.Attr("objId")
			if parentEnt != 0 {
				display = fmt.Sprintf("Container (ID: %d)", parentEnt)
			} else if parentObj != "" {
				display = fmt.Sprintf("Storage (Type: %s) - %d", parentObj, idx+1)
			}
		}

		cont := &StorageContainer{
			DisplayName:    display,
			node:           feat,
			parentEntityID: parentEnt,
			parentObjectID: parentObj,
		}
		for _, s := range inv.Children {
			if s.Tag != "s" {
				continue
			}
			elem, err1 := s.AttrInt("elementaryId")
			qty, err2 := s.AttrInt("inStorage")
			if err1 != nil || err2 != nil {
				continue
			}
			if qty > 0 {
				cont.Items = append(cont.Items, StorageItem{ElementID: elem, Quantity: qty})
			}
		}
		if len(cont.Items) > 0 {
			out = append(out, cont)
		}
	}
	return out
}

func firstDescendant(n *xmltree.Node, tag string) *xmltree.Node {
	if all := n.FindAll(tag); len(all) > 0 {
		return all[0]
	}
	return nil
}
