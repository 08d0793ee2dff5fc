package savedit

import (
	"fmt"
	"strconv"

	"github.com/haven-tools/savedit/savedit/xmltree"
)

// CreateCharacter mints a new crew member on the given ship. The ship's
// first existing crew member serves as a structural template: its element
// is cloned, identity and name are overwritten, the attribute, skill and
// trait collections are replaced wholesale with the supplied lists, and
// conditions and relationships are cleared. The new id comes from the
// document's identifier counter, which advances in the same step.
//
// Fails with ErrNotFound when the ship is unknown or has no character to
// clone, and with ErrInvariant when the identifier counter is missing or
// unparsable. On failure neither the tree nor the typed view changes.
func (d *SaveDocument) CreateCharacter(shipID int, name string, attributes, skills, traits []NamedValue) (*Character, error) {
	shipEntry, ok := d.index.ships[shipID]
	if !ok {
		return nil, fmt.Errorf("ship %d: %w", shipID, ErrNotFound)
	}
	charsNode := shipEntry.node.Child("characters")
	if charsNode == nil {
		return nil, fmt.Errorf("ship %d has no character collection: %w", shipID, ErrNotFound)
	}
	template := charsNode.Child("c")
	if template == nil {
		return nil, fmt.Errorf("ship %d has no crew member to use as a template: %w", shipID, ErrNotFound)
	}

	id, err := d.allocateID()
	if err != nil {
		return nil, err
	}

	node := template.Clone()
	node.Tail = template.Tail
	node.SetAttr("name", name)
	node.SetAttr("entId", strconv.Itoa(id))
	if state := node.Child("state"); state != nil {
		// The template's bed assignment must not follow the clone.
		state.SetAttr("bedLink", "")
	}

	ch := &Character{Name: name, ID: id, ShipID: shipID}
	entry := newCharEntry(ch, node)

	if pers := node.Child("pers"); pers != nil {
		if attrsEl := pers.Child("attr"); attrsEl != nil {
			attrsEl.ClearChildren()
			for _, a := range attributes {
				el := xmltree.NewElement("a")
				el.SetAttr("id", strconv.Itoa(a.ID))
				el.SetAttr("points", strconv.Itoa(a.Value))
				attrsEl.AppendChild(el)
				entry.attrs[a.ID] = el
				ch.Attributes = append(ch.Attributes, NamedValue{ID: a.ID, DisplayName: d.attributeDisplayName(a), Value: a.Value})
			}
		}
		if skillsEl := pers.Child("skills"); skillsEl != nil {
			skillsEl.ClearChildren()
			for _, s := range skills {
				el := xmltree.NewElement("s")
				el.SetAttr("sk", strconv.Itoa(s.ID))
				el.SetAttr("level", strconv.Itoa(s.Value))
				skillsEl.AppendChild(el)
				entry.skills[s.ID] = el
				ch.Skills = append(ch.Skills, NamedValue{ID: s.ID, DisplayName: d.skillDisplayName(s), Value: s.Value})
			}
		}
		if traitsEl := pers.Child("traits"); traitsEl != nil {
			traitsEl.ClearChildren()
			for _, t := range traits {
				el := xmltree.NewElement("t")
				el.SetAttr("id", strconv.Itoa(t.ID))
				traitsEl.AppendChild(el)
				entry.traits[t.ID] = el
				ch.Traits = append(ch.Traits, NamedValue{ID: t.ID, DisplayName: d.traitDisplayName(t)})
			}
		}
		if conds := pers.Child("conditions"); conds != nil {
			conds.ClearChildren()
		}
		if rels := pers.Find("sociality", "relationships"); rels != nil {
			rels.ClearChildren()
		}
	}

	charsNode.AppendChild(node)
	d.Characters = append(d.Characters, ch)
	d.index.chars[id] = entry
	return ch, nil
}

// Display names on supplied records are honored when present so a caller
// can carry names it already resolved; otherwise the catalog decides.

func (d *SaveDocument) attributeDisplayName(v NamedValue) string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return d.catalog.AttributeName(v.ID)
}

func (d *SaveDocument) skillDisplayName(v NamedValue) string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return d.catalog.SkillName(v.ID)
}

func (d *SaveDocument) traitDisplayName(v NamedValue) string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return d.catalog.TraitName(v.ID)
}
