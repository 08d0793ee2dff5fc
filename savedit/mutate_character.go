package savedit

import (
	"strconv"

	"github.com/haven-tools/savedit/savedit/xmltree"
)

// pers returns the personality element of an indexed character, or nil.
// Every character mutation hangs off it; a character element without one
// is left alone.
func (e *charEntry) pers() *xmltree.Node {
	return e.node.Child("pers")
}

// ensureChild returns the named direct child, creating and appending it
// when absent. This is the only scaffolding a mutation may synthesize:
// the direct parent chain that holds the new value.
func ensureChild(n *xmltree.Node, tag string) *xmltree.Node {
	if c := n.Child(tag); c != nil {
		return c
	}
	c := xmltree.NewElement(tag)
	n.AppendChild(c)
	return c
}

// UpdateCharacterAttribute upserts one attribute value on both views.
// Unknown character ids are a no-op.
func (d *SaveDocument) UpdateCharacterAttribute(charID, attrID, value int) error {
	entry, ok := d.index.chars[charID]
	if !ok {
		return nil
	}
	pers := entry.pers()
	if pers == nil {
		return nil
	}
	attrs := ensureChild(pers, "attr")

	a := entry.attrs[attrID]
	if a == nil {
		a = attrs.ChildWithAttr("a", "id", strconv.Itoa(attrID))
	}
	if a == nil {
		a = xmltree.NewElement("a")
		a.SetAttr("id", strconv.Itoa(attrID))
		attrs.AppendChild(a)
	}
	a.SetAttr("points", strconv.Itoa(value))
	entry.attrs[attrID] = a

	upsertNamedValue(&entry.char.Attributes, attrID, d.catalog.AttributeName(attrID), value)
	return nil
}

// UpdateCharacterSkill upserts one skill level on both views.
func (d *SaveDocument) UpdateCharacterSkill(charID, skillID, level int) error {
	entry, ok := d.index.chars[charID]
	if !ok {
		return nil
	}
	pers := entry.pers()
	if pers == nil {
		return nil
	}
	skills := ensureChild(pers, "skills")

	s := entry.skills[skillID]
	if s == nil {
		s = skills.ChildWithAttr("s", "sk", strconv.Itoa(skillID))
	}
	if s == nil {
		s = xmltree.NewElement("s")
		s.SetAttr("sk", strconv.Itoa(skillID))
		skills.AppendChild(s)
	}
	s.SetAttr("level", strconv.Itoa(level))
	entry.skills[skillID] = s

	upsertNamedValue(&entry.char.Skills, skillID, d.catalog.SkillName(skillID), level)
	return nil
}

// SetAllAttributes upserts every attribute the catalog knows to the same
// value.
func (d *SaveDocument) SetAllAttributes(charID, value int) error {
	for _, id := range d.catalog.AttributeIDs() {
		if err := d.UpdateCharacterAttribute(charID, id, value); err != nil {
			return err
		}
	}
	return nil
}

// SetAllSkills upserts every skill the catalog knows to the same level.
func (d *SaveDocument) SetAllSkills(charID, level int) error {
	for _, id := range d.catalog.SkillIDs() {
		if err := d.UpdateCharacterSkill(charID, id, level); err != nil {
			return err
		}
	}
	return nil
}

// AddTrait adds a trait to a character. Adding a trait the character
// already has is a no-op.
func (d *SaveDocument) AddTrait(charID, traitID int) error {
	entry, ok := d.index.chars[charID]
	if !ok {
		return nil
	}
	pers := entry.pers()
	if pers == nil {
		return nil
	}
	traits := ensureChild(pers, "traits")

	id := strconv.Itoa(traitID)
	if entry.traits[traitID] != nil || traits.ChildWithAttr("t", "id", id) != nil {
		return nil
	}
	t := xmltree.NewElement("t")
	t.SetAttr("id", id)
	traits.AppendChild(t)
	entry.traits[traitID] = t

	for _, tv := range entry.char.Traits {
		if tv.ID == traitID {
			return nil
		}
	}
	entry.char.Traits = append(entry.char.Traits, NamedValue{ID: traitID, DisplayName: d.catalog.TraitName(traitID)})
	return nil
}

// RemoveTrait removes a trait if present; absent traits are a no-op.
func (d *SaveDocument) RemoveTrait(charID, traitID int) error {
	entry, ok := d.index.chars[charID]
	if !ok {
		return nil
	}
	pers := entry.pers()
	if pers == nil {
		return nil
	}
	if traits := pers.Child("traits"); traits != nil {
		t := entry.traits[traitID]
		if t == nil {
			t = traits.ChildWithAttr("t", "id", strconv.Itoa(traitID))
		}
		if t != nil {
			traits.RemoveChild(t)
		}
	}
	delete(entry.traits, traitID)
	removeNamedValue(&entry.char.Traits, traitID)
	return nil
}

// RemoveCondition removes a condition if present; absent conditions are a
// no-op. Conditions the catalog does not list are still removable from
// the tree by id.
func (d *SaveDocument) RemoveCondition(charID, conditionID int) error {
	entry, ok := d.index.chars[charID]
	if !ok {
		return nil
	}
	pers := entry.pers()
	if pers == nil {
		return nil
	}
	if conds := pers.Child("conditions"); conds != nil {
		c := entry.conds[conditionID]
		if c == nil {
			c = conds.ChildWithAttr("c", "id", strconv.Itoa(conditionID))
		}
		if c != nil {
			conds.RemoveChild(c)
		}
	}
	delete(entry.conds, conditionID)
	removeNamedValue(&entry.char.Conditions, conditionID)
	return nil
}

// RelationshipUpdate names the relationship scores to change. Nil fields
// keep their current value; on creation of a new record they default to
// zero.
type RelationshipUpdate struct {
	Friendship    *int
	Attraction    *int
	Compatibility *int
}

// UpdateRelationship upserts a relationship record toward targetID,
// writing only the present score fields. A record created here resolves
// its target display name from the current character set.
func (d *SaveDocument) UpdateRelationship(charID, targetID int, u RelationshipUpdate) error {
	entry, ok := d.index.chars[charID]
	if !ok {
		return nil
	}
	pers := entry.pers()
	if pers == nil {
		return nil
	}
	sociality := ensureChild(pers, "sociality")
	rels := ensureChild(sociality, "relationships")

	l := entry.rels[targetID]
	if l == nil {
		l = rels.ChildWithAttr("l", "targetId", strconv.Itoa(targetID))
	}
	if l == nil {
		l = xmltree.NewElement("l")
		l.SetAttr("targetId", strconv.Itoa(targetID))
		rels.AppendChild(l)
	}
	if u.Friendship != nil {
		l.SetAttr("friendship", strconv.Itoa(*u.Friendship))
	}
	if u.Attraction != nil {
		l.SetAttr("attraction", strconv.Itoa(*u.Attraction))
	}
	if u.Compatibility != nil {
		l.SetAttr("compatibility", strconv.Itoa(*u.Compatibility))
	}
	entry.rels[targetID] = l

	for i := range entry.char.Relationships {
		r := &entry.char.Relationships[i]
		if r.TargetID != targetID {
			continue
		}
		if u.Friendship != nil {
			r.Friendship = *u.Friendship
		}
		if u.Attraction != nil {
			r.Attraction = *u.Attraction
		}
		if u.Compatibility != nil {
			r.Compatibility = *u.Compatibility
		}
		return nil
	}

	rec := Relationship{TargetID: targetID, TargetDisplayName: d.targetName(targetID)}
	if u.Friendship != nil {
		rec.Friendship = *u.Friendship
	}
	if u.Attraction != nil {
		rec.Attraction = *u.Attraction
	}
	if u.Compatibility != nil {
		rec.Compatibility = *u.Compatibility
	}
	entry.char.Relationships = append(entry.char.Relationships, rec)
	return nil
}

func upsertNamedValue(list *[]NamedValue, id int, name string, value int) {
	for i := range *list {
		if (*list)[i].ID == id {
			(*list)[i].Value = value
			return
		}
	}
	*list = append(*list, NamedValue{ID: id, DisplayName: name, Value: value})
}

func removeNamedValue(list *[]NamedValue, id int) {
	kept := (*list)[:0]
	for _, v := range *list {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	*list = kept
}
