package savedit_test

import (
	"testing"

	"github.com/haven-tools/savedit/savedit"
)

func named(list []savedit.NamedValue, id int) (savedit.NamedValue, bool) {
	for _, v := range list {
		if v.ID == id {
			return v, true
		}
	}
	return savedit.NamedValue{}, false
}

func TestUpdateCharacterAttribute(t *testing.T) {
	doc := loadSample(t)

	t.Run("updatesExisting", func(t *testing.T) {
		if err := doc.UpdateCharacterAttribute(8001, 210, 5); err != nil {
			t.Fatal(err)
		}
		v, _ := named(doc.Character(8001).Attributes, 210)
		if v.Value != 5 {
			t.Errorf("attribute 210 = %d, want 5", v.Value)
		}
	})

	t.Run("createsMissing", func(t *testing.T) {
		// 218 is not in Ada's save data.
		if err := doc.UpdateCharacterAttribute(8001, 218, 4); err != nil {
			t.Fatal(err)
		}
		v, ok := named(doc.Character(8001).Attributes, 218)
		if !ok || v.Value != 4 || v.DisplayName != "Intelligence" {
			t.Errorf("attribute 218 = %+v, want Intelligence 4", v)
		}
	})

	t.Run("unknownCharacterIsNoop", func(t *testing.T) {
		if err := doc.UpdateCharacterAttribute(7777, 210, 5); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("survivesReload", func(t *testing.T) {
		ada := reload(t, doc).Character(8001)
		if v, _ := named(ada.Attributes, 210); v.Value != 5 {
			t.Errorf("reloaded attribute 210 = %d, want 5", v.Value)
		}
		if v, _ := named(ada.Attributes, 218); v.Value != 4 {
			t.Errorf("reloaded attribute 218 = %d, want 4", v.Value)
		}
	})
}

func TestUpdateCharacterSkill(t *testing.T) {
	doc := loadSample(t)

	if err := doc.UpdateCharacterSkill(8002, 22, 8); err != nil {
		t.Fatal(err)
	}
	v, ok := named(doc.Character(8002).Skills, 22)
	if !ok || v.Value != 8 || v.DisplayName != "Piloting" {
		t.Errorf("skill 22 = %+v, want Piloting 8", v)
	}

	brook := reload(t, doc).Character(8002)
	if v, _ := named(brook.Skills, 22); v.Value != 8 {
		t.Errorf("reloaded skill 22 = %d, want 8", v.Value)
	}
}

func TestSetAllAttributesAndSkills(t *testing.T) {
	doc := loadSample(t)
	cat := doc.Catalog()

	if err := doc.SetAllAttributes(8001, 5); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetAllSkills(8001, 8); err != nil {
		t.Fatal(err)
	}

	ada := reload(t, doc).Character(8001)
	if len(ada.Attributes) != len(cat.AttributeIDs()) {
		t.Errorf("got %d attributes, want %d", len(ada.Attributes), len(cat.AttributeIDs()))
	}
	for _, v := range ada.Attributes {
		if v.Value != 5 {
			t.Errorf("attribute %d = %d, want 5", v.ID, v.Value)
		}
	}
	if len(ada.Skills) != len(cat.SkillIDs()) {
		t.Errorf("got %d skills, want %d", len(ada.Skills), len(cat.SkillIDs()))
	}
	for _, v := range ada.Skills {
		if v.Value != 8 {
			t.Errorf("skill %d = %d, want 8", v.ID, v.Value)
		}
	}
}

func TestTraits(t *testing.T) {
	doc := loadSample(t)

	t.Run("addIsIdempotent", func(t *testing.T) {
		if err := doc.AddTrait(8002, 100); err != nil {
			t.Fatal(err)
		}
		if err := doc.AddTrait(8002, 100); err != nil {
			t.Fatal(err)
		}
		count := 0
		for _, v := range doc.Character(8002).Traits {
			if v.ID == 100 {
				count++
			}
		}
		if count != 1 {
			t.Errorf("trait 100 appears %d times, want 1", count)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := doc.RemoveTrait(8001, 105); err != nil {
			t.Fatal(err)
		}
		if _, ok := named(doc.Character(8001).Traits, 105); ok {
			t.Error("trait 105 still present after removal")
		}
		// Removing an absent trait is a no-op.
		if err := doc.RemoveTrait(8001, 105); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("survivesReload", func(t *testing.T) {
		got := reload(t, doc)
		if _, ok := named(got.Character(8002).Traits, 100); !ok {
			t.Error("reloaded character 8002 missing trait 100")
		}
		if _, ok := named(got.Character(8001).Traits, 105); ok {
			t.Error("reloaded character 8001 still has trait 105")
		}
	})
}

func TestRemoveCondition(t *testing.T) {
	doc := loadSample(t)

	if err := doc.RemoveCondition(8001, 2001); err != nil {
		t.Fatal(err)
	}
	if len(doc.Character(8001).Conditions) != 0 {
		t.Error("condition 2001 still present after removal")
	}

	// 9999 never surfaced in the typed view but is still in the tree; it
	// must be removable by id all the same.
	if err := doc.RemoveCondition(8001, 9999); err != nil {
		t.Fatal(err)
	}

	got := reload(t, doc).Character(8001)
	if len(got.Conditions) != 0 {
		t.Errorf("reloaded conditions = %+v, want none", got.Conditions)
	}
}

func TestUpdateRelationship(t *testing.T) {
	doc := loadSample(t)

	t.Run("partialUpdateKeepsOtherScores", func(t *testing.T) {
		err := doc.UpdateRelationship(8002, 8001, savedit.RelationshipUpdate{Friendship: intp(10)})
		if err != nil {
			t.Fatal(err)
		}
		r := doc.Character(8002).Relationships[0]
		if r.Friendship != 10 {
			t.Errorf("friendship = %d, want 10", r.Friendship)
		}
		if r.Attraction != 0 || r.Compatibility != 2 {
			t.Errorf("untouched scores changed: %+v", r)
		}
	})

	t.Run("createsRecordWithResolvedName", func(t *testing.T) {
		err := doc.UpdateRelationship(8001, 8002, savedit.RelationshipUpdate{Attraction: intp(3)})
		if err != nil {
			t.Fatal(err)
		}
		// Ada already had a record toward 8002 from the save; its
		// placeholder name sticks, only the score changes.
		r := doc.Character(8001).Relationships[0]
		if r.Attraction != 3 || r.TargetDisplayName != "Unknown ID (8002)" {
			t.Errorf("record = %+v", r)
		}

		// A genuinely new record toward a known character resolves the
		// name now.
		err = doc.UpdateRelationship(8002, 7500, savedit.RelationshipUpdate{Friendship: intp(1)})
		if err != nil {
			t.Fatal(err)
		}
		brook := doc.Character(8002)
		last := brook.Relationships[len(brook.Relationships)-1]
		if last.TargetID != 7500 || last.TargetDisplayName != "Unknown ID (7500)" {
			t.Errorf("new record = %+v", last)
		}
		if last.Friendship != 1 || last.Attraction != 0 {
			t.Errorf("new record scores = %+v, want absent fields zero", last)
		}
	})

	t.Run("survivesReload", func(t *testing.T) {
		got := reload(t, doc).Character(8002)
		if got.Relationships[0].Friendship != 10 {
			t.Errorf("reloaded friendship = %d, want 10", got.Relationships[0].Friendship)
		}
	})
}
