package savedit_test

import (
	"testing"

	"github.com/haven-tools/savedit/savedit"
)

func TestLoadGlobals(t *testing.T) {
	doc := loadSample(t)

	if doc.Credits != 5000 {
		t.Errorf("Credits = %d, want 5000", doc.Credits)
	}
	if doc.SandboxEnabled {
		t.Error("SandboxEnabled = true, want false")
	}
	if doc.PrestigePoints != 7 {
		t.Errorf("PrestigePoints = %d, want 7", doc.PrestigePoints)
	}
}

func TestLoadFractionalCredits(t *testing.T) {
	doc := loadSample(t, replace(`ca="5000"`, `ca="5000.75"`))
	if doc.Credits != 5000 {
		t.Errorf("Credits = %d, want 5000", doc.Credits)
	}
}

func TestLoadShips(t *testing.T) {
	doc := loadSample(t)

	if len(doc.Ships) != 2 {
		t.Fatalf("got %d ships, want 2 (duplicate sid must be skipped)", len(doc.Ships))
	}
	horizon := doc.Ship(42)
	if horizon == nil {
		t.Fatal("ship 42 not found")
	}
	if horizon.Name != "Horizon" {
		t.Errorf("ship 42 name = %q, want Horizon (first occurrence wins)", horizon.Name)
	}
	if horizon.Width != 224 || horizon.Height != 280 {
		t.Errorf("ship 42 size = %dx%d, want 224x280", horizon.Width, horizon.Height)
	}
	if horizon.WidthUnits() != 8 || horizon.HeightUnits() != 10 {
		t.Errorf("ship 42 units = %dx%d, want 8x10", horizon.WidthUnits(), horizon.HeightUnits())
	}
	if doc.Ship(43) == nil {
		t.Error("ship 43 not found")
	}
	if doc.Ship(99) != nil {
		t.Error("unknown ship id returned a ship")
	}
}

func TestLoadCharacters(t *testing.T) {
	doc := loadSample(t)

	if len(doc.Characters) != 2 {
		t.Fatalf("got %d characters, want 2", len(doc.Characters))
	}

	ada := doc.Character(8001)
	if ada == nil {
		t.Fatal("character 8001 not found")
	}
	if ada.Name != "Ada" || ada.ShipID != 42 {
		t.Errorf("character 8001 = %q on ship %d, want Ada on 42", ada.Name, ada.ShipID)
	}

	t.Run("attributes", func(t *testing.T) {
		if len(ada.Attributes) != 2 {
			t.Fatalf("got %d attributes, want 2", len(ada.Attributes))
		}
		got := ada.Attributes[0]
		want := savedit.NamedValue{ID: 210, DisplayName: "Bravery", Value: 3}
		if got != want {
			t.Errorf("attribute[0] = %+v, want %+v", got, want)
		}
	})

	t.Run("skills", func(t *testing.T) {
		if len(ada.Skills) != 2 {
			t.Fatalf("got %d skills, want 2", len(ada.Skills))
		}
		got := ada.Skills[0]
		want := savedit.NamedValue{ID: 22, DisplayName: "Piloting", Value: 4}
		if got != want {
			t.Errorf("skill[0] = %+v, want %+v", got, want)
		}
	})

	t.Run("conditionsFiltered", func(t *testing.T) {
		// id 9999 is in the save but not in the catalog, so only 2001
		// surfaces.
		if len(ada.Conditions) != 1 {
			t.Fatalf("got %d conditions, want 1", len(ada.Conditions))
		}
		if ada.Conditions[0].ID != 2001 {
			t.Errorf("condition id = %d, want 2001", ada.Conditions[0].ID)
		}
	})

	t.Run("relationshipNames", func(t *testing.T) {
		// Ada is extracted before Brook, so her record toward 8002 gets
		// the placeholder; Brook's record toward 8001 resolves to Ada.
		if len(ada.Relationships) != 1 {
			t.Fatalf("got %d relationships, want 1", len(ada.Relationships))
		}
		if got := ada.Relationships[0].TargetDisplayName; got != "Unknown ID (8002)" {
			t.Errorf("forward target name = %q, want placeholder", got)
		}
		brook := doc.Character(8002)
		if brook == nil {
			t.Fatal("character 8002 not found")
		}
		if got := brook.Relationships[0].TargetDisplayName; got != "Ada" {
			t.Errorf("backward target name = %q, want Ada", got)
		}
		if brook.Relationships[0].Friendship != 6 {
			t.Errorf("friendship = %d, want 6", brook.Relationships[0].Friendship)
		}
	})
}

func TestLoadContainers(t *testing.T) {
	doc := loadSample(t)

	conts := doc.Containers(42)
	if len(conts) != 1 {
		t.Fatalf("got %d containers, want 1 (empty inventories must be dropped)", len(conts))
	}
	c := conts[0]
	if c.DisplayName != "Container (ID: 501)" {
		t.Errorf("display name = %q, want Container (ID: 501)", c.DisplayName)
	}
	if len(c.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(c.Items))
	}
	if c.Items[0].ElementID != 158 || c.Items[0].Quantity != 40 {
		t.Errorf("item[0] = %+v, want element 158 qty 40", c.Items[0])
	}
	if got := doc.Containers(43); len(got) != 0 {
		t.Errorf("ship 43 has %d containers, want 0", len(got))
	}
}
