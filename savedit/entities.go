package savedit

import "github.com/haven-tools/savedit/savedit/xmltree"

// TileSize is the number of device units per ship-grid square. Ship
// dimensions are persisted in device units; the UI works in squares.
const TileSize = 28

// NamedValue is an id-keyed record with a cached display name: a character
// attribute, skill, trait or condition. The display name is resolved from
// the catalog once, when the record is built, and never re-derived from
// the tree.
type NamedValue struct {
	ID          int
	DisplayName string
	Value       int
}

// Relationship holds one character's scores toward another. The target
// display name is resolved against the characters known at the time the
// record was built; a target extracted later keeps its placeholder name.
type Relationship struct {
	TargetID          int
	TargetDisplayName string
	Friendship        int
	Attraction        int
	Compatibility     int
}

// Ship is one ship entity. Width and Height are device units.
type Ship struct {
	ID     int
	Name   string
	Width  int
	Height int
}

// WidthUnits returns the ship width in grid squares.
func (s *Ship) WidthUnits() int { return s.Width / TileSize }

// HeightUnits returns the ship height in grid squares.
func (s *Ship) HeightUnits() int { return s.Height / TileSize }

// Character is one crew member.
type Character struct {
	Name          string
	ID            int
	ShipID        int
	Attributes    []NamedValue
	Skills        []NamedValue
	Traits        []NamedValue
	Conditions    []NamedValue
	Relationships []Relationship
}

// StorageItem is one line in a storage container. Quantity is always
// positive; a line whose quantity drops to zero is removed, not stored.
type StorageItem struct {
	ElementID int
	Quantity  int
}

// StorageContainer is a storage feature on a ship. The display name is
// derived at extraction time from the owning entity and is not persisted.
type StorageContainer struct {
	DisplayName string
	Items       []StorageItem

	node           *xmltree.Node // backing feat element
	parentEntityID int
	parentObjectID string
}
