// Package catalog holds the static id→name reference tables used to label
// save entities: character attributes, skills, traits, conditions and
// storage element kinds. The tables are configuration, not document
// content; a user-supplied YAML file can override or extend the embedded
// defaults without touching the core.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Catalog maps entity ids to display names, one table per entity kind.
type Catalog struct {
	Attributes map[int]string `yaml:"attributes"`
	Skills     map[int]string `yaml:"skills"`
	Traits     map[int]string `yaml:"traits"`
	Conditions map[int]string `yaml:"conditions"`
	Storage    map[int]string `yaml:"storage"`
}

// Default returns the embedded reference tables.
func Default() *Catalog {
	var c Catalog
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		// The embedded asset is compiled in; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("catalog: embedded defaults invalid: %v", err))
	}
	return &c
}

// Load reads a YAML catalog file and overlays it on the embedded defaults.
// Entries present in the file win; everything else keeps its default name.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	var overlay Catalog
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	c := Default()
	merge(c.Attributes, overlay.Attributes)
	merge(c.Skills, overlay.Skills)
	merge(c.Traits, overlay.Traits)
	merge(c.Conditions, overlay.Conditions)
	merge(c.Storage, overlay.Storage)
	return c, nil
}

func merge(dst, src map[int]string) {
	for id, name := range src {
		dst[id] = name
	}
}

// AttributeName resolves an attribute id, falling back to a placeholder
// that embeds the numeric id.
func (c *Catalog) AttributeName(id int) string {
	if n, ok := c.Attributes[id]; ok {
		return n
	}
	return fmt.Sprintf("Attr %d", id)
}

// SkillName resolves a skill id.
func (c *Catalog) SkillName(id int) string {
	if n, ok := c.Skills[id]; ok {
		return n
	}
	return fmt.Sprintf("Skill %d", id)
}

// TraitName resolves a trait id.
func (c *Catalog) TraitName(id int) string {
	if n, ok := c.Traits[id]; ok {
		return n
	}
	return fmt.Sprintf("Trait %d", id)
}

// ConditionName resolves a condition id.
func (c *Catalog) ConditionName(id int) string {
	if n, ok := c.Conditions[id]; ok {
		return n
	}
	return fmt.Sprintf("Condition %d", id)
}

// StorageName resolves a storage element id.
func (c *Catalog) StorageName(id int) string {
	if n, ok := c.Storage[id]; ok {
		return n
	}
	return fmt.Sprintf("Unknown Item (%d)", id)
}

// AttributeIDs returns every known attribute id in ascending order.
func (c *Catalog) AttributeIDs() []int { return sortedIDs(c.Attributes) }

// SkillIDs returns every known skill id in ascending order.
func (c *Catalog) SkillIDs() []int { return sortedIDs(c.Skills) }

func sortedIDs(m map[int]string) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
