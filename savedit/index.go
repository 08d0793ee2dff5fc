package savedit

import "github.com/haven-tools/savedit/savedit/xmltree"

// entityIndex is the only structure allowed to translate between the
// typed entities and their backing tree nodes. It is built once by the
// extraction pass and maintained incrementally: entries are inserted on
// create, dropped on delete and left alone on update, so every mutation
// resolves its target with a map access instead of a tree scan.
type entityIndex struct {
	ships      map[int]*shipEntry
	chars      map[int]*charEntry
	containers map[int][]*StorageContainer
}

type shipEntry struct {
	ship *Ship
	node *xmltree.Node
}

// charEntry binds a character to its backing element and indexes the
// per-kind sub-elements by their ids.
type charEntry struct {
	char   *Character
	node   *xmltree.Node
	attrs  map[int]*xmltree.Node
	skills map[int]*xmltree.Node
	traits map[int]*xmltree.Node
	conds  map[int]*xmltree.Node
	rels   map[int]*xmltree.Node
}

func newEntityIndex() *entityIndex {
	return &entityIndex{
		ships:      make(map[int]*shipEntry),
		chars:      make(map[int]*charEntry),
		containers: make(map[int][]*StorageContainer),
	}
}

func newCharEntry(ch *Character, node *xmltree.Node) *charEntry {
	return &charEntry{
		char:   ch,
		node:   node,
		attrs:  make(map[int]*xmltree.Node),
		skills: make(map[int]*xmltree.Node),
		traits: make(map[int]*xmltree.Node),
		conds:  make(map[int]*xmltree.Node),
		rels:   make(map[int]*xmltree.Node),
	}
}
