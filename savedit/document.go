// Package savedit edits persisted game-state documents. A save file is
// parsed into two views over one logical state: a generic attribute and
// element tree used for lossless round-tripping, and a typed projection
// (ships, crew, storage, globals) used for display and editing. Every
// mutation updates both views before returning; an entity index built at
// load time keeps the translation between them a map access.
//
// The package assumes exactly one logical writer per open document. It
// takes no in-process locks; cross-process exclusivity is enforced with a
// file lock held for the lifetime of the document.
package savedit

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/haven-tools/savedit/savedit/catalog"
	"github.com/haven-tools/savedit/savedit/xmltree"
)

const (
	rootTag       = "game"
	idCounterAttr = "idCounter"

	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// SaveDocument is the aggregate root: the parsed tree, the typed entity
// projection and the exclusive handle on the underlying file.
type SaveDocument struct {
	Credits        int
	SandboxEnabled bool
	PrestigePoints int
	Ships          []*Ship
	Characters     []*Character

	path     string
	tree     *xmltree.Document
	catalog  *catalog.Catalog
	fileLock *flock.Flock
	index    *entityIndex
}

// Load opens and parses a save file using the embedded reference tables.
// The returned document holds an exclusive lock on the file until Close.
func Load(path string) (*SaveDocument, error) {
	return LoadWithCatalog(path, catalog.Default())
}

// LoadWithCatalog is Load with caller-supplied id→name tables.
func LoadWithCatalog(path string, cat *catalog.Catalog) (*SaveDocument, error) {
	fileLock := flock.New(path + ".lock")
	if err := acquireLock(fileLock); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		_ = fileLock.Unlock()
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	tree, err := xmltree.Parse(data)
	if err != nil {
		_ = fileLock.Unlock()
		return nil, err
	}
	if tree.Root.Tag != rootTag {
		_ = fileLock.Unlock()
		return nil, fmt.Errorf("invalid save %s: %w", path, ErrNotGameSave)
	}

	doc := &SaveDocument{
		path:     path,
		tree:     tree,
		catalog:  cat,
		fileLock: fileLock,
	}
	doc.extract()
	return doc, nil
}

// acquireLock takes the cross-process file lock with bounded retries.
func acquireLock(fl *flock.Flock) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("save file is locked by another process")
	}
	return nil
}

// Save writes the tree back over the original file. Untouched content is
// byte-identical to what was loaded.
func (d *SaveDocument) Save() error {
	return d.SaveTo(d.path)
}

// SaveTo writes the tree to an arbitrary path. The write is atomic: a
// uniquely named temp file in the destination directory is renamed into
// place, so a crash mid-write never leaves a truncated save behind.
func (d *SaveDocument) SaveTo(path string) error {
	tmpFile := fmt.Sprintf("%s.tmp-%s", path, uuid.New().String())
	if err := os.WriteFile(tmpFile, d.tree.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to replace save: %w", err)
	}
	return nil
}

// Close releases the file lock. The document must not be used afterwards.
func (d *SaveDocument) Close() error {
	if d.fileLock == nil {
		return nil
	}
	err := d.fileLock.Unlock()
	_ = os.Remove(d.path + ".lock")
	d.fileLock = nil
	return err
}

// Path returns the file path the document was loaded from.
func (d *SaveDocument) Path() string { return d.path }

// Catalog returns the reference tables the document resolves display
// names with.
func (d *SaveDocument) Catalog() *catalog.Catalog { return d.catalog }

// Ship returns the ship with the given id, or nil.
func (d *SaveDocument) Ship(id int) *Ship {
	if e, ok := d.index.ships[id]; ok {
		return e.ship
	}
	return nil
}

// Character returns the character with the given id, or nil.
func (d *SaveDocument) Character(id int) *Character {
	if e, ok := d.index.chars[id]; ok {
		return e.char
	}
	return nil
}

// Containers returns the storage containers extracted for a ship, in
// document order. The slice is shared with the document; mutate the
// containers through the container operations only.
func (d *SaveDocument) Containers(shipID int) []*StorageContainer {
	return d.index.containers[shipID]
}

// IDCounter returns the document's identifier counter: the next id that
// allocation will issue.
func (d *SaveDocument) IDCounter() (int, error) {
	root := d.tree.Root
	if !root.HasAttr(idCounterAttr) {
		return 0, fmt.Errorf("root <%s> element has no %s attribute: %w", rootTag, idCounterAttr, ErrInvariant)
	}
	v, err := strconv.Atoi(root.Attr(idCounterAttr))
	if err != nil {
		return 0, fmt.Errorf("unparsable %s value %q: %w", idCounterAttr, root.Attr(idCounterAttr), ErrInvariant)
	}
	return v, nil
}

// allocateID issues the next entity id and advances the persisted counter
// in the same step, so a later allocation in this session cannot collide.
func (d *SaveDocument) allocateID() (int, error) {
	id, err := d.IDCounter()
	if err != nil {
		return 0, err
	}
	d.tree.Root.SetAttr(idCounterAttr, strconv.Itoa(id+1))
	return id, nil
}
