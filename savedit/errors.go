package savedit

import "errors"

// ErrNotFound reports that an entity id referenced by a creation call is
// absent from the document. Update-style operations never return it; they
// are defined as no-ops when their target is missing.
var ErrNotFound = errors.New("not found")

// ErrInvariant reports that required document scaffolding (the identifier
// counter, a structural template) is missing or unusable. The failed
// operation leaves both the tree and the typed view untouched.
var ErrInvariant = errors.New("invariant violation")

// ErrNotGameSave reports that the input parsed as XML but its root element
// is not the expected document kind.
var ErrNotGameSave = errors.New("missing root <game> element")
