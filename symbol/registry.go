package symbol

import (
	"errors"
	"fmt"
)

// ErrConflictingRename is returned when a definition that was already renamed
// is renamed again to a different name
var ErrConflictingRename = errors.New("definition already renamed to a different name")

// Rename is a single rename that was applied to a definition
type Rename struct {
	Definition *Definition
	From       string
	To         string
}

// Registry stores the current name of every renamed definition. Every later
// lookup of a definition, through any reference to it, sees the new name
type Registry struct {
	names   map[DefID]string
	renames []Rename
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[DefID]string)}
}

// Rename changes the name of a definition. Renaming a definition to the name
// that it already has is a no-op, and renaming it to a different name after it
// has been renamed fails with ErrConflictingRename
func (r *Registry) Rename(def *Definition, name string) error {
	def = def.Declaration()
	if current, renamed := r.names[def.id]; renamed {
		if current == name {
			return nil
		}
		return fmt.Errorf("%w: %v is %s, not %s", ErrConflictingRename, def, current, name)
	}
	if name == def.originalName {
		return nil
	}
	r.names[def.id] = name
	r.renames = append(r.renames, Rename{Definition: def, From: def.originalName, To: name})
	return nil
}

// Name returns the current name of a definition
func (r *Registry) Name(def *Definition) string {
	def = def.Declaration()
	if name, renamed := r.names[def.id]; renamed {
		return name
	}
	return def.originalName
}

// Renamed reports whether the definition has been given a new name
func (r *Registry) Renamed(def *Definition) bool {
	_, renamed := r.names[def.Declaration().id]
	return renamed
}

// Renames returns every applied rename, in the order they were applied
func (r *Registry) Renames() []Rename {
	renames := make([]Rename, len(r.renames))
	copy(renames, r.renames)
	return renames
}
