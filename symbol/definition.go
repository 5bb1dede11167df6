package symbol

import (
	"fmt"

	"github.com/NickyBoy89/java2go-rename/keywords"
)

// DefID is the stable identifier of a definition, assigned in the order that
// definitions are created
type DefID int

// Kind is the kind of symbol that a definition declares
type Kind int

const (
	Field Kind = iota
	Method
	Variable
)

func (k Kind) String() string {
	switch k {
	case Field:
		return "field"
	case Method:
		return "method"
	case Variable:
		return "variable"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is where a definition was declared
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Definition represents a single field, method, or local variable (including
// parameters)
type Definition struct {
	id   DefID
	kind Kind
	// The original Java name
	originalName string
	// The declared type, nil for methods returning void or for inferred types
	typ       *TypeRef
	modifiers keywords.Modifiers
	// The type that declares a field or method, or the innermost type that
	// encloses a local variable
	owner *ClassScope
	pos   Position

	// Set when this definition is a use of a declaration through a
	// parameterized type, ex: the `value` field of a `Box<String>`
	declaration *Definition
	typeArgs    []string
}

func (d *Definition) ID() DefID {
	return d.id
}

func (d *Definition) Kind() Kind {
	return d.kind
}

// OriginalName is the name that the definition was declared with
func (d *Definition) OriginalName() string {
	return d.originalName
}

// Type is the declared type of the definition
func (d *Definition) Type() *TypeRef {
	return d.typ
}

func (d *Definition) Modifiers() keywords.Modifiers {
	return d.modifiers
}

// IsStatic reports whether the definition is a static member
func (d *Definition) IsStatic() bool {
	return d.modifiers.Has(keywords.Static)
}

// IsPublic reports whether the definition is declared public
func (d *Definition) IsPublic() bool {
	return d.modifiers.Has(keywords.Public)
}

// Owner returns the declaring type of a field or method, or the enclosing type
// of a local variable
func (d *Definition) Owner() *ClassScope {
	return d.owner
}

func (d *Definition) Position() Position {
	return d.pos
}

// Declaration returns the generic declaration of the definition, stripping
// away any type instantiation it was accessed through
func (d *Definition) Declaration() *Definition {
	if d.declaration != nil {
		return d.declaration
	}
	return d
}

// Instantiate returns a use of the definition through a type parameterized
// with the given arguments
func (d *Definition) Instantiate(typeArgs []string) *Definition {
	inst := *d.Declaration()
	inst.declaration = d.Declaration()
	inst.typeArgs = typeArgs
	return &inst
}

// TypeArguments returns the type arguments of an instantiated definition
func (d *Definition) TypeArguments() []string {
	return d.typeArgs
}

func (d *Definition) String() string {
	if d.owner != nil && d.kind != Variable {
		return fmt.Sprintf("%s %s.%s", d.kind, d.owner.Name, d.originalName)
	}
	return fmt.Sprintf("%s %s", d.kind, d.originalName)
}
