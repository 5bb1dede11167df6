package symbol

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/java2go-rename/nodeutil"
)

// TypeID is the stable identifier of a type, its index in the program's list
// of types
type TypeID int

// TypeKind is the kind of declaration that a type was declared by
type TypeKind int

const (
	Class TypeKind = iota
	Interface
	Enum
	Annotation
	Record
	Anonymous
)

func (k TypeKind) String() string {
	switch k {
	case Class:
		return "class"
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	case Annotation:
		return "annotation"
	case Record:
		return "record"
	case Anonymous:
		return "anonymous class"
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// ClassScope represents a single declared type, and the declarations in it
type ClassScope struct {
	ID   TypeID
	Kind TypeKind
	// The simple name of the type. Anonymous classes are named after their
	// enclosing type and their position in it, ex: Main1
	Name    string
	Package string
	// The type that lexically encloses this one, nil for top-level types
	Outer *ClassScope
	// The superclass, nil if the type has no superclass in the program
	Super *TypeRef
	// Every type that is declared within this type, including local and
	// anonymous classes
	Nested []*ClassScope
	// Normal and static fields, in declaration order
	Fields []*Definition
	// Methods, in declaration order. Constructors are not methods, since
	// they are translated into `New` functions
	Methods []*Definition

	File *FileScope
	Span nodeutil.Span
	Line int

	anonymousCount int
}

// Superclass returns the declaration of the type's superclass, or nil
func (cs *ClassScope) Superclass() *ClassScope {
	return cs.Super.Declaration()
}

// Extends sets the superclass of the type to the given declaration,
// parameterized with the given type arguments
func (cs *ClassScope) Extends(super *ClassScope, typeArgs ...string) {
	cs.Super = &TypeRef{Name: super.Name, Args: typeArgs, decl: super}
}

// QualifiedName returns the dotted name of the type, including its package
// and enclosing types
func (cs *ClassScope) QualifiedName() string {
	var parts []string
	for scope := cs; scope != nil; scope = scope.Outer {
		parts = append([]string{scope.Name}, parts...)
	}
	if cs.Package != "" {
		parts = append([]string{cs.Package}, parts...)
	}
	return strings.Join(parts, ".")
}

func (cs *ClassScope) String() string {
	return fmt.Sprintf("%s %s", cs.Kind, cs.QualifiedName())
}

// FindMethod searches through the immediate class's methods find a specific method
func (cs *ClassScope) FindMethod() Finder {
	cm := classMethodFinder(*cs)
	return &cm
}

// FindField searches through the immediate class's fields to find a specific field
func (cs *ClassScope) FindField() Finder {
	cm := classFieldFinder(*cs)
	return &cm
}

type classMethodFinder ClassScope

func (cm *classMethodFinder) By(criteria func(d *Definition) bool) []*Definition {
	results := []*Definition{}
	for _, method := range cm.Methods {
		if criteria(method) {
			results = append(results, method)
		}
	}
	return results
}

func (cm *classMethodFinder) ByOriginalName(originalName string) []*Definition {
	return cm.By(func(d *Definition) bool {
		return d.originalName == originalName
	})
}

type classFieldFinder ClassScope

func (cm *classFieldFinder) By(criteria func(d *Definition) bool) []*Definition {
	results := []*Definition{}
	for _, field := range cm.Fields {
		if criteria(field) {
			results = append(results, field)
		}
	}
	return results
}

func (cm *classFieldFinder) ByOriginalName(originalName string) []*Definition {
	return cm.By(func(d *Definition) bool {
		return d.originalName == originalName
	})
}

// LookupField searches for a field by its original name, first in the type
// itself and then through its superclasses. It returns nil if none was found
func (cs *ClassScope) LookupField(name string) *Definition {
	seen := make(map[TypeID]bool)
	for scope := cs; scope != nil && !seen[scope.ID]; scope = scope.Superclass() {
		seen[scope.ID] = true
		if found := scope.FindField().ByOriginalName(name); len(found) > 0 {
			return found[0]
		}
	}
	return nil
}

// FindNested searches the types declared directly within this type
func (cs *ClassScope) FindNested(name string) *ClassScope {
	for _, nested := range cs.Nested {
		if nested.Name == name && nested.Kind != Anonymous {
			return nested
		}
	}
	return nil
}

// TypeRef is a reference to a type, as it was written in the source. A
// parameterized reference such as `Box<String>` keeps its arguments, but
// resolves to the same declaration as every other use of `Box`
type TypeRef struct {
	// The erased name of the type, without arguments or qualifiers
	Name string
	Args []string

	decl *ClassScope
}

// Declaration returns the canonical declaration of the referenced type, or nil
// if the type is not declared in the program
func (r *TypeRef) Declaration() *ClassScope {
	if r == nil {
		return nil
	}
	return r.decl
}

func (r *TypeRef) String() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	return fmt.Sprintf("%s<%s>", r.Name, strings.Join(r.Args, ", "))
}
