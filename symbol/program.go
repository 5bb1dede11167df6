package symbol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NickyBoy89/java2go-rename/keywords"
)

// ErrCyclicHierarchy is returned when a type is its own ancestor
var ErrCyclicHierarchy = errors.New("cyclic superclass chain")

// Program is a global view of all the packages in the parsed source, and owns
// the identifiers of every type and definition in it
type Program struct {
	// Every package's name associated with its definition
	Packages map[string]*PackageScope
	Files    []*FileScope
	// Every declared type, indexed by its TypeID
	Types []*ClassScope

	definitions int
}

func NewProgram() *Program {
	return &Program{Packages: make(map[string]*PackageScope)}
}

// FindPackage looks up a package by its name
func (p *Program) FindPackage(name string) *PackageScope {
	return p.Packages[name]
}

// AddFile registers a file, and the types in it, with its package
func (p *Program) AddFile(file *FileScope) {
	p.Files = append(p.Files, file)
	pkg, ok := p.Packages[file.Package]
	if !ok {
		pkg = &PackageScope{Name: file.Package}
		p.Packages[file.Package] = pkg
	}
	pkg.AddSymbolsFromFile(file)
}

// NewClass declares a new type. If the outer type is not nil, the new type is
// nested within it
func (p *Program) NewClass(kind TypeKind, name string, outer *ClassScope) *ClassScope {
	class := &ClassScope{
		ID:    TypeID(len(p.Types)),
		Kind:  kind,
		Name:  name,
		Outer: outer,
	}
	if outer != nil {
		class.Package = outer.Package
		class.File = outer.File
		outer.Nested = append(outer.Nested, class)
	}
	p.Types = append(p.Types, class)
	return class
}

// NewAnonymousClass declares an anonymous class within the outer type, named
// after the outer type and the number of anonymous classes before it
func (p *Program) NewAnonymousClass(outer *ClassScope) *ClassScope {
	outer.anonymousCount++
	return p.NewClass(Anonymous, fmt.Sprintf("%s%d", outer.Name, outer.anonymousCount), outer)
}

func (p *Program) newDefinition(kind Kind, owner *ClassScope, name string, typ *TypeRef, mods keywords.Modifiers) *Definition {
	def := &Definition{
		id:           DefID(p.definitions),
		kind:         kind,
		originalName: name,
		typ:          typ,
		modifiers:    mods,
		owner:        owner,
	}
	if owner != nil {
		def.pos = Position{Line: owner.Line}
		if owner.File != nil {
			def.pos.File = owner.File.Path
		}
	}
	p.definitions++
	return def
}

// NewField declares a field on the owning type
func (p *Program) NewField(owner *ClassScope, name string, typ *TypeRef, mods keywords.Modifiers) *Definition {
	field := p.newDefinition(Field, owner, name, typ, mods)
	owner.Fields = append(owner.Fields, field)
	return field
}

// NewMethod declares a method on the owning type
func (p *Program) NewMethod(owner *ClassScope, name string, returnType *TypeRef, mods keywords.Modifiers) *Definition {
	method := p.newDefinition(Method, owner, name, returnType, mods)
	owner.Methods = append(owner.Methods, method)
	return method
}

// NewVariable declares a local variable or parameter inside of the enclosing
// type. The enclosing type may be nil for variables that are built by hand
func (p *Program) NewVariable(enclosing *ClassScope, name string, typ *TypeRef) *Definition {
	return p.newDefinition(Variable, enclosing, name, typ, 0)
}

// SetLine records the line a definition was declared on
func (p *Program) SetLine(def *Definition, line int) {
	def.pos.Line = line
}

// FindClass resolves a type name as it would be seen from inside the given
// type (which may be nil) in the given file (which may also be nil)
//
// Names are searched for in the enclosing types, the file, the file's imports,
// the file's package, and finally every package in the program
func (p *Program) FindClass(from *ClassScope, file *FileScope, name string) *ClassScope {
	// Qualified names such as `Outer.Inner` only use the last part
	if ind := strings.LastIndex(name, "."); ind != -1 {
		name = name[ind+1:]
	}

	for scope := from; scope != nil; scope = scope.Outer {
		if scope.Name == name && scope.Kind != Anonymous {
			return scope
		}
		if nested := scope.FindNested(name); nested != nil {
			return nested
		}
	}

	if file != nil {
		if class := file.FindClass(name); class != nil {
			return class
		}
		if imported, ok := file.Imports[name]; ok {
			packageName := imported[:strings.LastIndex(imported, ".")]
			if pkg := p.FindPackage(packageName); pkg != nil {
				if class := pkg.FindClass(name); class != nil {
					return class
				}
			}
		}
		if pkg := p.FindPackage(file.Package); pkg != nil {
			if class := pkg.FindClass(name); class != nil {
				return class
			}
		}
	}

	for _, class := range p.Types {
		if class.Name == name && class.Kind != Anonymous {
			return class
		}
	}
	return nil
}

// Link resolves the superclass of every type to its declaration, and checks
// that no type is its own ancestor
//
// Superclasses that are not declared anywhere in the program, such as library
// types, are left unresolved and the type is treated as a root type
func (p *Program) Link() error {
	for _, class := range p.Types {
		if class.Super == nil || class.Super.decl != nil {
			continue
		}
		decl := p.FindClass(class.Outer, class.File, class.Super.Name)
		// `class Foo extends other.Foo` names a library type, not itself
		if decl != class {
			class.Super.decl = decl
		}
	}

	for _, class := range p.Types {
		seen := make(map[TypeID]bool)
		var chain []string
		for scope := class; scope != nil; scope = scope.Superclass() {
			chain = append(chain, scope.Name)
			if seen[scope.ID] {
				return fmt.Errorf("%w: %s", ErrCyclicHierarchy, strings.Join(chain, " -> "))
			}
			seen[scope.ID] = true
		}
	}
	return nil
}
