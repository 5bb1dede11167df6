package symbol

import (
	"github.com/NickyBoy89/java2go-rename/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// FileScope represents the scope in a single source file, that can contain one
// or more source classes
type FileScope struct {
	Path string
	// The global package that the file is located in
	Package string
	// Every external type that is imported into the file
	// Formatted as map[ImportedType: full.package.path.ImportedType]
	Imports map[string]string
	// The top-level types that are declared in the file
	Classes []*ClassScope

	root   *sitter.Node
	source []byte

	types    map[nodeutil.Span]*ClassScope
	bindings map[nodeutil.Span]*Definition
}

// Root returns the root node of the file's syntax tree
func (fs *FileScope) Root() *sitter.Node {
	return fs.root
}

func (fs *FileScope) Source() []byte {
	return fs.source
}

// ClassAt returns the type declared by the given node, or nil if the node does
// not declare a type. Anonymous classes are declared by their `class_body`
func (fs *FileScope) ClassAt(node *sitter.Node) *ClassScope {
	return fs.types[nodeutil.SpanOf(node)]
}

// Binding returns the definition that an identifier refers to, or nil if the
// identifier does not refer to a field or variable
func (fs *FileScope) Binding(node *sitter.Node) *Definition {
	return fs.bindings[nodeutil.SpanOf(node)]
}

// Bindings returns the number of identifiers that were bound in the file
func (fs *FileScope) Bindings() int {
	return len(fs.bindings)
}

// FindClass searches through a file to find if a given class has been defined
// at its root, or within any of the nested classes
func (fs *FileScope) FindClass(name string) *ClassScope {
	for _, class := range fs.Classes {
		if class.Name == name {
			return class
		}
	}
	for _, class := range fs.Classes {
		if found := findNestedDeep(class, name); found != nil {
			return found
		}
	}
	return nil
}

func findNestedDeep(class *ClassScope, name string) *ClassScope {
	if found := class.FindNested(name); found != nil {
		return found
	}
	for _, nested := range class.Nested {
		if found := findNestedDeep(nested, name); found != nil {
			return found
		}
	}
	return nil
}
