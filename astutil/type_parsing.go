package astutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// TypeName returns the canonical name of a type node: the name of the type's
// declaration, without any type arguments or package qualifiers
// Ex: java.util.List<String> -> List
func TypeName(node *sitter.Node, source []byte) string {
	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		return node.Content(source)
	case "generic_type":
		// A generic type is any type that is of the form GenericType<T>
		return TypeName(node.NamedChild(0), source)
	case "array_type":
		return TypeName(node.NamedChild(0), source) + "[]"
	case "type_identifier", "identifier":
		return node.Content(source)
	case "scoped_type_identifier", "scoped_identifier":
		// This contains a reference to a qualified or nested type
		// Ex: LinkedList.Node, only the last part names the declaration
		return TypeName(node.NamedChild(int(node.NamedChildCount())-1), source)
	case "annotated_type":
		return TypeName(node.NamedChild(int(node.NamedChildCount())-1), source)
	}
	panic(fmt.Errorf("Unknown type to convert: %v", node.Type()))
}

// TypeArguments returns the source text of every type argument of a
// parameterized type, or nil if the type is not parameterized
func TypeArguments(node *sitter.Node, source []byte) []string {
	switch node.Type() {
	case "generic_type":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() != "type_arguments" {
				continue
			}
			var args []string
			for j := 0; j < int(child.NamedChildCount()); j++ {
				args = append(args, child.NamedChild(j).Content(source))
			}
			return args
		}
	case "annotated_type":
		return TypeArguments(node.NamedChild(int(node.NamedChildCount())-1), source)
	}
	return nil
}

// IsTypeNode reports whether a node is one of the grammar's type nodes
func IsTypeNode(node *sitter.Node) bool {
	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type",
		"generic_type", "array_type", "type_identifier", "scoped_type_identifier", "annotated_type":
		return true
	}
	return false
}
