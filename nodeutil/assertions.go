package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// AssertTypeIs panics if the node is not of the expected type, this is used for
// places where the grammar guarantees the shape of the tree
func AssertTypeIs(node *sitter.Node, expectedTypes ...string) {
	for _, expected := range expectedTypes {
		if node.Type() == expected {
			return
		}
	}
	panic(fmt.Sprintf("assertion failed: Type of node differs from expected: %v, got: %s", expectedTypes, node.Type()))
}

// AssertFieldExists returns the child of the node with the given field name,
// and panics if that field is missing
func AssertFieldExists(node *sitter.Node, fieldName string) *sitter.Node {
	child := node.ChildByFieldName(fieldName)
	if child == nil {
		panic(fmt.Sprintf("assertion failed: %s node has no `%s` field", node.Type(), fieldName))
	}
	return child
}
