package nodeutil

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Span identifies a node by its byte range in the source file
type Span struct {
	Start, End uint32
}

// SpanOf returns the span that a node covers
func SpanOf(node *sitter.Node) Span {
	return Span{Start: node.StartByte(), End: node.EndByte()}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Line returns the 1-based line number that the node starts on
func Line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// Children returns all the named children of a node
func Children(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.NamedChild(i)
	}
	return children
}

// UnnamedChildren returns every child of a node, including the anonymous
// keyword nodes such as `static` or `public`
func UnnamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.Child(i)
	}
	return children
}

// ChildrenByFieldName returns every child that is stored under the given field
// name, since fields such as a declaration's `declarator` can repeat
func ChildrenByFieldName(node *sitter.Node, fieldName string) []*sitter.Node {
	cursor := sitter.NewTreeCursor(node)
	defer cursor.Close()

	var children []*sitter.Node
	if !cursor.GoToFirstChild() {
		return children
	}
	for {
		if cursor.CurrentFieldName() == fieldName {
			children = append(children, cursor.CurrentNode())
		}
		if !cursor.GoToNextSibling() {
			return children
		}
	}
}

// IsField reports whether the child sits under the given field of its parent
func IsField(parent, child *sitter.Node, fieldName string) bool {
	field := parent.ChildByFieldName(fieldName)
	return field != nil && SpanOf(field) == SpanOf(child) && field.Type() == child.Type()
}

// ParseJava parses a Java source file with tree-sitter
func ParseJava(ctx context.Context, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing java source: %w", err)
	}
	return tree, nil
}
