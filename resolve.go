package main

import (
	"fmt"

	"github.com/NickyBoy89/java2go-rename/nodeutil"
	"github.com/NickyBoy89/java2go-rename/rename"
	"github.com/NickyBoy89/java2go-rename/symbol"
	sitter "github.com/smacker/go-tree-sitter"
)

// ResolveProgram runs the rename pass over every file in the program
func ResolveProgram(program *symbol.Program, pass *rename.Pass) error {
	for _, file := range program.Files {
		if err := ResolveFile(file, pass); err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}
	}
	return nil
}

// ResolveFile walks through a file in document order, opening every type
// declaration in the pass as it is entered, and passing every identifier's
// definition to the pass
func ResolveFile(file *symbol.FileScope, pass *rename.Pass) error {
	return resolveNode(file.Root(), file, pass)
}

func resolveNode(node *sitter.Node, file *symbol.FileScope, pass *rename.Pass) error {
	switch node.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration", "record_declaration":
		class := file.ClassAt(node)
		if class == nil {
			return fmt.Errorf("no type declared at %v (line %d)", nodeutil.SpanOf(node), nodeutil.Line(node))
		}
		return resolveType(node, class, file, pass)
	case "class_body":
		// Only anonymous classes are declared by their body
		if class := file.ClassAt(node); class != nil {
			return resolveType(node, class, file, pass)
		}
	case "identifier":
		return pass.Reference(file.Binding(node))
	}
	return resolveChildren(node, file, pass)
}

func resolveType(node *sitter.Node, class *symbol.ClassScope, file *symbol.FileScope, pass *rename.Pass) error {
	release, err := pass.Enter(class)
	if err != nil {
		return fmt.Errorf("entering %v: %w", class, err)
	}
	defer release()

	return resolveChildren(node, file, pass)
}

func resolveChildren(node *sitter.Node, file *symbol.FileScope, pass *rename.Pass) error {
	for _, child := range nodeutil.Children(node) {
		if err := resolveNode(child, file, pass); err != nil {
			return err
		}
	}
	return nil
}
