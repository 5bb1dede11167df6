package main

import (
	"strings"

	"github.com/NickyBoy89/java2go-rename/dot"
	"github.com/NickyBoy89/java2go-rename/symbol"
)

// defaultPackage labels the cluster of types that are not in any package
const defaultPackage = "(default)"

// HierarchyGraph generates the graph of every type in the program, grouped by
// package, with an edge from every type to its superclass. Every node lists the
// final names of the type's instance fields
func HierarchyGraph(program *symbol.Program, registry *symbol.Registry) *dot.Graph {
	graph := dot.New("hierarchy")
	for _, class := range program.Types {
		pkg := class.Package
		if pkg == "" {
			pkg = defaultPackage
		}

		label := []string{class.Name}
		for _, field := range class.Fields {
			if !field.IsStatic() {
				label = append(label, registry.Name(field))
			}
		}

		var edges []string
		if super := class.Superclass(); super != nil {
			edges = append(edges, super.QualifiedName())
		}
		graph.Subgraph(pkg).AddNode(class.QualifiedName(), strings.Join(label, "\n"), edges...)
	}
	return graph
}

// TypeSummary is the printable form of a type, without any of the links back
// to the rest of the program
type TypeSummary struct {
	ID      symbol.TypeID
	Kind    string
	Name    string
	Super   string
	Fields  []string
	Methods []string
}

// Summarize lists every type in the program, for debugging
func Summarize(program *symbol.Program) []TypeSummary {
	summaries := make([]TypeSummary, 0, len(program.Types))
	for _, class := range program.Types {
		summary := TypeSummary{
			ID:   class.ID,
			Kind: class.Kind.String(),
			Name: class.QualifiedName(),
		}
		if class.Super != nil {
			summary.Super = class.Super.String()
		}
		for _, field := range class.Fields {
			name := field.OriginalName()
			if field.IsStatic() {
				name = "static " + name
			}
			summary.Fields = append(summary.Fields, name)
		}
		for _, method := range class.Methods {
			summary.Methods = append(summary.Methods, method.OriginalName())
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
