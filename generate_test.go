package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
)

func TestHierarchyGraph(t *testing.T) {
	program, registry, _ := renameFiles(t, nil, "testfiles/rename/Example.java")

	var out strings.Builder
	_, err := HierarchyGraph(program, registry).WriteTo(&out)
	require.NoError(t, err)

	expected := `digraph "hierarchy" {
  subgraph "cluster_(default)" {
    label="(default)"
    "A" [label="A\nv"]
    "B" [label="B\nv_B"]
  }
  "B" -> {"A"}
}
`
	require.Equal(t, expected, out.String())
}

func TestHierarchyGraphClustersPackages(t *testing.T) {
	program, registry, _ := renameFiles(t, nil,
		"testfiles/rename/Example.java",
		"testfiles/rename/shapes/Shape.java",
		"testfiles/rename/shapes/Square.java",
	)

	graph := HierarchyGraph(program, registry)
	require.True(t, graph.HasSubgraph("shapes"))
	require.True(t, graph.HasSubgraph(defaultPackage))

	shapes := graph.Subgraph("shapes")
	require.True(t, shapes.HasNode("shapes.Square"))
	require.True(t, shapes.HasEdge("shapes.Square", "shapes.Shape"))
	require.False(t, shapes.HasEdge("shapes.Shape", "shapes.Square"))
}

func TestSummarize(t *testing.T) {
	program, _, _ := renameFiles(t, nil, "testfiles/rename/Planet.java")

	summaries := Summarize(program)
	require.Len(t, summaries, 2)
	require.Equal(t, TypeSummary{
		ID:     0,
		Kind:   "enum",
		Name:   "Planet",
		Fields: []string{"mass"},
	}, summaries[0])
	require.Equal(t, TypeSummary{
		ID:      1,
		Kind:    "anonymous class",
		Name:    "Planet.Planet1",
		Super:   "Planet",
		Fields:  []string{"mass"},
		Methods: []string{"mass"},
	}, summaries[1])

	dump := repr.String(summaries, repr.Indent("  "))
	require.Contains(t, dump, `Name: "Planet.Planet1"`)
}
