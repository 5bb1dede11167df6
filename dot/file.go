package dot

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Graph is a Graphviz directed graph, made up of nodes and clustered subgraphs
type Graph struct {
	SubGraph
}

// New creates an empty graph with the given name
func New(name string) *Graph {
	return &Graph{SubGraph: SubGraph{name: name}}
}

type SubGraph struct {
	name      string
	nodes     map[string]Node
	subgraphs map[string]*SubGraph
}

func (g SubGraph) Name() string {
	return g.name
}

// HasSubgraph reports whether the graph has the given subgraph
func (g SubGraph) HasSubgraph(name string) bool {
	_, has := g.subgraphs[name]
	return has
}

// Subgraph returns the named subgraph, adding it if necessary
func (g *SubGraph) Subgraph(name string) *SubGraph {
	if g.subgraphs == nil {
		g.subgraphs = make(map[string]*SubGraph)
	}
	if _, in := g.subgraphs[name]; !in {
		g.subgraphs[name] = &SubGraph{name: name}
	}
	return g.subgraphs[name]
}

// AddNode adds a node to the graph, replacing any node with the same name
func (g *SubGraph) AddNode(name, label string, edges ...string) {
	if g.nodes == nil {
		g.nodes = make(map[string]Node)
	}
	g.nodes[name] = Node{name: name, label: label, edges: edges}
}

// HasNode reports whether the node is directly in this graph
func (g *SubGraph) HasNode(name string) bool {
	_, in := g.nodes[name]
	return in
}

// AddEdge adds an edge from a node to another, creating the node if it does
// not exist
func (g *SubGraph) AddEdge(node string, edge string) {
	if g.nodes == nil {
		g.nodes = make(map[string]Node)
	}
	temp, ok := g.nodes[node]
	if !ok {
		temp = Node{name: node}
	}
	temp.edges = append(temp.edges, edge)
	g.nodes[node] = temp
}

func (g *SubGraph) HasEdge(node string, edge string) bool {
	for _, e := range g.nodes[node].edges {
		if e == edge {
			return true
		}
	}
	return false
}

type Edge struct {
	From string
	To   []string
}

type Node struct {
	name  string
	label string
	edges []string
}

func (n Node) Name() string {
	return n.name
}

func commaSeparatedString(list []string) string {
	var total strings.Builder
	for ind, item := range list {
		total.WriteString(fmt.Sprintf("%q", item))
		if ind < len(list)-1 {
			total.WriteString(", ")
		}
	}
	return total.String()
}

// writeNodes writes every node and subgraph in a stable order, and returns the
// edges that still need to be written outside of any cluster
func (g *SubGraph) writeNodes(b *strings.Builder, indent string) []Edge {
	var edges []Edge

	names := maps.Keys(g.nodes)
	slices.Sort(names)
	for _, name := range names {
		node := g.nodes[name]
		if node.label != "" {
			fmt.Fprintf(b, "%s%q [label=%q]\n", indent, node.name, node.label)
		} else {
			fmt.Fprintf(b, "%s%q\n", indent, node.name)
		}
		edges = append(edges, Edge{From: node.name, To: node.edges})
	}

	subgraphs := maps.Keys(g.subgraphs)
	slices.Sort(subgraphs)
	for _, name := range subgraphs {
		sub := g.subgraphs[name]
		fmt.Fprintf(b, "%ssubgraph %q {\n", indent, "cluster_"+sub.name)
		fmt.Fprintf(b, "%s  label=%q\n", indent, sub.name)
		edges = append(edges, sub.writeNodes(b, indent+"  ")...)
		fmt.Fprintf(b, "%s}\n", indent)
	}
	return edges
}

// WriteTo writes the graph in the dot language
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", g.name)

	edges := g.writeNodes(&b, "  ")

	// Finally, connect all the edges from everything else
	for _, edge := range edges {
		// Skip creating edges that don't point anywhere
		if len(edge.To) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %q -> {%s}\n", edge.From, commaSeparatedString(edge.To))
	}
	b.WriteString("}\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
