package graphview

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"docforge/internal/gamedata"
)

// Build constructs the directed production graph of a catalog: an edge
// item -> recipe for every input and recipe -> item for every output. Vertex
// ids carry a kind prefix so an item and a recipe sharing a display name
// cannot collide.
func Build(catalog *gamedata.Catalog) (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, item := range catalog.Items {
		if err := addVertex(g, itemID(item.Name), item.Name, "ellipse"); err != nil {
			return nil, err
		}
	}
	for _, recipe := range catalog.Recipes {
		if err := addVertex(g, recipeID(recipe.Name), recipe.Name, "box"); err != nil {
			return nil, err
		}
		for _, input := range recipe.Inputs {
			if err := addEdge(g, itemID(input.Name), recipeID(recipe.Name)); err != nil {
				return nil, err
			}
		}
		for _, output := range recipe.Outputs {
			if err := addEdge(g, recipeID(recipe.Name), itemID(output.Name)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Reachable reduces the graph to the subgraph reachable from the given item,
// keeping vertex attributes.
func Reachable(g graph.Graph[string, string], itemName string) (graph.Graph[string, string], error) {
	start := itemID(itemName)
	if _, err := g.Vertex(start); err != nil {
		return nil, fmt.Errorf("item %q not in catalog", itemName)
	}

	keep := make(map[string]bool)
	if err := graph.BFS(g, start, func(id string) bool {
		keep[id] = true
		return false
	}); err != nil {
		return nil, err
	}

	sub := graph.New(graph.StringHash, graph.Directed())
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	for id := range keep {
		vertex, props, err := g.VertexWithProperties(id)
		if err != nil {
			return nil, err
		}
		if err := sub.AddVertex(vertex, copyAttributes(props.Attributes)); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, err
		}
	}
	for id := range keep {
		for target := range adjacency[id] {
			if !keep[target] {
				continue
			}
			if err := sub.AddEdge(id, target); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}
	return sub, nil
}

// WriteDOT renders the graph in graphviz DOT format.
func WriteDOT(g graph.Graph[string, string], w io.Writer) error {
	return draw.DOT(g, w)
}

func itemID(name string) string   { return "item: " + name }
func recipeID(name string) string { return "recipe: " + name }

func addVertex(g graph.Graph[string, string], id, label, shape string) error {
	err := g.AddVertex(id,
		graph.VertexAttribute("label", label),
		graph.VertexAttribute("shape", shape))
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		return nil
	}
	return err
}

func addEdge(g graph.Graph[string, string], from, to string) error {
	err := g.AddEdge(from, to)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return nil
	}
	return err
}

func copyAttributes(attrs map[string]string) func(*graph.VertexProperties) {
	return func(p *graph.VertexProperties) {
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		for k, v := range attrs {
			p.Attributes[k] = v
		}
	}
}
