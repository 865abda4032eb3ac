package core

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// nullNode renders as nothing in the YAML output, so an empty mapping shows as
// `resources:` instead of `resources: {}`.
var nullNode = &yaml.Node{
	Kind:  yaml.ScalarNode,
	Tag:   "!!null",
	Value: "",
}

type yamlGraph struct {
	graph *ResourceGraph
}

func (g yamlGraph) MarshalYAML() (interface{}, error) {
	topo, err := g.graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	resources := &yaml.Node{
		Kind: yaml.MappingNode,
	}
	for _, id := range topo {
		res := g.graph.GetResource(id)
		if res == nil {
			return nil, fmt.Errorf("resource %s missing from graph", id)
		}
		props := &yaml.Node{}
		if err := props.Encode(res); err != nil {
			return nil, err
		}
		resources.Content = append(resources.Content,
			&yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: id,
			},
			props,
		)
	}
	if len(resources.Content) == 0 {
		resources = nullNode
	}

	edges := &yaml.Node{
		Kind: yaml.MappingNode,
	}
	for _, dep := range g.graph.ListDependencies() {
		edges.Content = append(edges.Content,
			&yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: fmt.Sprintf("%s -> %s", dep.Source.Id(), dep.Destination.Id()),
			},
			nullNode,
		)
	}
	if len(edges.Content) == 0 {
		edges = nullNode
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "resources"},
			resources,
			{Kind: yaml.ScalarNode, Value: "edges"},
			edges,
		},
	}, nil
}

// OutputTo writes the graph as YAML: resources with their properties in
// topological order, followed by the edges between them.
func (rg *ResourceGraph) OutputTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlGraph{graph: rg}); err != nil {
		return err
	}
	return enc.Close()
}

// OutputYAML renders the graph to a string, primarily for tests and logging.
func (rg *ResourceGraph) OutputYAML() (string, error) {
	sb := new(strings.Builder)
	if err := rg.OutputTo(sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
