package core

import (
	"errors"
	"reflect"
	"sort"

	"github.com/dominikbraun/graph"
	"go.uber.org/zap"
)

type (
	// ResourceGraph is the directed acyclic graph of resources handed to the
	// provisioning engine. An edge from A to B means A depends on B.
	ResourceGraph struct {
		underlying graph.Graph[string, Resource]
	}

	Dependency struct {
		Source      Resource
		Destination Resource
	}
)

func resourceHasher(r Resource) string { return r.Id() }

func NewResourceGraph() *ResourceGraph {
	return &ResourceGraph{
		underlying: graph.New(resourceHasher, graph.Directed(), graph.PreventCycles()),
	}
}

func (rg *ResourceGraph) AddResource(resource Resource) {
	err := rg.underlying.AddVertex(resource)
	if errors.Is(err, graph.ErrVertexAlreadyExists) {
		return
	}
	zap.S().Debugf("adding resource: %s", resource.Id())
}

// AddDependency adds an edge from source to dest, adding either vertex to the
// graph first if not already present.
func (rg *ResourceGraph) AddDependency(source Resource, dest Resource) {
	for _, res := range []Resource{source, dest} {
		rg.AddResource(res)
	}
	err := rg.underlying.AddEdge(source.Id(), dest.Id())
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return
	}
	if err != nil {
		zap.S().Errorf("failed to add %s -> %s: %v", source.Id(), dest.Id(), err)
		return
	}
	zap.S().Debugf("adding %s -> %s", source.Id(), dest.Id())
}

func (rg *ResourceGraph) GetResource(id string) Resource {
	res, err := rg.underlying.Vertex(id)
	if err != nil {
		return nil
	}
	return res
}

// ListResources returns all resources in the graph, sorted by id for
// deterministic iteration.
func (rg *ResourceGraph) ListResources() []Resource {
	adj, err := rg.underlying.AdjacencyMap()
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	resources := make([]Resource, 0, len(ids))
	for _, id := range ids {
		if res := rg.GetResource(id); res != nil {
			resources = append(resources, res)
		}
	}
	return resources
}

func (rg *ResourceGraph) ListDependencies() []Dependency {
	edges, err := rg.underlying.Edges()
	if err != nil {
		return nil
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	deps := make([]Dependency, 0, len(edges))
	for _, e := range edges {
		deps = append(deps, Dependency{
			Source:      rg.GetResource(e.Source),
			Destination: rg.GetResource(e.Target),
		})
	}
	return deps
}

func (rg *ResourceGraph) GetDownstreamResources(source Resource) []Resource {
	adj, err := rg.underlying.AdjacencyMap()
	if err != nil {
		return nil
	}
	targets := make([]string, 0, len(adj[source.Id()]))
	for t := range adj[source.Id()] {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	var downstream []Resource
	for _, t := range targets {
		if res := rg.GetResource(t); res != nil {
			downstream = append(downstream, res)
		}
	}
	return downstream
}

// AddDependenciesReflect inspects the fields of the resource and adds an edge
// for every Resource or IaCValue reachable from them, walking into slices,
// maps, and nested documents.
//
// Supported field shapes (`*T` is a struct that implements Resource):
// - `SingleDependency   Resource`
// - `SpecificDependency *T`
// - `ValueDependency    IaCValue`
// - `DependencyArray  []Resource` (or slices of any of the above)
// - `DependencyMap    map[string]Resource` (or maps of any of the above)
// - nested non-Resource documents containing any of the above
func (rg *ResourceGraph) AddDependenciesReflect(source Resource) {
	rg.AddResource(source)
	rg.addFieldDependencies(source, reflect.ValueOf(source))
}

func (rg *ResourceGraph) addFieldDependencies(source Resource, value reflect.Value) {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < value.NumField(); i++ {
		fieldValue := value.Field(i)
		if !fieldValue.CanInterface() {
			continue
		}
		switch fieldValue.Kind() {
		case reflect.Slice, reflect.Array:
			for elemIdx := 0; elemIdx < fieldValue.Len(); elemIdx++ {
				rg.addValueDependency(source, fieldValue.Index(elemIdx))
			}

		case reflect.Map:
			for iter := fieldValue.MapRange(); iter.Next(); {
				rg.addValueDependency(source, iter.Value())
			}

		default:
			rg.addValueDependency(source, fieldValue)
		}
	}
}

func (rg *ResourceGraph) addValueDependency(source Resource, targetValue reflect.Value) {
	if targetValue.Kind() == reflect.Pointer && targetValue.IsNil() {
		return
	}
	if !targetValue.CanInterface() {
		return
	}
	switch target := targetValue.Interface().(type) {
	case Resource:
		rg.AddDependency(source, target)
	case IaCValue:
		if target.Resource != nil {
			rg.AddDependency(source, target.Resource)
		}
	case *IaCValue:
		if target.Resource != nil {
			rg.AddDependency(source, target.Resource)
		}
	default:
		// nested documents (origins, cache behaviors, policy statements)
		rg.addFieldDependencies(source, targetValue)
	}
}
