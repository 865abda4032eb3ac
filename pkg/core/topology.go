package core

import (
	"sort"

	"github.com/pkg/errors"
)

// TopologicalSort returns the resource ids of the graph such that every
// resource appears before anything it depends on. Ties are broken
// lexicographically so the ordering is stable across runs.
func (rg *ResourceGraph) TopologicalSort() ([]string, error) {
	predecessors, err := rg.underlying.PredecessorMap()
	if err != nil {
		return nil, err
	}

	queue := make([]string, 0)
	queued := make(map[string]struct{})
	enqueue := func(vs ...string) {
		for _, vertex := range vs {
			queue = append(queue, vertex)
			queued[vertex] = struct{}{}
		}
	}

	for vertex, deps := range predecessors {
		if len(deps) == 0 {
			enqueue(vertex)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(predecessors))
	visited := make(map[string]struct{})

	for len(queue) > 0 {
		vertex := queue[0]
		queue = queue[1:]
		if _, ok := visited[vertex]; ok {
			continue
		}
		visited[vertex] = struct{}{}
		order = append(order, vertex)

		frontier := make([]string, 0)
		for next, deps := range predecessors {
			if _, ok := visited[next]; ok {
				continue
			}
			if _, ok := queued[next]; ok {
				continue
			}
			delete(deps, vertex)
			if len(deps) == 0 {
				frontier = append(frontier, next)
			}
		}
		sort.Strings(frontier)
		enqueue(frontier...)
	}

	if len(order) != len(predecessors) {
		return nil, errors.New("graph contains a cycle")
	}
	return order, nil
}
