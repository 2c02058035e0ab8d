package curriculum

import (
	"slices"
	"sort"
)

// Graph holds one subject's concept DAG with precomputed adjacency,
// built once per invocation from the concept and edge lists. It is
// immutable after construction and safe for concurrent reads.
type Graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	prereqs    map[string][]string
	dependents map[string][]string
}

// NewGraph constructs a graph from a slice of concepts and edges.
// Edges whose endpoints are not both in the concept set are dropped
// (a prerequisite outside the subject is treated as satisfied), and
// duplicate edges collapse to one. Adjacency lists are sorted so
// traversal order is deterministic.
func NewGraph(concepts []Concept, edges []Edge) *Graph {
	g := &Graph{
		concepts:   slices.Clone(concepts),
		byID:       make(map[string]*Concept, len(concepts)),
		prereqs:    make(map[string][]string),
		dependents: make(map[string][]string),
	}

	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}

	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if _, ok := g.byID[e.PrerequisiteID]; !ok {
			continue
		}
		if _, ok := g.byID[e.DependentID]; !ok {
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		g.prereqs[e.DependentID] = append(g.prereqs[e.DependentID], e.PrerequisiteID)
		g.dependents[e.PrerequisiteID] = append(g.dependents[e.PrerequisiteID], e.DependentID)
	}

	for _, adj := range []map[string][]string{g.prereqs, g.dependents} {
		for id := range adj {
			sort.Strings(adj[id])
		}
	}

	return g
}

// Len returns the number of concepts in the graph.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// Concept returns a concept by ID.
func (g *Graph) Concept(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// Concepts returns all concepts in input order.
func (g *Graph) Concepts() []Concept {
	return slices.Clone(g.concepts)
}

// Prerequisites returns the direct prerequisite IDs of a concept, sorted.
func (g *Graph) Prerequisites(id string) []string {
	return slices.Clone(g.prereqs[id])
}

// Dependents returns the IDs of concepts that directly depend on the
// given concept, sorted.
func (g *Graph) Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// Roots returns all concepts with no prerequisites, in input order.
func (g *Graph) Roots() []Concept {
	var roots []Concept
	for _, c := range g.concepts {
		if len(g.prereqs[c.ID]) == 0 {
			roots = append(roots, c)
		}
	}
	return roots
}

// Closure returns the full transitive prerequisite set of a concept as
// a depth-first traversal with a visited set, so shared ancestors are
// expanded once and cycles cannot re-enter. The concept itself is not
// included unless a cycle makes it self-reachable. An unknown ID yields
// an empty set.
func (g *Graph) Closure(id string) map[string]bool {
	result := make(map[string]bool)
	if _, ok := g.byID[id]; !ok {
		return result
	}
	var visit func(string)
	visit = func(cur string) {
		for _, p := range g.prereqs[cur] {
			if result[p] {
				continue
			}
			result[p] = true
			visit(p)
		}
	}
	visit(id)
	return result
}

// TopologicalOrder returns the concepts in a deterministic topological
// order (Kahn's algorithm, ties broken by concept ID). The second
// return is false when a cycle keeps some concepts out of the order;
// the partial order over the acyclic portion is still returned.
func (g *Graph) TopologicalOrder() ([]Concept, bool) {
	inDegree := make(map[string]int, len(g.concepts))
	for _, c := range g.concepts {
		inDegree[c.ID] = len(g.prereqs[c.ID])
	}

	var queue []string
	for _, c := range g.concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}
	sort.Strings(queue)

	order := make([]Concept, 0, len(g.concepts))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, *g.byID[id])

		for _, dep := range g.dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				i := sort.SearchStrings(queue, dep)
				queue = slices.Insert(queue, i, dep)
			}
		}
	}

	return order, len(order) == len(g.concepts)
}
