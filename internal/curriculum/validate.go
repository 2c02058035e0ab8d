package curriculum

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on a concept and edge set
// before it is accepted into the catalog. Returns a combined error
// describing every problem found, or nil if valid.
func Validate(concepts []Concept, edges []Edge) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, "concept with empty ID")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
		if c.Title == "" {
			errs = append(errs, fmt.Sprintf("concept %q has empty title", c.ID))
		}
		if c.EstimatedMins <= 0 {
			errs = append(errs, fmt.Sprintf("concept %q: estimated minutes must be > 0, got %d", c.ID, c.EstimatedMins))
		}
	}

	edgeSet := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if e.PrerequisiteID == e.DependentID {
			errs = append(errs, fmt.Sprintf("self-loop on concept %q", e.DependentID))
			continue
		}
		if !idSet[e.PrerequisiteID] {
			errs = append(errs, fmt.Sprintf("edge references nonexistent prerequisite %q", e.PrerequisiteID))
		}
		if !idSet[e.DependentID] {
			errs = append(errs, fmt.Sprintf("edge references nonexistent dependent %q", e.DependentID))
		}
		if edgeSet[e] {
			errs = append(errs, fmt.Sprintf("duplicate edge %q -> %q", e.PrerequisiteID, e.DependentID))
		}
		edgeSet[e] = true
	}

	// Cycle check via Kahn's algorithm over the well-formed edges.
	inDegree := make(map[string]int, len(concepts))
	adj := make(map[string][]string)
	for id := range idSet {
		inDegree[id] = 0
	}
	for e := range edgeSet {
		if !idSet[e.PrerequisiteID] || !idSet[e.DependentID] {
			continue
		}
		inDegree[e.DependentID]++
		adj[e.PrerequisiteID] = append(adj[e.PrerequisiteID], e.DependentID)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(idSet) {
		var cycleNodes []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving concepts: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
