package pathgen

import (
	"context"
)

// Reorder produces a new ordering of an existing path that pulls the
// given priority concepts as early as their own prerequisites within
// the path allow. Non-priority concepts keep their relative order.
// Gaps and total time are unchanged; this is a merge over the already
// computed path, not a re-run of the scheduler.
func (g *Generator) Reorder(ctx context.Context, path *Path, priorityIDs []string) (*Path, error) {
	if path == nil || len(path.Steps) == 0 {
		return path, nil
	}

	edges, err := g.curriculum.Edges(ctx, path.SubjectID)
	if err != nil {
		return nil, &ErrDependency{Component: "edges", Err: err}
	}

	inPath := make(map[string]bool, len(path.Steps))
	for _, s := range path.Steps {
		inPath[s.Concept.ID] = true
	}
	prereqs := make(map[string][]string)
	for _, e := range edges {
		if inPath[e.PrerequisiteID] && inPath[e.DependentID] {
			prereqs[e.DependentID] = append(prereqs[e.DependentID], e.PrerequisiteID)
		}
	}

	priority := make(map[string]bool, len(priorityIDs))
	for _, id := range priorityIDs {
		if inPath[id] {
			priority[id] = true
		}
	}

	reordered := &Path{
		SubjectID:          path.SubjectID,
		LearnerID:          path.LearnerID,
		Threshold:          path.Threshold,
		Steps:              reorderSteps(path.Steps, prereqs, priority),
		TotalEstimatedMins: path.TotalEstimatedMins,
		Gaps:               path.Gaps,
	}
	return reordered, nil
}

// reorderSteps merges the priority partition and the rest, both in
// original order. At each position the head priority concept is taken
// if every in-path prerequisite of it is already placed; otherwise the
// next non-priority concept is. Once the non-priority side is
// exhausted the remaining priority concepts follow in order, which is
// safe because the input order already respects prerequisites.
func reorderSteps(steps []Step, prereqs map[string][]string, priority map[string]bool) []Step {
	var prio, rest []Step
	for _, s := range steps {
		if priority[s.Concept.ID] {
			prio = append(prio, s)
		} else {
			rest = append(rest, s)
		}
	}

	placed := make(map[string]bool, len(steps))
	canPlace := func(id string) bool {
		for _, p := range prereqs[id] {
			if !placed[p] {
				return false
			}
		}
		return true
	}

	result := make([]Step, 0, len(steps))
	pi, ri := 0, 0
	for len(result) < len(steps) {
		if pi < len(prio) && (ri >= len(rest) || canPlace(prio[pi].Concept.ID)) {
			result = append(result, prio[pi])
			placed[prio[pi].Concept.ID] = true
			pi++
			continue
		}
		result = append(result, rest[ri])
		placed[rest[ri].Concept.ID] = true
		ri++
	}
	return result
}
