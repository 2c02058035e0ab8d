package pathgen

import (
	"container/heap"
	"sort"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

// schedule runs the priority-frontier topological pass over one
// subject graph and mastery snapshot. It returns the ordered steps and
// the sorted gap IDs.
//
// A prerequisite with mastery >= threshold is satisfied outright. A
// prerequisite the learner has never attempted (score 0) is covered by
// its own place in the path, so placing it unlocks its dependents. A
// prerequisite attempted but still below threshold blocks its
// dependents until re-mastered; it is reported as a gap.
func schedule(g *curriculum.Graph, mastery map[string]float64, threshold float64) ([]Step, []string) {
	unmet := make(map[string]int, g.Len())
	for _, c := range g.Concepts() {
		n := 0
		for _, p := range g.Prerequisites(c.ID) {
			if mastery[p] < threshold {
				n++
			}
		}
		unmet[c.ID] = n
	}

	f := &frontier{}
	for _, c := range g.Concepts() {
		if unmet[c.ID] == 0 {
			heap.Push(f, frontierItem{
				concept:  c,
				priority: PriorityScore(mastery[c.ID], c.Difficulty, unmet[c.ID]),
			})
		}
	}

	placed := make(map[string]bool, g.Len())
	var steps []Step
	for f.Len() > 0 {
		item := heap.Pop(f).(frontierItem)
		c := item.concept
		placed[c.ID] = true
		steps = append(steps, Step{Concept: c, Mastery: mastery[c.ID]})

		// Mastered prerequisites were never counted as unmet, and
		// attempted-but-below-threshold ones stay unmet despite being
		// placed. Only fresh concepts propagate.
		if mastery[c.ID] != 0 {
			continue
		}
		for _, d := range g.Dependents(c.ID) {
			unmet[d]--
			if unmet[d] == 0 {
				dc, _ := g.Concept(d)
				heap.Push(f, frontierItem{
					concept:  dc,
					priority: PriorityScore(mastery[d], dc.Difficulty, unmet[d]),
				})
			}
		}
	}

	return steps, collectGaps(g, mastery, threshold, placed)
}

// collectGaps attributes blockage to root causes. A concept is a gap
// when it blocks at least one unplaced dependent and either sits in
// the attempted-but-below-threshold band or is trapped so that no
// amount of re-mastery upstream would place it (a dependency cycle).
// Concepts that are merely downstream of a gap are not gaps themselves.
func collectGaps(g *curriculum.Graph, mastery map[string]float64, threshold float64, placed map[string]bool) []string {
	resolved := resolveResidual(g, mastery, threshold, placed)

	gapSet := make(map[string]bool)
	for _, c := range g.Concepts() {
		blocks := false
		for _, d := range g.Dependents(c.ID) {
			if !placed[d] {
				blocks = true
				break
			}
		}
		if !blocks {
			continue
		}
		m := mastery[c.ID]
		if m >= threshold {
			continue
		}
		trapped := !placed[c.ID] && !resolved[c.ID]
		if m > 0 || trapped {
			gapSet[c.ID] = true
		}
	}

	gaps := make([]string, 0, len(gapSet))
	for id := range gapSet {
		gaps = append(gaps, id)
	}
	sort.Strings(gaps)
	return gaps
}

// resolveResidual replays plain Kahn over the unplaced concepts with
// below-threshold-but-attempted prerequisites treated as satisfied.
// Whatever still cannot reach zero unmet count is cycle-trapped.
func resolveResidual(g *curriculum.Graph, mastery map[string]float64, threshold float64, placed map[string]bool) map[string]bool {
	unmet := make(map[string]int)
	var queue []string
	for _, c := range g.Concepts() {
		if placed[c.ID] {
			continue
		}
		n := 0
		for _, p := range g.Prerequisites(c.ID) {
			if placed[p] || mastery[p] >= threshold || mastery[p] > 0 {
				continue
			}
			n++
		}
		unmet[c.ID] = n
		if n == 0 {
			queue = append(queue, c.ID)
		}
	}

	resolved := make(map[string]bool, len(unmet))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		resolved[id] = true
		if mastery[id] != 0 {
			continue // only fresh prerequisites were counted above
		}
		for _, d := range g.Dependents(id) {
			if _, ok := unmet[d]; !ok {
				continue
			}
			if resolved[d] {
				continue
			}
			unmet[d]--
			if unmet[d] == 0 {
				queue = append(queue, d)
			}
		}
	}
	return resolved
}
