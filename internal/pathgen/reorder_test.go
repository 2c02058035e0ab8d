package pathgen

import (
	"context"
	"slices"
	"testing"
)

func generatedDiamondPath(t *testing.T) (*Generator, *Path) {
	t.Helper()
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.8})
	path, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return gen, path
}

func TestReorder_PriorityPinnedByPrerequisites(t *testing.T) {
	gen, path := generatedDiamondPath(t)

	// D cannot move ahead of B and C, its in-path prerequisites, so
	// the order is unchanged.
	reordered, err := gen.Reorder(context.Background(), path, []string{"D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reordered.ConceptIDs(); !slices.Equal(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("order: got %v, want [A B C D]", got)
	}
}

func TestReorder_PullsPriorityConceptForward(t *testing.T) {
	gen, path := generatedDiamondPath(t)

	reordered, err := gen.Reorder(context.Background(), path, []string{"C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// C moves ahead of B; its prerequisite A stays first.
	if got := reordered.ConceptIDs(); !slices.Equal(got, []string{"A", "C", "B", "D"}) {
		t.Errorf("order: got %v, want [A C B D]", got)
	}
}

func TestReorder_PreservesGapsAndTotal(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.4})
	path, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reordered, err := gen.Reorder(context.Background(), path, []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(reordered.Gaps, path.Gaps) {
		t.Errorf("gaps changed: got %v, want %v", reordered.Gaps, path.Gaps)
	}
	if reordered.TotalEstimatedMins != path.TotalEstimatedMins {
		t.Errorf("total changed: got %d, want %d", reordered.TotalEstimatedMins, path.TotalEstimatedMins)
	}
}

func TestReorder_IgnoresUnknownPriorityIDs(t *testing.T) {
	gen, path := generatedDiamondPath(t)

	reordered, err := gen.Reorder(context.Background(), path, []string{"not-in-path", "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reordered.ConceptIDs(); !slices.Equal(got, []string{"A", "C", "B", "D"}) {
		t.Errorf("order: got %v, want [A C B D]", got)
	}
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	gen, path := generatedDiamondPath(t)
	before := path.ConceptIDs()

	if _, err := gen.Reorder(context.Background(), path, []string{"C"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := path.ConceptIDs(); !slices.Equal(got, before) {
		t.Errorf("input path mutated: got %v, want %v", got, before)
	}
}

func TestReorder_EmptyPath(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)
	empty := &Path{SubjectID: "algebra"}
	reordered, err := gen.Reorder(context.Background(), empty, []string{"A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reordered.Steps) != 0 {
		t.Errorf("got %d steps, want 0", len(reordered.Steps))
	}
}

func TestReorder_MultiplePriorities(t *testing.T) {
	gen, path := generatedDiamondPath(t)

	reordered, err := gen.Reorder(context.Background(), path, []string{"D", "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both B and C must still precede D; C is pulled as early as A allows.
	got := reordered.ConceptIDs()
	pos := make(map[string]int, len(got))
	for i, id := range got {
		pos[id] = i
	}
	if pos["D"] < pos["B"] || pos["D"] < pos["C"] {
		t.Errorf("D placed before a prerequisite: %v", got)
	}
	if pos["C"] > pos["B"] {
		t.Errorf("priority C should not trail non-priority B: %v", got)
	}
}
