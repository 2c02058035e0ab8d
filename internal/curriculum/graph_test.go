package curriculum

import (
	"testing"
)

func testConcepts() []Concept {
	return []Concept{
		{ID: "alg-expressions", SubjectID: "algebra", Title: "Expressions & Variables", Difficulty: 1, EstimatedMins: 20},
		{ID: "alg-linear-eq", SubjectID: "algebra", Title: "Linear Equations", Difficulty: 2, EstimatedMins: 30},
		{ID: "alg-inequalities", SubjectID: "algebra", Title: "Inequalities", Difficulty: 2, EstimatedMins: 25},
		{ID: "alg-systems", SubjectID: "algebra", Title: "Systems of Equations", Difficulty: 3, EstimatedMins: 40},
		{ID: "alg-quadratics", SubjectID: "algebra", Title: "Quadratic Equations", Difficulty: 4, EstimatedMins: 45},
	}
}

func testEdges() []Edge {
	return []Edge{
		{PrerequisiteID: "alg-expressions", DependentID: "alg-linear-eq"},
		{PrerequisiteID: "alg-linear-eq", DependentID: "alg-inequalities"},
		{PrerequisiteID: "alg-linear-eq", DependentID: "alg-systems"},
		{PrerequisiteID: "alg-linear-eq", DependentID: "alg-quadratics"},
		{PrerequisiteID: "alg-systems", DependentID: "alg-quadratics"},
	}
}

func TestConcept_Exists(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	c, ok := g.Concept("alg-linear-eq")
	if !ok {
		t.Fatal("alg-linear-eq not found")
	}
	if c.Title != "Linear Equations" {
		t.Errorf("got title %q, want %q", c.Title, "Linear Equations")
	}
	if c.EstimatedMins != 30 {
		t.Errorf("got estimated mins %d, want 30", c.EstimatedMins)
	}
}

func TestConcept_NotFound(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	if _, ok := g.Concept("nonexistent"); ok {
		t.Error("expected ok=false for nonexistent concept")
	}
}

func TestPrerequisites(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())

	prereqs := g.Prerequisites("alg-quadratics")
	if len(prereqs) != 2 {
		t.Fatalf("alg-quadratics: got %d prereqs, want 2", len(prereqs))
	}
	// Sorted order
	if prereqs[0] != "alg-linear-eq" || prereqs[1] != "alg-systems" {
		t.Errorf("alg-quadratics prereqs: got %v", prereqs)
	}

	if got := g.Prerequisites("alg-expressions"); len(got) != 0 {
		t.Errorf("alg-expressions: got %d prereqs, want 0", len(got))
	}
}

func TestDependents(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())

	deps := g.Dependents("alg-linear-eq")
	want := []string{"alg-inequalities", "alg-quadratics", "alg-systems"}
	if len(deps) != len(want) {
		t.Fatalf("got %d dependents, want %d", len(deps), len(want))
	}
	for i, id := range want {
		if deps[i] != id {
			t.Errorf("dependent %d: got %q, want %q", i, deps[i], id)
		}
	}
}

func TestRoots(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	roots := g.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "alg-expressions" {
		t.Errorf("root: got %q, want alg-expressions", roots[0].ID)
	}
}

func TestNewGraph_DropsDanglingAndDuplicateEdges(t *testing.T) {
	edges := append(testEdges(),
		Edge{PrerequisiteID: "alg-expressions", DependentID: "alg-linear-eq"}, // duplicate
		Edge{PrerequisiteID: "geo-angles", DependentID: "alg-linear-eq"},      // unknown prereq
		Edge{PrerequisiteID: "alg-linear-eq", DependentID: "geo-proofs"},      // unknown dependent
	)
	g := NewGraph(testConcepts(), edges)

	if got := g.Prerequisites("alg-linear-eq"); len(got) != 1 {
		t.Errorf("alg-linear-eq prereqs: got %v, want just alg-expressions", got)
	}
	if got := g.Dependents("alg-linear-eq"); len(got) != 3 {
		t.Errorf("alg-linear-eq dependents: got %v, want 3", got)
	}
}

func TestClosure(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())

	closure := g.Closure("alg-quadratics")
	want := []string{"alg-expressions", "alg-linear-eq", "alg-systems"}
	if len(closure) != len(want) {
		t.Fatalf("got closure of size %d, want %d: %v", len(closure), len(want), closure)
	}
	for _, id := range want {
		if !closure[id] {
			t.Errorf("closure missing %q", id)
		}
	}
	if closure["alg-quadratics"] {
		t.Error("concept should not appear in its own closure for an acyclic graph")
	}
}

func TestClosure_SharedAncestorVisitedOnce(t *testing.T) {
	// Diamond: both systems and linear-eq lead back to expressions.
	g := NewGraph(testConcepts(), testEdges())
	closure := g.Closure("alg-quadratics")
	if !closure["alg-expressions"] {
		t.Error("shared ancestor alg-expressions missing from closure")
	}
}

func TestClosure_UnknownConcept(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	if got := g.Closure("nonexistent"); len(got) != 0 {
		t.Errorf("got closure %v for unknown concept, want empty", got)
	}
}

func TestClosure_CycleTerminates(t *testing.T) {
	concepts := []Concept{
		{ID: "a", SubjectID: "s", Title: "A", EstimatedMins: 10},
		{ID: "b", SubjectID: "s", Title: "B", EstimatedMins: 10},
	}
	edges := []Edge{
		{PrerequisiteID: "a", DependentID: "b"},
		{PrerequisiteID: "b", DependentID: "a"},
	}
	g := NewGraph(concepts, edges)

	closure := g.Closure("a")
	if !closure["b"] {
		t.Error("closure of a should contain b")
	}
	// a reaches itself through the cycle
	if !closure["a"] {
		t.Error("closure of a should contain a via the cycle")
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	order, acyclic := g.TopologicalOrder()
	if !acyclic {
		t.Fatal("acyclic graph reported as cyclic")
	}
	if len(order) != 5 {
		t.Fatalf("got %d concepts in order, want 5", len(order))
	}

	pos := make(map[string]int, len(order))
	for i, c := range order {
		pos[c.ID] = i
	}
	for _, c := range order {
		for _, p := range g.Prerequisites(c.ID) {
			if pos[p] >= pos[c.ID] {
				t.Errorf("concept %q (pos %d) appears before prerequisite %q (pos %d)",
					c.ID, pos[c.ID], p, pos[p])
			}
		}
	}
}

func TestTopologicalOrder_Deterministic(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	a, _ := g.TopologicalOrder()
	b, _ := g.TopologicalOrder()
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	concepts := []Concept{
		{ID: "a", SubjectID: "s", Title: "A", EstimatedMins: 10},
		{ID: "b", SubjectID: "s", Title: "B", EstimatedMins: 10},
		{ID: "c", SubjectID: "s", Title: "C", EstimatedMins: 10},
	}
	edges := []Edge{
		{PrerequisiteID: "a", DependentID: "b"},
		{PrerequisiteID: "b", DependentID: "a"},
		{PrerequisiteID: "a", DependentID: "c"},
	}
	g := NewGraph(concepts, edges)

	order, acyclic := g.TopologicalOrder()
	if acyclic {
		t.Error("cyclic graph reported as acyclic")
	}
	// Only the cycle members drop out; nothing downstream of them resolves either.
	if len(order) != 0 {
		t.Errorf("got %d concepts in partial order, want 0 (all trapped by cycle)", len(order))
	}
}

func TestConcepts_ReturnsCopy(t *testing.T) {
	g := NewGraph(testConcepts(), testEdges())
	a := g.Concepts()
	a[0].Title = "MUTATED"
	b := g.Concepts()
	if b[0].Title == "MUTATED" {
		t.Error("Concepts leaked its internal slice")
	}
}
