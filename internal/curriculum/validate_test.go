package curriculum

import (
	"strings"
	"testing"
)

func TestValidate_CleanSet(t *testing.T) {
	if err := Validate(testConcepts(), testEdges()); err != nil {
		t.Errorf("unexpected error for valid set: %v", err)
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	concepts := append(testConcepts(), Concept{ID: "alg-expressions", SubjectID: "algebra", Title: "Dup", EstimatedMins: 5})
	err := Validate(concepts, testEdges())
	if err == nil {
		t.Fatal("expected error for duplicate ID")
	}
	if !strings.Contains(err.Error(), "duplicate concept ID") {
		t.Errorf("error does not mention duplicate: %v", err)
	}
}

func TestValidate_DanglingEdge(t *testing.T) {
	edges := append(testEdges(), Edge{PrerequisiteID: "missing", DependentID: "alg-systems"})
	err := Validate(testConcepts(), edges)
	if err == nil {
		t.Fatal("expected error for dangling edge")
	}
	if !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("error does not mention dangling prerequisite: %v", err)
	}
}

func TestValidate_SelfLoop(t *testing.T) {
	edges := append(testEdges(), Edge{PrerequisiteID: "alg-systems", DependentID: "alg-systems"})
	err := Validate(testConcepts(), edges)
	if err == nil {
		t.Fatal("expected error for self-loop")
	}
	if !strings.Contains(err.Error(), "self-loop") {
		t.Errorf("error does not mention self-loop: %v", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	edges := append(testEdges(), Edge{PrerequisiteID: "alg-quadratics", DependentID: "alg-expressions"})
	err := Validate(testConcepts(), edges)
	if err == nil {
		t.Fatal("expected error for cycle")
	}
	if !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("error does not mention cycle: %v", err)
	}
}

func TestValidate_NonPositiveMinutes(t *testing.T) {
	concepts := testConcepts()
	concepts[0].EstimatedMins = 0
	err := Validate(concepts, testEdges())
	if err == nil {
		t.Fatal("expected error for zero estimated minutes")
	}
	if !strings.Contains(err.Error(), "estimated minutes") {
		t.Errorf("error does not mention estimated minutes: %v", err)
	}
}

func TestValidate_CollectsMultipleProblems(t *testing.T) {
	concepts := append(testConcepts(), Concept{ID: "alg-expressions", SubjectID: "algebra", Title: "Dup", EstimatedMins: 5})
	edges := append(testEdges(), Edge{PrerequisiteID: "missing", DependentID: "alg-systems"})
	err := Validate(concepts, edges)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate concept ID") || !strings.Contains(msg, "nonexistent prerequisite") {
		t.Errorf("expected both problems reported, got: %v", err)
	}
}
