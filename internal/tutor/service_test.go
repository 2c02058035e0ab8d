package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/llm"
	"github.com/Yashshokeen-11/ALP/internal/pathgen"
)

func testPath() *pathgen.Path {
	return &pathgen.Path{
		SubjectID: "algebra",
		LearnerID: "casey",
		Threshold: 0.8,
		Steps: []pathgen.Step{
			{
				Concept: curriculum.Concept{
					ID: "alg-expressions", SubjectID: "algebra",
					Title: "Expressions", Difficulty: 1, EstimatedMins: 20,
				},
				Mastery: 0.3,
			},
			{
				Concept: curriculum.Concept{
					ID: "alg-linear-eq", SubjectID: "algebra",
					Title: "Linear equations", Difficulty: 2, EstimatedMins: 30,
				},
				Mastery: 0,
			},
		},
		TotalEstimatedMins: 50,
		Gaps:               []string{"alg-expressions"},
	}
}

func validNarrationJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "About 50 minutes takes you from expressions to solving equations.",
		"steps": [
			{"concept_id": "alg-expressions", "encouragement": "A quick refresh here makes everything after easier."},
			{"concept_id": "alg-linear-eq", "encouragement": "This is the payoff: solving for x with confidence."}
		]
	}`)
}

func TestNarratePlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNarrationJSON()})
	svc := NewService(mock, DefaultConfig())

	n, err := svc.NarratePlan(context.Background(), testPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(n.Headline, "50 minutes") {
		t.Errorf("headline = %q, want the time estimate mentioned", n.Headline)
	}
	if len(n.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(n.Steps))
	}
	if n.Steps[0].ConceptID != "alg-expressions" {
		t.Errorf("first note concept = %q, want alg-expressions", n.Steps[0].ConceptID)
	}
	if n.Steps[1].Encouragement == "" {
		t.Error("expected non-empty encouragement for second step")
	}
}

func TestNarratePlan_RequestCarriesPlanContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNarrationJSON()})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.NarratePlan(context.Background(), testPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "study-plan" {
		t.Fatalf("expected study-plan schema on the request, got %+v", req.Schema)
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"algebra", "Expressions", "Linear equations", "50 minutes"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestNarratePlan_NotesAlignByConceptID(t *testing.T) {
	// Response order is reversed and one note is missing; notes must
	// still land on the right steps.
	reordered := json.RawMessage(`{
		"headline": "A short algebra plan.",
		"steps": [
			{"concept_id": "alg-linear-eq", "encouragement": "Equations next."}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: reordered})
	svc := NewService(mock, DefaultConfig())

	n, err := svc.NarratePlan(context.Background(), testPath())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Steps) != 2 {
		t.Fatalf("steps = %d, want 2 (one per path step)", len(n.Steps))
	}
	if n.Steps[0].Encouragement != "" {
		t.Errorf("expected empty note for unmentioned step, got %q", n.Steps[0].Encouragement)
	}
	if n.Steps[1].Encouragement != "Equations next." {
		t.Errorf("note = %q, want 'Equations next.'", n.Steps[1].Encouragement)
	}
}

func TestNarratePlan_EmptyPath(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	if _, err := svc.NarratePlan(context.Background(), nil); err == nil {
		t.Error("expected error for nil path")
	}
	if _, err := svc.NarratePlan(context.Background(), &pathgen.Path{SubjectID: "algebra"}); err == nil {
		t.Error("expected error for path with no steps")
	}
}

func TestNarratePlan_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.NarratePlan(context.Background(), testPath())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %T", err)
	}
}

func TestNarratePlan_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.NarratePlan(context.Background(), testPath()); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func testExplainInput() ExplainInput {
	return ExplainInput{
		Concept: curriculum.Concept{
			ID: "alg-linear-eq", SubjectID: "algebra",
			Title: "Linear equations", Difficulty: 2, EstimatedMins: 30,
		},
		Mastery:   0.2,
		Threshold: 0.7,
		Prereqs: []PrereqStanding{
			{
				Concept: curriculum.Concept{
					ID: "alg-expressions", SubjectID: "algebra", Title: "Expressions",
				},
				Mastery:   0.9,
				Satisfied: true,
			},
		},
		Unlocks: []curriculum.Concept{
			{ID: "alg-systems", SubjectID: "algebra", Title: "Systems of equations"},
		},
	}
}

func TestExplainConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"overview": "A linear equation states that two expressions are equal.",
		"why_now": "You already handle expressions well, and this opens systems of equations.",
		"first_steps": ["Solve x + 3 = 7 by hand.", "Check the answer by substitution."]
	}`)})
	svc := NewService(mock, DefaultConfig())

	e, err := svc.ExplainConcept(context.Background(), testExplainInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(e.Overview, "linear equation") {
		t.Errorf("overview = %q, want the concept named", e.Overview)
	}
	if e.WhyNow == "" {
		t.Error("expected a why_now sentence")
	}
	if len(e.FirstSteps) != 2 {
		t.Fatalf("first steps = %d, want 2", len(e.FirstSteps))
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "concept-explanation" {
		t.Fatalf("expected concept-explanation schema on the request, got %+v", req.Schema)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Linear equations", "Expressions", "Systems of equations", "20%", "70%"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestExplainConcept_NoConcept(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	if _, err := svc.ExplainConcept(context.Background(), ExplainInput{}); err == nil {
		t.Error("expected error for empty input")
	}
}
