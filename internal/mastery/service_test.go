package mastery

import (
	"context"
	"testing"
)

type memRepo struct {
	facts map[string]map[string]float64 // learner -> concept -> score
}

func newMemRepo() *memRepo {
	return &memRepo{facts: make(map[string]map[string]float64)}
}

func (r *memRepo) Get(_ context.Context, learnerID, conceptID string) (float64, bool, error) {
	s, ok := r.facts[learnerID][conceptID]
	return s, ok, nil
}

func (r *memRepo) Upsert(_ context.Context, learnerID, conceptID string, score float64) error {
	if r.facts[learnerID] == nil {
		r.facts[learnerID] = make(map[string]float64)
	}
	r.facts[learnerID][conceptID] = score
	return nil
}

func (r *memRepo) ForLearner(_ context.Context, learnerID string, conceptIDs []string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, id := range conceptIDs {
		if s, ok := r.facts[learnerID][id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func TestScore_AbsentFactReadsZero(t *testing.T) {
	svc := NewService(newMemRepo())
	score, err := svc.Score(context.Background(), "learner-1", "alg-linear-eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Errorf("got %g, want 0", score)
	}
}

func TestSetAndScore(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	if err := svc.Set(ctx, "learner-1", "alg-linear-eq", 0.85); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	score, err := svc.Score(ctx, "learner-1", "alg-linear-eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.85 {
		t.Errorf("got %g, want 0.85", score)
	}
}

func TestSet_ClampsRange(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{1.5, 1},
		{0.4, 0.4},
	}
	for _, tt := range tests {
		if err := svc.Set(ctx, "learner-1", "c", tt.in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		score, _ := svc.Score(ctx, "learner-1", "c")
		if score != tt.want {
			t.Errorf("Set(%g): got %g, want %g", tt.in, score, tt.want)
		}
	}
}

func TestMasteryBatch_OmitsAbsentFacts(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	if err := svc.Set(ctx, "learner-1", "a", 0.6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.MasteryBatch(ctx, "learner-1", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got["a"] != 0.6 {
		t.Errorf("got %v, want map[a:0.6]", got)
	}
	if _, present := got["b"]; present {
		t.Error("unrecorded concept should be absent, not zero-valued")
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Band
	}{
		{0, BandFresh},
		{0.01, BandDeveloping},
		{0.69, BandDeveloping},
		{0.7, BandProficient},
		{1, BandProficient},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score, 0.7); got != tt.want {
			t.Errorf("BandFor(%g, 0.7) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestBand_Labels(t *testing.T) {
	if BandFresh.Label() != "Fresh" || BandProficient.Icon() != "●" {
		t.Error("band display mappings broken")
	}
}
