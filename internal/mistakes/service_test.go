package mistakes

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memRepo is an in-memory Repo for tests.
type memRepo struct {
	recs map[string][]Record // learner -> tallies
	fail bool
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[string][]Record)}
}

func (m *memRepo) Record(_ context.Context, learnerID, conceptID string, kind Kind, at time.Time) error {
	if m.fail {
		return errors.New("repo down")
	}
	for i := range m.recs[learnerID] {
		r := &m.recs[learnerID][i]
		if r.ConceptID == conceptID && r.Kind == kind {
			r.Count++
			r.LastSeen = at
			return nil
		}
	}
	m.recs[learnerID] = append(m.recs[learnerID], Record{
		LearnerID: learnerID,
		ConceptID: conceptID,
		Kind:      kind,
		Count:     1,
		LastSeen:  at,
	})
	return nil
}

func (m *memRepo) ForLearner(_ context.Context, learnerID string) ([]Record, error) {
	if m.fail {
		return nil, errors.New("repo down")
	}
	return append([]Record(nil), m.recs[learnerID]...), nil
}

func TestKindValid(t *testing.T) {
	for _, k := range AllKinds() {
		if !k.Valid() {
			t.Errorf("Kind %q should be valid", k)
		}
	}
	if Kind("typo").Valid() {
		t.Error("Kind \"typo\" should not be valid")
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("method-error")
	if err != nil {
		t.Fatalf("ParseKind() error: %v", err)
	}
	if k != KindMethodError {
		t.Errorf("ParseKind() = %q, want %q", k, KindMethodError)
	}

	if _, err := ParseKind("careless"); err == nil {
		t.Error("expected error for unrecognized kind")
	}
}

func TestRecord_IncrementsCount(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.Record(ctx, "learner-1", "alg-linear-eq", KindSlip, at)
	later := at.Add(time.Hour)
	if err := svc.Record(ctx, "learner-1", "alg-linear-eq", KindSlip, later); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	recs, _ := svc.ForLearner(ctx, "learner-1")
	if len(recs) != 1 {
		t.Fatalf("expected 1 tally, got %d", len(recs))
	}
	if recs[0].Count != 2 {
		t.Errorf("Count = %d, want 2", recs[0].Count)
	}
	if !recs[0].LastSeen.Equal(later) {
		t.Errorf("LastSeen = %v, want %v", recs[0].LastSeen, later)
	}
}

func TestRecord_RejectsInvalidKind(t *testing.T) {
	svc := NewService(newMemRepo())
	err := svc.Record(context.Background(), "learner-1", "alg-linear-eq", Kind("guess"), time.Now())
	if err == nil {
		t.Error("expected error for invalid kind")
	}
}

func TestRecord_RejectsEmptyIDs(t *testing.T) {
	svc := NewService(newMemRepo())
	now := time.Now()
	if err := svc.Record(context.Background(), "", "alg-linear-eq", KindSlip, now); err == nil {
		t.Error("expected error for empty learner id")
	}
	if err := svc.Record(context.Background(), "learner-1", "", KindSlip, now); err == nil {
		t.Error("expected error for empty concept id")
	}
}

func TestForLearner_SortedByConceptThenKind(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.Record(ctx, "learner-1", "alg-systems", KindSlip, at)
	svc.Record(ctx, "learner-1", "alg-expressions", KindTimeout, at)
	svc.Record(ctx, "learner-1", "alg-expressions", KindSlip, at)

	recs, err := svc.ForLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("ForLearner() error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 tallies, got %d", len(recs))
	}
	if recs[0].ConceptID != "alg-expressions" || recs[0].Kind != KindSlip {
		t.Errorf("recs[0] = %s/%s, want alg-expressions/slip", recs[0].ConceptID, recs[0].Kind)
	}
	if recs[1].ConceptID != "alg-expressions" || recs[1].Kind != KindTimeout {
		t.Errorf("recs[1] = %s/%s, want alg-expressions/timeout", recs[1].ConceptID, recs[1].Kind)
	}
	if recs[2].ConceptID != "alg-systems" {
		t.Errorf("recs[2].ConceptID = %s, want alg-systems", recs[2].ConceptID)
	}
}

func TestCountsByKind(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.Record(ctx, "learner-1", "alg-expressions", KindSlip, at)
	svc.Record(ctx, "learner-1", "alg-systems", KindSlip, at)
	svc.Record(ctx, "learner-1", "alg-systems", KindPrereqGap, at)

	counts, err := svc.CountsByKind(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CountsByKind() error: %v", err)
	}
	if counts[KindSlip] != 2 {
		t.Errorf("counts[slip] = %d, want 2", counts[KindSlip])
	}
	if counts[KindPrereqGap] != 1 {
		t.Errorf("counts[prerequisite-gap] = %d, want 1", counts[KindPrereqGap])
	}
}

func TestRecord_RepoFailure(t *testing.T) {
	repo := newMemRepo()
	repo.fail = true
	svc := NewService(repo)

	err := svc.Record(context.Background(), "learner-1", "alg-expressions", KindSlip, time.Now())
	if err == nil {
		t.Error("expected error when repo is unavailable")
	}
}
