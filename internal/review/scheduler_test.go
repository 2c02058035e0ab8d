package review

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/pathgen"
)

// memRepo is an in-memory Repo for tests.
type memRepo struct {
	states map[string]map[string]State
	fail   bool
}

func newMemRepo() *memRepo {
	return &memRepo{states: make(map[string]map[string]State)}
}

func (m *memRepo) Get(_ context.Context, learnerID, conceptID string) (State, bool, error) {
	if m.fail {
		return State{}, false, errors.New("repo down")
	}
	st, ok := m.states[learnerID][conceptID]
	return st, ok, nil
}

func (m *memRepo) ForLearner(_ context.Context, learnerID string) ([]State, error) {
	if m.fail {
		return nil, errors.New("repo down")
	}
	var out []State
	for _, st := range m.states[learnerID] {
		out = append(out, st)
	}
	return out, nil
}

func (m *memRepo) Upsert(_ context.Context, st State) error {
	if m.fail {
		return errors.New("repo down")
	}
	if m.states[st.LearnerID] == nil {
		m.states[st.LearnerID] = make(map[string]State)
	}
	m.states[st.LearnerID][st.ConceptID] = st
	return nil
}

func (m *memRepo) seed(st State) {
	if m.states[st.LearnerID] == nil {
		m.states[st.LearnerID] = make(map[string]State)
	}
	m.states[st.LearnerID][st.ConceptID] = st
}

func TestTrack_SetsStageZero(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	sched := NewScheduler(repo)

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	if err := sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt); err != nil {
		t.Fatalf("Track() error: %v", err)
	}

	st, ok, _ := repo.Get(ctx, "learner-1", "alg-linear-eq")
	if !ok {
		t.Fatal("expected review state after Track")
	}
	if st.Stage != 0 {
		t.Errorf("Stage = %d, want 0", st.Stage)
	}
	if st.ConsecutiveHits != 0 {
		t.Errorf("ConsecutiveHits = %d, want 0", st.ConsecutiveHits)
	}
	if st.Graduated {
		t.Error("expected not graduated")
	}
	expectedNext := masteredAt.AddDate(0, 0, 1)
	if !st.NextReviewAt.Equal(expectedNext) {
		t.Errorf("NextReviewAt = %v, want %v", st.NextReviewAt, expectedNext)
	}
	if !st.LastReviewAt.Equal(masteredAt) {
		t.Errorf("LastReviewAt = %v, want %v", st.LastReviewAt, masteredAt)
	}
}

func TestTrack_DoesNotResetExistingState(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	sched := NewScheduler(repo)

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt.AddDate(0, 0, 1)
	if _, err := sched.Record(ctx, "learner-1", "alg-linear-eq", true, now); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if err := sched.Track(ctx, "learner-1", "alg-linear-eq", now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("Track() error: %v", err)
	}
	st, _, _ := repo.Get(ctx, "learner-1", "alg-linear-eq")
	if st.Stage != 1 {
		t.Errorf("Stage = %d, want 1 (Track must not reset progress)", st.Stage)
	}
}

func TestRetrack_ResetsToStageZero(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	sched := NewScheduler(repo)

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt
	for i := 0; i < 6; i++ {
		now = now.AddDate(0, 0, BaseIntervals[min(i, MaxStage)])
		sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	}

	recoveredAt := now.AddDate(0, 0, 30)
	if err := sched.Retrack(ctx, "learner-1", "alg-linear-eq", recoveredAt); err != nil {
		t.Fatalf("Retrack() error: %v", err)
	}

	st, _, _ := repo.Get(ctx, "learner-1", "alg-linear-eq")
	if st.Stage != 0 {
		t.Errorf("Stage = %d, want 0 after retrack", st.Stage)
	}
	if st.Graduated {
		t.Error("expected not graduated after retrack")
	}
	if st.ConsecutiveHits != 0 {
		t.Errorf("ConsecutiveHits = %d, want 0", st.ConsecutiveHits)
	}
	expectedNext := recoveredAt.AddDate(0, 0, 1)
	if !st.NextReviewAt.Equal(expectedNext) {
		t.Errorf("NextReviewAt = %v, want %v", st.NextReviewAt, expectedNext)
	}
}

func TestRecord_Correct_AdvancesStage(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt.AddDate(0, 0, 1)
	st, err := sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if st.Stage != 1 {
		t.Errorf("Stage = %d, want 1", st.Stage)
	}
	if st.ConsecutiveHits != 1 {
		t.Errorf("ConsecutiveHits = %d, want 1", st.ConsecutiveHits)
	}
	expectedNext := now.AddDate(0, 0, 3) // stage 1 interval
	if !st.NextReviewAt.Equal(expectedNext) {
		t.Errorf("NextReviewAt = %v, want %v", st.NextReviewAt, expectedNext)
	}
}

func TestRecord_SixCorrect_Graduates(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt
	var st State
	for i := 0; i < 6; i++ {
		now = now.AddDate(0, 0, BaseIntervals[min(i, MaxStage)])
		st, _ = sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	}

	if !st.Graduated {
		t.Error("expected graduated after 6 correct reviews")
	}
	if st.ConsecutiveHits != 6 {
		t.Errorf("ConsecutiveHits = %d, want 6", st.ConsecutiveHits)
	}
}

func TestRecord_Graduated_StaysGraduated(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt
	for i := 0; i < 6; i++ {
		now = now.AddDate(0, 0, BaseIntervals[min(i, MaxStage)])
		sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	}

	now = now.AddDate(0, 0, 90)
	st, _ := sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	if !st.Graduated {
		t.Error("expected still graduated")
	}
	expectedNext := now.AddDate(0, 0, 90)
	if !st.NextReviewAt.Equal(expectedNext) {
		t.Errorf("NextReviewAt = %v, want %v", st.NextReviewAt, expectedNext)
	}
}

func TestRecord_Incorrect_ResetsHits(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt
	for i := 0; i < 3; i++ {
		now = now.AddDate(0, 0, BaseIntervals[i])
		sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	}

	now = now.AddDate(0, 0, 14)
	st, _ := sched.Record(ctx, "learner-1", "alg-linear-eq", false, now)
	if st.ConsecutiveHits != 0 {
		t.Errorf("ConsecutiveHits = %d, want 0 after incorrect", st.ConsecutiveHits)
	}
}

func TestRecord_Incorrect_KeepsStageAndDueDate(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	masteredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt.AddDate(0, 0, 1)
	before, _ := sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)

	now = now.AddDate(0, 0, 3)
	st, _ := sched.Record(ctx, "learner-1", "alg-linear-eq", false, now)
	if st.Stage != before.Stage {
		t.Errorf("Stage changed from %d to %d on incorrect answer", before.Stage, st.Stage)
	}
	if !st.NextReviewAt.Equal(before.NextReviewAt) {
		t.Errorf("NextReviewAt moved to %v on incorrect answer; concept should stay due", st.NextReviewAt)
	}
}

func TestRecord_Untracked_ReturnsError(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	_, err := sched.Record(ctx, "learner-1", "nonexistent", true, time.Now())
	if !errors.Is(err, ErrNotTracked) {
		t.Errorf("Record() error = %v, want ErrNotTracked", err)
	}
}

func TestRecord_AfterResetGraduatesOnSixConsecutive(t *testing.T) {
	ctx := context.Background()
	sched := NewScheduler(newMemRepo())

	masteredAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sched.Track(ctx, "learner-1", "alg-linear-eq", masteredAt)

	now := masteredAt
	for i := 0; i < 4; i++ {
		now = now.AddDate(0, 0, BaseIntervals[min(i, MaxStage)])
		sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	}
	now = now.AddDate(0, 0, 30)
	st, _ := sched.Record(ctx, "learner-1", "alg-linear-eq", false, now)
	if st.Graduated {
		t.Fatal("should not be graduated after a wrong answer")
	}

	for i := 0; i < 6; i++ {
		now = now.AddDate(0, 0, BaseIntervals[min(i, MaxStage)])
		st, _ = sched.Record(ctx, "learner-1", "alg-linear-eq", true, now)
	}
	if !st.Graduated {
		t.Error("expected graduated after 6 consecutive correct")
	}
}

func TestDue_SortedMostOverdueFirst(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-expressions", NextReviewAt: now.Add(-2 * 24 * time.Hour)})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-linear-eq", NextReviewAt: now.Add(-5 * 24 * time.Hour)})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-systems", NextReviewAt: now.Add(-10 * 24 * time.Hour)})
	sched := NewScheduler(repo)

	due, err := sched.Due(ctx, "learner-1", now)
	if err != nil {
		t.Fatalf("Due() error: %v", err)
	}
	want := []string{"alg-systems", "alg-linear-eq", "alg-expressions"}
	if !slices.Equal(due, want) {
		t.Errorf("Due() = %v, want %v", due, want)
	}
}

func TestDue_TieBreaksOnConceptID(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	at := now.Add(-3 * 24 * time.Hour)
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-systems", NextReviewAt: at})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-expressions", NextReviewAt: at})
	sched := NewScheduler(repo)

	due, _ := sched.Due(ctx, "learner-1", now)
	want := []string{"alg-expressions", "alg-systems"}
	if !slices.Equal(due, want) {
		t.Errorf("Due() = %v, want %v", due, want)
	}
}

func TestDue_ExcludesNotDue(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-expressions", NextReviewAt: now.Add(-24 * time.Hour)})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-linear-eq", NextReviewAt: now.Add(5 * 24 * time.Hour)})
	sched := NewScheduler(repo)

	due, _ := sched.Due(ctx, "learner-1", now)
	want := []string{"alg-expressions"}
	if !slices.Equal(due, want) {
		t.Errorf("Due() = %v, want %v", due, want)
	}
}

func TestDue_RepoFailure(t *testing.T) {
	repo := newMemRepo()
	repo.fail = true
	sched := NewScheduler(repo)

	if _, err := sched.Due(context.Background(), "learner-1", time.Now()); err == nil {
		t.Error("expected error when repo is unavailable")
	}
}

func TestStates_SortedByConceptID(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-systems", NextReviewAt: now})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-expressions", NextReviewAt: now})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-linear-eq", NextReviewAt: now})
	sched := NewScheduler(repo)

	states, err := sched.States(ctx, "learner-1")
	if err != nil {
		t.Fatalf("States() error: %v", err)
	}
	got := make([]string, len(states))
	for i, st := range states {
		got[i] = st.ConceptID
	}
	want := []string{"alg-expressions", "alg-linear-eq", "alg-systems"}
	if !slices.Equal(got, want) {
		t.Errorf("States() order = %v, want %v", got, want)
	}
}

// fakeReorderer records the priority IDs it was handed.
type fakeReorderer struct {
	called bool
	gotIDs []string
}

func (f *fakeReorderer) Reorder(_ context.Context, path *pathgen.Path, priorityIDs []string) (*pathgen.Path, error) {
	f.called = true
	f.gotIDs = slices.Clone(priorityIDs)
	return path, nil
}

func TestAdapt_PassesDueConceptsToReorderer(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-linear-eq", NextReviewAt: now.Add(-5 * 24 * time.Hour)})
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-expressions", NextReviewAt: now.Add(-1 * 24 * time.Hour)})
	sched := NewScheduler(repo)

	path := &pathgen.Path{SubjectID: "algebra", LearnerID: "learner-1"}
	r := &fakeReorderer{}
	if _, err := sched.Adapt(ctx, r, path, now); err != nil {
		t.Fatalf("Adapt() error: %v", err)
	}
	want := []string{"alg-linear-eq", "alg-expressions"}
	if !slices.Equal(r.gotIDs, want) {
		t.Errorf("reorderer got %v, want %v", r.gotIDs, want)
	}
}

func TestAdapt_NothingDue_ReturnsPathUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	repo.seed(State{LearnerID: "learner-1", ConceptID: "alg-linear-eq", NextReviewAt: now.Add(5 * 24 * time.Hour)})
	sched := NewScheduler(repo)

	path := &pathgen.Path{SubjectID: "algebra", LearnerID: "learner-1"}
	r := &fakeReorderer{}
	got, err := sched.Adapt(ctx, r, path, now)
	if err != nil {
		t.Fatalf("Adapt() error: %v", err)
	}
	if r.called {
		t.Error("reorderer should not run when nothing is due")
	}
	if got != path {
		t.Error("expected the same path back")
	}
}

func TestAdapt_NilPath(t *testing.T) {
	sched := NewScheduler(newMemRepo())
	got, err := sched.Adapt(context.Background(), &fakeReorderer{}, nil, time.Now())
	if err != nil {
		t.Fatalf("Adapt() error: %v", err)
	}
	if got != nil {
		t.Errorf("Adapt(nil) = %v, want nil", got)
	}
}
