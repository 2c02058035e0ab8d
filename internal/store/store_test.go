package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/mistakes"
	"github.com/Yashshokeen-11/ALP/internal/review"
)

// openTestStore gives each test its own file-backed database so WAL
// mode behaves the same way it does in production.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "alp.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alp.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Client() == nil || s.DB() == nil {
		t.Fatal("store opened without live handles")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file never written: %v", err)
	}
}

func TestPragmasApplied(t *testing.T) {
	db := openTestStore(t).DB()

	for pragma, want := range map[string]string{
		"journal_mode": "wal",
		"busy_timeout": "5000",
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL
	} {
		var got string
		if err := db.QueryRow("PRAGMA " + pragma).Scan(&got); err != nil {
			t.Fatalf("PRAGMA %s: %v", pragma, err)
		}
		if got != want {
			t.Errorf("PRAGMA %s = %q, want %q", pragma, got, want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tables := []string{
		"concepts",
		"prereq_edges",
		"mastery_facts",
		"review_states",
		"mistake_records",
		"path_events",
		"llm_request_events",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}
	for want := int64(1); want <= 5; want++ {
		got, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Fatalf("sequence = %d, want %d", got, want)
		}
	}

	// The counter lives in a table, so a fresh counter over the same
	// database resumes instead of restarting at 1.
	sc2, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("reopen sequence counter: %v", err)
	}
	got, err := sc2.Next(ctx)
	if err != nil {
		t.Fatalf("next after reopen: %v", err)
	}
	if got != 6 {
		t.Fatalf("sequence after reopen = %d, want 6", got)
	}
}

func seedAlgebra(t *testing.T, repo CurriculumRepo) {
	t.Helper()
	ctx := context.Background()

	concepts := []curriculum.Concept{
		{ID: "alg-expressions", SubjectID: "algebra", Title: "Expressions", Difficulty: 1, EstimatedMins: 20},
		{ID: "alg-linear-eq", SubjectID: "algebra", Title: "Linear equations", Difficulty: 2, EstimatedMins: 30},
		{ID: "alg-systems", SubjectID: "algebra", Title: "Systems of equations", Difficulty: 3, EstimatedMins: 45},
	}
	for _, c := range concepts {
		if err := repo.UpsertConcept(ctx, c); err != nil {
			t.Fatalf("upsert concept %s: %v", c.ID, err)
		}
	}

	edges := []curriculum.Edge{
		{PrerequisiteID: "alg-expressions", DependentID: "alg-linear-eq"},
		{PrerequisiteID: "alg-linear-eq", DependentID: "alg-systems"},
	}
	for _, e := range edges {
		if err := repo.UpsertEdge(ctx, "algebra", e); err != nil {
			t.Fatalf("upsert edge %s->%s: %v", e.PrerequisiteID, e.DependentID, err)
		}
	}
}

func TestCurriculumRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	seedAlgebra(t, repo)

	concepts, err := repo.Concepts(ctx, "algebra")
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 3 {
		t.Fatalf("concepts = %d, want 3", len(concepts))
	}
	if concepts[0].ID != "alg-expressions" {
		t.Errorf("first concept = %q, want alg-expressions", concepts[0].ID)
	}
	if concepts[1].Title != "Linear equations" {
		t.Errorf("title = %q, want 'Linear equations'", concepts[1].Title)
	}
	if concepts[2].EstimatedMins != 45 {
		t.Errorf("estimated mins = %d, want 45", concepts[2].EstimatedMins)
	}

	edges, err := repo.Edges(ctx, "algebra")
	if err != nil {
		t.Fatalf("edges: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(edges))
	}
	if edges[0].PrerequisiteID != "alg-expressions" || edges[0].DependentID != "alg-linear-eq" {
		t.Errorf("first edge = %s->%s, want alg-expressions->alg-linear-eq",
			edges[0].PrerequisiteID, edges[0].DependentID)
	}
}

func TestCurriculumUpsertConceptOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	seedAlgebra(t, repo)

	err := repo.UpsertConcept(ctx, curriculum.Concept{
		ID: "alg-systems", SubjectID: "algebra", Title: "Simultaneous equations",
		Difficulty: 3.5, EstimatedMins: 50,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	c, ok, err := repo.GetConcept(ctx, "alg-systems")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected concept to exist")
	}
	if c.Title != "Simultaneous equations" {
		t.Errorf("title = %q, want 'Simultaneous equations'", c.Title)
	}
	if c.EstimatedMins != 50 {
		t.Errorf("estimated mins = %d, want 50", c.EstimatedMins)
	}

	// Still three concepts, not four.
	concepts, err := repo.Concepts(ctx, "algebra")
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 3 {
		t.Errorf("concepts = %d, want 3", len(concepts))
	}
}

func TestCurriculumUpsertEdgeIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	seedAlgebra(t, repo)

	err := repo.UpsertEdge(ctx, "algebra", curriculum.Edge{
		PrerequisiteID: "alg-expressions", DependentID: "alg-linear-eq",
	})
	if err != nil {
		t.Fatalf("upsert duplicate edge: %v", err)
	}

	edges, err := repo.Edges(ctx, "algebra")
	if err != nil {
		t.Fatalf("edges: %v", err)
	}
	if len(edges) != 2 {
		t.Errorf("edges = %d, want 2", len(edges))
	}
}

func TestCurriculumSubjectOf(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	seedAlgebra(t, repo)

	subject, err := repo.SubjectOf(ctx, "alg-linear-eq")
	if err != nil {
		t.Fatalf("subject of: %v", err)
	}
	if subject != "algebra" {
		t.Errorf("subject = %q, want algebra", subject)
	}

	subject, err = repo.SubjectOf(ctx, "no-such-concept")
	if err != nil {
		t.Fatalf("subject of unknown: %v", err)
	}
	if subject != "" {
		t.Errorf("subject = %q, want empty", subject)
	}
}

func TestCurriculumGetConceptMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	_, ok, err := repo.GetConcept(ctx, "no-such-concept")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing concept")
	}
}

func TestCurriculumSubjects(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	seedAlgebra(t, repo)
	err := repo.UpsertConcept(ctx, curriculum.Concept{
		ID: "geo-angles", SubjectID: "geometry", Title: "Angles", EstimatedMins: 25,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	subjects, err := repo.Subjects(ctx)
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(subjects) != 2 || subjects[0] != "algebra" || subjects[1] != "geometry" {
		t.Errorf("subjects = %v, want [algebra geometry]", subjects)
	}
}

func TestCurriculumDeleteSubject(t *testing.T) {
	s := openTestStore(t)
	repo := s.CurriculumRepo()
	ctx := context.Background()

	seedAlgebra(t, repo)

	if err := repo.DeleteSubject(ctx, "algebra"); err != nil {
		t.Fatalf("delete subject: %v", err)
	}

	concepts, err := repo.Concepts(ctx, "algebra")
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 0 {
		t.Errorf("concepts = %d, want 0", len(concepts))
	}

	edges, err := repo.Edges(ctx, "algebra")
	if err != nil {
		t.Fatalf("edges: %v", err)
	}
	if len(edges) != 0 {
		t.Errorf("edges = %d, want 0", len(edges))
	}
}

func TestMasteryGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "casey", "alg-expressions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected ok=false with no facts recorded")
	}
}

func TestMasteryUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "casey", "alg-expressions", 0.8); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	score, ok, err := repo.Get(ctx, "casey", "alg-expressions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if score != 0.8 {
		t.Errorf("score = %v, want 0.8", score)
	}

	// Overwrite.
	if err := repo.Upsert(ctx, "casey", "alg-expressions", 0.95); err != nil {
		t.Fatalf("upsert overwrite: %v", err)
	}
	score, _, err = repo.Get(ctx, "casey", "alg-expressions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if score != 0.95 {
		t.Errorf("score = %v, want 0.95", score)
	}
}

func TestMasteryForLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	seed := map[string]float64{
		"alg-expressions": 0.9,
		"alg-linear-eq":   0.4,
		"alg-systems":     0.1,
	}
	for id, score := range seed {
		if err := repo.Upsert(ctx, "casey", id, score); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}
	// Another learner's facts must not leak in.
	if err := repo.Upsert(ctx, "riley", "alg-expressions", 0.2); err != nil {
		t.Fatalf("upsert riley: %v", err)
	}

	// Filtered lookup.
	scores, err := repo.ForLearner(ctx, "casey", []string{"alg-expressions", "alg-systems"})
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("scores = %d, want 2", len(scores))
	}
	if scores["alg-expressions"] != 0.9 {
		t.Errorf("alg-expressions = %v, want 0.9", scores["alg-expressions"])
	}

	// Empty filter returns everything.
	scores, err = repo.ForLearner(ctx, "casey", nil)
	if err != nil {
		t.Fatalf("for learner (all): %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("scores = %d, want 3", len(scores))
	}
}

func TestMasteryDeleteLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "casey", "alg-expressions", 0.9); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "riley", "alg-expressions", 0.5); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.DeleteLearner(ctx, "casey"); err != nil {
		t.Fatalf("delete learner: %v", err)
	}

	_, ok, err := repo.Get(ctx, "casey", "alg-expressions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected casey's facts to be gone")
	}

	// Riley's facts survive.
	_, ok, err = repo.Get(ctx, "riley", "alg-expressions")
	if err != nil {
		t.Fatalf("get riley: %v", err)
	}
	if !ok {
		t.Error("expected riley's facts to remain")
	}
}

func TestReviewUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	st := review.State{
		LearnerID:       "casey",
		ConceptID:       "alg-linear-eq",
		Stage:           2,
		NextReviewAt:    now.AddDate(0, 0, 7),
		ConsecutiveHits: 2,
		Graduated:       false,
		LastReviewAt:    now,
	}
	if err := repo.Upsert(ctx, st); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := repo.Get(ctx, "casey", "alg-linear-eq")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected state to exist")
	}
	if got.Stage != 2 {
		t.Errorf("stage = %d, want 2", got.Stage)
	}
	if !got.NextReviewAt.Equal(st.NextReviewAt) {
		t.Errorf("next review = %v, want %v", got.NextReviewAt, st.NextReviewAt)
	}
	if got.ConsecutiveHits != 2 {
		t.Errorf("hits = %d, want 2", got.ConsecutiveHits)
	}

	// Upsert again with advanced state.
	st.Stage = 3
	st.ConsecutiveHits = 3
	st.Graduated = false
	if err := repo.Upsert(ctx, st); err != nil {
		t.Fatalf("upsert overwrite: %v", err)
	}
	got, _, err = repo.Get(ctx, "casey", "alg-linear-eq")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stage != 3 {
		t.Errorf("stage = %d, want 3", got.Stage)
	}
}

func TestReviewGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "casey", "alg-linear-eq")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected ok=false when nothing is tracked")
	}
}

func TestReviewForLearnerSorted(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for _, id := range []string{"alg-systems", "alg-expressions", "alg-linear-eq"} {
		err := repo.Upsert(ctx, review.State{
			LearnerID:    "casey",
			ConceptID:    id,
			NextReviewAt: now.AddDate(0, 0, 1),
			LastReviewAt: now,
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	states, err := repo.ForLearner(ctx, "casey")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(states) != 3 {
		t.Fatalf("states = %d, want 3", len(states))
	}
	want := []string{"alg-expressions", "alg-linear-eq", "alg-systems"}
	for i, w := range want {
		if states[i].ConceptID != w {
			t.Errorf("states[%d] = %q, want %q", i, states[i].ConceptID, w)
		}
	}
}

func TestReviewDeleteLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	err := repo.Upsert(ctx, review.State{
		LearnerID: "casey", ConceptID: "alg-linear-eq",
		NextReviewAt: now, LastReviewAt: now,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.DeleteLearner(ctx, "casey"); err != nil {
		t.Fatalf("delete learner: %v", err)
	}

	states, err := repo.ForLearner(ctx, "casey")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(states) != 0 {
		t.Errorf("states = %d, want 0", len(states))
	}
}

func TestMistakeRecordIncrements(t *testing.T) {
	s := openTestStore(t)
	repo := s.MistakeRepo()
	ctx := context.Background()

	first := time.Now().UTC().Truncate(time.Second)
	second := first.Add(time.Hour)

	if err := repo.Record(ctx, "casey", "alg-linear-eq", mistakes.KindSlip, first); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Record(ctx, "casey", "alg-linear-eq", mistakes.KindSlip, second); err != nil {
		t.Fatalf("record again: %v", err)
	}
	// A different kind on the same concept is its own tally.
	if err := repo.Record(ctx, "casey", "alg-linear-eq", mistakes.KindPrereqGap, second); err != nil {
		t.Fatalf("record kind: %v", err)
	}

	records, err := repo.ForLearner(ctx, "casey")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	// Ordered by concept then kind; "prerequisite-gap" sorts before "slip".
	if records[0].Kind != mistakes.KindPrereqGap || records[0].Count != 1 {
		t.Errorf("records[0] = %s x%d, want prerequisite-gap x1", records[0].Kind, records[0].Count)
	}
	if records[1].Kind != mistakes.KindSlip || records[1].Count != 2 {
		t.Errorf("records[1] = %s x%d, want slip x2", records[1].Kind, records[1].Count)
	}
	if !records[1].LastSeen.Equal(second) {
		t.Errorf("last seen = %v, want %v", records[1].LastSeen, second)
	}
}

func TestMistakeDeleteLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.MistakeRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	if err := repo.Record(ctx, "casey", "alg-linear-eq", mistakes.KindSlip, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := repo.DeleteLearner(ctx, "casey"); err != nil {
		t.Fatalf("delete learner: %v", err)
	}

	records, err := repo.ForLearner(ctx, "casey")
	if err != nil {
		t.Fatalf("for learner: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestPathEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendPathEvent(ctx, PathEventData{
			LearnerID:    "casey",
			SubjectID:    "algebra",
			Threshold:    0.8,
			ConceptCount: i + 1,
			GapCount:     i,
			TotalMinutes: 30 * (i + 1),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	err := repo.AppendPathEvent(ctx, PathEventData{
		LearnerID: "riley", SubjectID: "algebra", Threshold: 0.8, ConceptCount: 5,
	})
	if err != nil {
		t.Fatalf("append riley: %v", err)
	}

	// Newest first, filtered to casey.
	records, err := repo.RecentPaths(ctx, "casey", 2)
	if err != nil {
		t.Fatalf("recent paths: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ConceptCount != 3 {
		t.Errorf("newest concept count = %d, want 3", records[0].ConceptCount)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			records[0].Sequence, records[1].Sequence)
	}

	// Empty learner matches everyone.
	records, err = repo.RecentPaths(ctx, "", 0)
	if err != nil {
		t.Fatalf("recent paths (all): %v", err)
	}
	if len(records) != 4 {
		t.Errorf("records = %d, want 4", len(records))
	}
	if records[0].LearnerID != "riley" {
		t.Errorf("newest learner = %q, want riley", records[0].LearnerID)
	}
}

func TestLLMRequestAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "narrate-path",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 900, Success: true,
			RequestBody: `{"prompt":"a"}`, ResponseBody: `{"text":"b"}`},
		{Provider: "openai", Model: "gpt-4o", Purpose: "narrate-path",
			InputTokens: 120, OutputTokens: 60, LatencyMs: 700, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "explain-concept",
			InputTokens: 80, OutputTokens: 0, LatencyMs: 300, Success: false,
			ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].Purpose != "explain-concept" {
		t.Errorf("newest purpose = %q, want explain-concept", records[0].Purpose)
	}
	if records[2].RequestBody != `{"prompt":"a"}` {
		t.Errorf("request body = %q", records[2].RequestBody)
	}

	// Limit.
	records, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("records = %d, want 1", len(records))
	}

	// After filter excludes the first event.
	firstSeq := int64(1)
	records, err = repo.QueryLLMEvents(ctx, QueryOpts{After: firstSeq})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want 2", len(records))
	}
}

func TestLLMEventGetBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-model", Purpose: "narrate-path", Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record for sequence 1")
	}
	if rec.Provider != "mock" {
		t.Errorf("provider = %q, want mock", rec.Provider)
	}

	rec, err = repo.GetLLMEvent(ctx, 99)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for unknown sequence")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "narrate-path",
			InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "narrate-path",
			InputTokens: 200, OutputTokens: 100, Success: false},
		{Provider: "openai", Model: "gpt-4o", Purpose: "explain-concept",
			InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("rows = %d, want 2", len(byPurpose))
	}
	// Sorted by key: explain-concept before narrate-path.
	if byPurpose[0].Key != "explain-concept" || byPurpose[0].Requests != 1 {
		t.Errorf("row 0 = %+v, want explain-concept with 1 request", byPurpose[0])
	}
	if byPurpose[1].Key != "narrate-path" {
		t.Errorf("row 1 key = %q, want narrate-path", byPurpose[1].Key)
	}
	if byPurpose[1].Requests != 2 || byPurpose[1].Failures != 1 {
		t.Errorf("narrate-path = %d requests %d failures, want 2/1",
			byPurpose[1].Requests, byPurpose[1].Failures)
	}
	if byPurpose[1].InputTokens != 300 || byPurpose[1].OutputTokens != 150 {
		t.Errorf("narrate-path tokens = %d/%d, want 300/150",
			byPurpose[1].InputTokens, byPurpose[1].OutputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("rows = %d, want 2", len(byModel))
	}
	if byModel[0].Key != "claude-sonnet-4-5" || byModel[0].Requests != 2 {
		t.Errorf("row 0 = %+v, want claude-sonnet-4-5 with 2 requests", byModel[0])
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendPathEvent(ctx, PathEventData{
		LearnerID: "casey", SubjectID: "algebra", Threshold: 0.8,
	})
	if err != nil {
		t.Fatalf("append path: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-model", Purpose: "narrate-path", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	paths, err := repo.RecentPaths(ctx, "", 0)
	if err != nil {
		t.Fatalf("recent paths: %v", err)
	}
	llms, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}

	if paths[0].Sequence != 1 {
		t.Errorf("path sequence = %d, want 1", paths[0].Sequence)
	}
	if llms[0].Sequence != 2 {
		t.Errorf("llm sequence = %d, want 2", llms[0].Sequence)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "override.db")
	t.Setenv("ALP_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("ALP_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	want := filepath.Join(dataHome, "alp", "alp.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
