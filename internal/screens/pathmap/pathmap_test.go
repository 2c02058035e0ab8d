package pathmap

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/review"
	"github.com/Yashshokeen-11/ALP/internal/screen"
)

// memCurriculum serves a fixed catalog out of memory.
type memCurriculum struct {
	concepts map[string][]curriculum.Concept
	edges    map[string][]curriculum.Edge
	err      error
}

func (m *memCurriculum) Concepts(_ context.Context, subjectID string) ([]curriculum.Concept, error) {
	return m.concepts[subjectID], nil
}

func (m *memCurriculum) Edges(_ context.Context, subjectID string) ([]curriculum.Edge, error) {
	return m.edges[subjectID], nil
}

func (m *memCurriculum) SubjectOf(_ context.Context, conceptID string) (string, error) {
	for subj, cs := range m.concepts {
		for _, c := range cs {
			if c.ID == conceptID {
				return subj, nil
			}
		}
	}
	return "", nil
}

func (m *memCurriculum) GetConcept(_ context.Context, conceptID string) (curriculum.Concept, bool, error) {
	for _, cs := range m.concepts {
		for _, c := range cs {
			if c.ID == conceptID {
				return c, true, nil
			}
		}
	}
	return curriculum.Concept{}, false, nil
}

func (m *memCurriculum) Subjects(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	subjects := make([]string, 0, len(m.concepts))
	for s := range m.concepts {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects, nil
}

func (m *memCurriculum) UpsertConcept(context.Context, curriculum.Concept) error { return nil }

func (m *memCurriculum) UpsertEdge(context.Context, string, curriculum.Edge) error { return nil }

func (m *memCurriculum) DeleteSubject(context.Context, string) error { return nil }

type memMastery struct {
	scores map[string]map[string]float64
}

func (m *memMastery) Get(_ context.Context, learnerID, conceptID string) (float64, bool, error) {
	s, ok := m.scores[learnerID][conceptID]
	return s, ok, nil
}

func (m *memMastery) Upsert(_ context.Context, learnerID, conceptID string, score float64) error {
	if m.scores[learnerID] == nil {
		m.scores[learnerID] = make(map[string]float64)
	}
	m.scores[learnerID][conceptID] = score
	return nil
}

func (m *memMastery) ForLearner(_ context.Context, learnerID string, conceptIDs []string) (map[string]float64, error) {
	out := make(map[string]float64)
	if len(conceptIDs) == 0 {
		for id, s := range m.scores[learnerID] {
			out[id] = s
		}
		return out, nil
	}
	for _, id := range conceptIDs {
		if s, ok := m.scores[learnerID][id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (m *memMastery) DeleteLearner(_ context.Context, learnerID string) error {
	delete(m.scores, learnerID)
	return nil
}

type memReview struct {
	states map[string][]review.State
}

func (m *memReview) Get(_ context.Context, learnerID, conceptID string) (review.State, bool, error) {
	for _, st := range m.states[learnerID] {
		if st.ConceptID == conceptID {
			return st, true, nil
		}
	}
	return review.State{}, false, nil
}

func (m *memReview) ForLearner(_ context.Context, learnerID string) ([]review.State, error) {
	return m.states[learnerID], nil
}

func (m *memReview) Upsert(_ context.Context, st review.State) error {
	for i, cur := range m.states[st.LearnerID] {
		if cur.ConceptID == st.ConceptID {
			m.states[st.LearnerID][i] = st
			return nil
		}
	}
	m.states[st.LearnerID] = append(m.states[st.LearnerID], st)
	return nil
}

func (m *memReview) DeleteLearner(_ context.Context, learnerID string) error {
	delete(m.states, learnerID)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testDeps builds a two-subject catalog. Algebra is a three-concept
// chain; casey has mastered the first link and half-learned the second.
func testDeps() Deps {
	cur := &memCurriculum{
		concepts: map[string][]curriculum.Concept{
			"algebra": {
				{ID: "alg-basics", SubjectID: "algebra", Title: "Basics", Difficulty: 1, EstimatedMins: 15},
				{ID: "alg-linear", SubjectID: "algebra", Title: "Linear equations", Difficulty: 2, EstimatedMins: 30},
				{ID: "alg-systems", SubjectID: "algebra", Title: "Systems", Difficulty: 3, EstimatedMins: 40},
			},
			"geometry": {
				{ID: "geo-angles", SubjectID: "geometry", Title: "Angles", Difficulty: 1, EstimatedMins: 20},
			},
		},
		edges: map[string][]curriculum.Edge{
			"algebra": {
				{PrerequisiteID: "alg-basics", DependentID: "alg-linear"},
				{PrerequisiteID: "alg-linear", DependentID: "alg-systems"},
			},
		},
	}
	mas := &memMastery{scores: map[string]map[string]float64{
		"casey": {"alg-basics": 0.9, "alg-linear": 0.4},
	}}
	rev := &memReview{states: map[string][]review.State{}}

	return Deps{
		Curriculum: cur,
		Mastery:    mas,
		Review:     rev,
		LearnerID:  "casey",
		Threshold:  0.7,
	}
}

func TestMapScreen_RowOrder(t *testing.T) {
	s := New(testDeps())
	if s.loadErr != nil {
		t.Fatalf("load failed: %v", s.loadErr)
	}

	var got []string
	for _, r := range s.rows {
		if r.kind == rowSubjectHeader {
			got = append(got, "#"+r.subject)
		} else {
			got = append(got, r.concept.ID)
		}
	}
	want := []string{"#algebra", "alg-basics", "alg-linear", "alg-systems", "#geometry", "geo-angles"}
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}

	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (first concept, not the header)", s.cursor)
	}
}

func TestMapScreen_CursorSkipsHeaders(t *testing.T) {
	s := New(testDeps())

	s.Update(specialKey(tea.KeyDown))
	s.Update(keyPress('j'))
	if s.cursor != 3 {
		t.Fatalf("cursor = %d, want 3 after two moves down", s.cursor)
	}

	// The next move crosses the geometry header.
	s.Update(keyPress('j'))
	if s.cursor != 5 {
		t.Errorf("cursor = %d, want 5 (header skipped)", s.cursor)
	}

	// Already at the last concept.
	s.Update(keyPress('j'))
	if s.cursor != 5 {
		t.Errorf("cursor = %d, want 5 at the bottom", s.cursor)
	}

	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 3 {
		t.Errorf("cursor = %d, want 3 after moving back up", s.cursor)
	}
}

func TestMapScreen_SubjectJump(t *testing.T) {
	s := New(testDeps())

	s.Update(specialKey(tea.KeyTab))
	if s.cursor != 5 {
		t.Fatalf("cursor = %d, want 5 (first geometry concept)", s.cursor)
	}

	// No subject after geometry.
	s.Update(specialKey(tea.KeyTab))
	if s.cursor != 5 {
		t.Errorf("cursor = %d, want 5 when there is no next subject", s.cursor)
	}

	s.prevSubject()
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (first algebra concept)", s.cursor)
	}
}

func TestMapScreen_Eligibility(t *testing.T) {
	s := New(testDeps())

	cases := []struct {
		subject string
		id      string
		want    eligibility
	}{
		{"algebra", "alg-basics", eligibilityMastered},
		{"algebra", "alg-linear", eligibilityReady},
		{"algebra", "alg-systems", eligibilityBlocked},
		{"geometry", "geo-angles", eligibilityReady},
	}
	for _, tc := range cases {
		if got := s.eligibilityOf(tc.subject, tc.id); got != tc.want {
			t.Errorf("eligibilityOf(%s) = %s, want %s", tc.id, got.Label(), tc.want.Label())
		}
	}
}

func TestMapScreen_EnterOpensDetail(t *testing.T) {
	s := New(testDeps())
	s.Update(keyPress('j'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg := cmd()
	push, ok := msg.(screen.PushMsg)
	if !ok {
		t.Fatalf("expected PushMsg, got %T", msg)
	}
	d, ok := push.Screen.(*ConceptDetailScreen)
	if !ok {
		t.Fatalf("expected a detail screen, got %T", push.Screen)
	}

	if d.concept.ID != "alg-linear" {
		t.Errorf("detail concept = %q, want alg-linear", d.concept.ID)
	}
	if d.Title() != "Linear equations" {
		t.Errorf("title = %q, want the concept title", d.Title())
	}
	if len(d.prereqs) != 1 || d.prereqs[0].concept.ID != "alg-basics" {
		t.Fatalf("prereqs = %+v, want just alg-basics", d.prereqs)
	}
	if !d.prereqs[0].satisfied {
		t.Error("alg-basics is above threshold, want satisfied")
	}
	if len(d.unlocks) != 1 || d.unlocks[0].ID != "alg-systems" {
		t.Errorf("unlocks = %+v, want just alg-systems", d.unlocks)
	}
}

func TestDetailScreen_View(t *testing.T) {
	s := New(testDeps())
	s.Update(keyPress('j'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	d := cmd().(screen.PushMsg).Screen.(*ConceptDetailScreen)

	view := d.View(80, 24)
	for _, want := range []string{"Linear equations", "Prerequisites", "Basics", "90%", "Unlocks", "Systems"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestMapScreen_LearnerSwitch(t *testing.T) {
	s := New(testDeps())

	s.Update(keyPress('l'))
	if !s.switching {
		t.Fatal("expected the learner prompt after l")
	}

	s.input.Model.SetValue("riley")
	s.Update(specialKey(tea.KeyEnter))

	if s.switching {
		t.Error("expected the prompt to close on enter")
	}
	if s.deps.LearnerID != "riley" {
		t.Errorf("learner = %q, want riley", s.deps.LearnerID)
	}
	if len(s.scores) != 0 {
		t.Errorf("scores = %v, want none for a new learner", s.scores)
	}
}

func TestMapScreen_LearnerSwitchEsc(t *testing.T) {
	s := New(testDeps())

	s.Update(keyPress('l'))
	s.Update(specialKey(tea.KeyEscape))

	if s.switching {
		t.Error("expected esc to close the prompt")
	}
	if s.deps.LearnerID != "casey" {
		t.Errorf("learner = %q, want casey unchanged", s.deps.LearnerID)
	}
}

func TestMapScreen_LearnerSwitchRejectsEmpty(t *testing.T) {
	s := New(testDeps())

	s.Update(keyPress('l'))
	s.Update(specialKey(tea.KeyEnter))

	if !s.switching {
		t.Error("expected the prompt to stay open on empty input")
	}
	if s.deps.LearnerID != "casey" {
		t.Errorf("learner = %q, want casey unchanged", s.deps.LearnerID)
	}
}

func TestMapScreen_Refresh(t *testing.T) {
	deps := testDeps()
	s := New(deps)

	deps.Mastery.(*memMastery).scores["casey"]["alg-systems"] = 0.95
	s.Update(keyPress('r'))

	if s.scores["alg-systems"] != 0.95 {
		t.Errorf("score after refresh = %v, want 0.95", s.scores["alg-systems"])
	}
}

func TestMapScreen_View(t *testing.T) {
	s := New(testDeps())

	view := s.View(100, 30)
	for _, want := range []string{"ALGEBRA", "GEOMETRY", "Basics", "Learner casey", "1/4 proficient"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMapScreen_ViewDueMarker(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	nowFn = func() time.Time { return base }
	t.Cleanup(func() { nowFn = time.Now })

	deps := testDeps()
	deps.Review.(*memReview).states["casey"] = []review.State{{
		LearnerID:    "casey",
		ConceptID:    "alg-linear",
		Stage:        1,
		NextReviewAt: base.Add(-2 * time.Hour),
	}}
	s := New(deps)

	if !strings.Contains(s.View(100, 30), "due!") {
		t.Error("expected a due marker for the overdue concept")
	}
}

func TestMapScreen_ViewLoadError(t *testing.T) {
	deps := testDeps()
	deps.Curriculum.(*memCurriculum).err = errors.New("catalog closed")
	s := New(deps)

	if !strings.Contains(s.View(80, 24), "Failed to load catalog") {
		t.Error("expected the load error to be shown")
	}
}

func TestMapScreen_ViewEmptyCatalog(t *testing.T) {
	deps := testDeps()
	deps.Curriculum.(*memCurriculum).concepts = map[string][]curriculum.Concept{}
	s := New(deps)

	if !strings.Contains(s.View(80, 24), "No subjects") {
		t.Error("expected the empty-catalog hint")
	}
}

func TestMapScreen_Title(t *testing.T) {
	s := New(testDeps())
	if s.Title() != "Path Map" {
		t.Errorf("Title = %q, want Path Map", s.Title())
	}
}

func TestMapScreen_KeyHints(t *testing.T) {
	s := New(testDeps())
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints for the footer")
	}
}
