package pathgen

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

type fakeCurriculum struct {
	concepts map[string][]curriculum.Concept
	edges    map[string][]curriculum.Edge
	subjects map[string]string
	fail     string // component name to fail: "concepts", "edges", "subject"
}

func (f *fakeCurriculum) Concepts(_ context.Context, subjectID string) ([]curriculum.Concept, error) {
	if f.fail == "concepts" {
		return nil, errors.New("store down")
	}
	return f.concepts[subjectID], nil
}

func (f *fakeCurriculum) Edges(_ context.Context, subjectID string) ([]curriculum.Edge, error) {
	if f.fail == "edges" {
		return nil, errors.New("store down")
	}
	return f.edges[subjectID], nil
}

func (f *fakeCurriculum) SubjectOf(_ context.Context, conceptID string) (string, error) {
	if f.fail == "subject" {
		return "", errors.New("store down")
	}
	return f.subjects[conceptID], nil
}

type fakeMastery struct {
	scores map[string]map[string]float64 // learner -> concept -> score
	fail   bool
}

func (f *fakeMastery) MasteryBatch(_ context.Context, learnerID string, conceptIDs []string) (map[string]float64, error) {
	if f.fail {
		return nil, errors.New("store down")
	}
	out := make(map[string]float64, len(conceptIDs))
	for _, id := range conceptIDs {
		if s, ok := f.scores[learnerID][id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

// diamondSubject is the four-concept fixture: A with no prerequisite,
// B and C each requiring A, D requiring both B and C. Difficulties are
// chosen so that among simultaneously eligible concepts the priority
// score orders A before B and C.
func diamondSubject() *fakeCurriculum {
	concepts := []curriculum.Concept{
		{ID: "A", SubjectID: "algebra", Title: "A", Difficulty: 0, EstimatedMins: 10},
		{ID: "B", SubjectID: "algebra", Title: "B", Difficulty: 2, EstimatedMins: 20},
		{ID: "C", SubjectID: "algebra", Title: "C", Difficulty: 2, EstimatedMins: 30},
		{ID: "D", SubjectID: "algebra", Title: "D", Difficulty: 3, EstimatedMins: 40},
	}
	edges := []curriculum.Edge{
		{PrerequisiteID: "A", DependentID: "B"},
		{PrerequisiteID: "A", DependentID: "C"},
		{PrerequisiteID: "B", DependentID: "D"},
		{PrerequisiteID: "C", DependentID: "D"},
	}
	subjects := make(map[string]string)
	for _, c := range concepts {
		subjects[c.ID] = "algebra"
	}
	return &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"algebra": concepts},
		edges:    map[string][]curriculum.Edge{"algebra": edges},
		subjects: subjects,
	}
}

func newTestGenerator(c *fakeCurriculum, scores map[string]float64) *Generator {
	return NewGenerator(c, &fakeMastery{scores: map[string]map[string]float64{"learner-1": scores}})
}

func TestGenerate_MasteredRootUnlocksFullPath(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.8})

	path, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "B", "C", "D"}
	if got := path.ConceptIDs(); !slices.Equal(got, want) {
		t.Errorf("order: got %v, want %v", got, want)
	}
	if len(path.Gaps) != 0 {
		t.Errorf("gaps: got %v, want none", path.Gaps)
	}
	if path.TotalEstimatedMins != 100 {
		t.Errorf("total minutes: got %d, want 100", path.TotalEstimatedMins)
	}
}

func TestGenerate_StrugglingRootBlocksDependents(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.4})

	path, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A is always eligible (no prerequisites) regardless of its own
	// mastery, but at 0.4 it does not satisfy B and C, and only A is
	// reported as the gap: B and C would schedule once A is re-mastered.
	if got := path.ConceptIDs(); !slices.Equal(got, []string{"A"}) {
		t.Errorf("order: got %v, want [A]", got)
	}
	if !slices.Equal(path.Gaps, []string{"A"}) {
		t.Errorf("gaps: got %v, want [A]", path.Gaps)
	}
	if path.TotalEstimatedMins != 10 {
		t.Errorf("total minutes: got %d, want 10 (placed concepts only)", path.TotalEstimatedMins)
	}
}

func TestGenerate_FreshLearnerGetsFullPath(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)

	path, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Nothing attempted: the path covers the whole subject in
	// prerequisite order.
	if got := path.ConceptIDs(); !slices.Equal(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("order: got %v, want [A B C D]", got)
	}
	if len(path.Gaps) != 0 {
		t.Errorf("gaps: got %v, want none", path.Gaps)
	}
}

func TestGenerate_UnknownLearnerTreatedAsZeroMastery(t *testing.T) {
	gen := NewGenerator(diamondSubject(), &fakeMastery{})

	path, err := gen.Generate(context.Background(), "algebra", "nobody", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := path.ConceptIDs(); !slices.Equal(got, []string{"A", "B", "C", "D"}) {
		t.Errorf("order: got %v, want [A B C D]", got)
	}
}

func TestGenerate_UnknownSubjectYieldsEmptyPath(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)

	path, err := gen.Generate(context.Background(), "geometry", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Steps) != 0 || len(path.Gaps) != 0 || path.TotalEstimatedMins != 0 {
		t.Errorf("got %+v, want empty path", path)
	}
}

func TestGenerate_InvalidThreshold(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)

	for _, tau := range []float64{-0.1, 1.1, 2} {
		_, err := gen.Generate(context.Background(), "algebra", "learner-1", tau)
		var invalid *ErrInvalidThreshold
		if !errors.As(err, &invalid) {
			t.Errorf("threshold %g: got %v, want ErrInvalidThreshold", tau, err)
		}
	}

	// Boundary values are legal.
	for _, tau := range []float64{0, 1} {
		if _, err := gen.Generate(context.Background(), "algebra", "learner-1", tau); err != nil {
			t.Errorf("threshold %g: unexpected error %v", tau, err)
		}
	}
}

func TestGenerate_DependencyFailures(t *testing.T) {
	tests := []struct {
		fail        string
		masteryFail bool
		component   string
	}{
		{fail: "concepts", component: "concepts"},
		{fail: "edges", component: "edges"},
		{masteryFail: true, component: "mastery"},
	}
	for _, tt := range tests {
		curr := diamondSubject()
		curr.fail = tt.fail
		gen := NewGenerator(curr, &fakeMastery{fail: tt.masteryFail})

		_, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
		var dep *ErrDependency
		if !errors.As(err, &dep) {
			t.Errorf("%s: got %v, want ErrDependency", tt.component, err)
			continue
		}
		if dep.Component != tt.component {
			t.Errorf("got component %q, want %q", dep.Component, tt.component)
		}
	}
}

func TestGenerate_CycleContainment(t *testing.T) {
	curr := &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"s": {
			{ID: "X", SubjectID: "s", Title: "X", EstimatedMins: 10},
			{ID: "Y", SubjectID: "s", Title: "Y", EstimatedMins: 10},
		}},
		edges: map[string][]curriculum.Edge{"s": {
			{PrerequisiteID: "X", DependentID: "Y"},
			{PrerequisiteID: "Y", DependentID: "X"},
		}},
	}
	gen := NewGenerator(curr, &fakeMastery{})

	path, err := gen.Generate(context.Background(), "s", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Steps) != 0 {
		t.Errorf("order: got %v, want empty (mutual cycle)", path.ConceptIDs())
	}
	if !slices.Equal(path.Gaps, []string{"X", "Y"}) {
		t.Errorf("gaps: got %v, want [X Y]", path.Gaps)
	}
}

func TestGenerate_CycleDoesNotSwallowAcyclicPortion(t *testing.T) {
	curr := &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"s": {
			{ID: "X", SubjectID: "s", Title: "X", EstimatedMins: 10},
			{ID: "Y", SubjectID: "s", Title: "Y", EstimatedMins: 10},
			{ID: "Z", SubjectID: "s", Title: "Z", EstimatedMins: 10},
		}},
		edges: map[string][]curriculum.Edge{"s": {
			{PrerequisiteID: "X", DependentID: "Y"},
			{PrerequisiteID: "Y", DependentID: "X"},
		}},
	}
	gen := NewGenerator(curr, &fakeMastery{})

	path, err := gen.Generate(context.Background(), "s", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := path.ConceptIDs(); !slices.Equal(got, []string{"Z"}) {
		t.Errorf("order: got %v, want [Z]", got)
	}
	if !slices.Equal(path.Gaps, []string{"X", "Y"}) {
		t.Errorf("gaps: got %v, want [X Y]", path.Gaps)
	}
}

func TestGenerate_CycleVictimNotReportedAsGap(t *testing.T) {
	// W depends on cycle member Z; the gap set names the cycle, not W.
	curr := &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"s": {
			{ID: "X", SubjectID: "s", Title: "X", EstimatedMins: 10},
			{ID: "Y", SubjectID: "s", Title: "Y", EstimatedMins: 10},
			{ID: "Z", SubjectID: "s", Title: "Z", EstimatedMins: 10},
			{ID: "W", SubjectID: "s", Title: "W", EstimatedMins: 10},
		}},
		edges: map[string][]curriculum.Edge{"s": {
			{PrerequisiteID: "X", DependentID: "Y"},
			{PrerequisiteID: "Y", DependentID: "Z"},
			{PrerequisiteID: "Z", DependentID: "X"},
			{PrerequisiteID: "Z", DependentID: "W"},
		}},
	}
	gen := NewGenerator(curr, &fakeMastery{})

	path, err := gen.Generate(context.Background(), "s", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Steps) != 0 {
		t.Errorf("order: got %v, want empty", path.ConceptIDs())
	}
	if !slices.Equal(path.Gaps, []string{"X", "Y", "Z"}) {
		t.Errorf("gaps: got %v, want [X Y Z]", path.Gaps)
	}
}

func TestGenerate_ThresholdSensitivity(t *testing.T) {
	curr := &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"s": {
			{ID: "P", SubjectID: "s", Title: "P", EstimatedMins: 10},
			{ID: "Q", SubjectID: "s", Title: "Q", EstimatedMins: 10},
		}},
		edges: map[string][]curriculum.Edge{"s": {
			{PrerequisiteID: "P", DependentID: "Q"},
		}},
	}
	gen := newTestGenerator(curr, map[string]float64{"P": 0.7})

	low, err := gen.Generate(context.Background(), "s", "learner-1", 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := low.ConceptIDs(); !slices.Equal(got, []string{"Q", "P"}) && !slices.Equal(got, []string{"P", "Q"}) {
		t.Errorf("tau=0.5: got %v, want both concepts placed", got)
	}
	if len(low.Gaps) != 0 {
		t.Errorf("tau=0.5 gaps: got %v, want none", low.Gaps)
	}

	high, err := gen.Generate(context.Background(), "s", "learner-1", 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := high.ConceptIDs(); !slices.Equal(got, []string{"P"}) {
		t.Errorf("tau=0.9: got %v, want [P]", got)
	}
	if !slices.Equal(high.Gaps, []string{"P"}) {
		t.Errorf("tau=0.9 gaps: got %v, want [P]", high.Gaps)
	}
}

func TestGenerate_MasteredPrerequisiteSatisfiesDespiteItsOwnBlockage(t *testing.T) {
	// P (attempted, 0.3) blocks Q, but Q itself is mastered, so R
	// behind Q is still reachable. The gap is P alone.
	curr := &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"s": {
			{ID: "P", SubjectID: "s", Title: "P", EstimatedMins: 10},
			{ID: "Q", SubjectID: "s", Title: "Q", EstimatedMins: 10},
			{ID: "R", SubjectID: "s", Title: "R", EstimatedMins: 10},
		}},
		edges: map[string][]curriculum.Edge{"s": {
			{PrerequisiteID: "P", DependentID: "Q"},
			{PrerequisiteID: "Q", DependentID: "R"},
		}},
	}
	gen := newTestGenerator(curr, map[string]float64{"P": 0.3, "Q": 0.9})

	path, err := gen.Generate(context.Background(), "s", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := path.ConceptIDs()
	if !slices.Contains(ids, "R") || !slices.Contains(ids, "P") || slices.Contains(ids, "Q") {
		t.Errorf("order: got %v, want P and R placed, Q held back", ids)
	}
	if !slices.Equal(path.Gaps, []string{"P"}) {
		t.Errorf("gaps: got %v, want [P]", path.Gaps)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.8, "C": 0.2})

	first, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated generation differs:\n%+v\n%+v", first, second)
	}
}

func TestGenerate_OrderRespectsPrerequisites(t *testing.T) {
	// A wider subject with mixed mastery; verify the structural
	// property rather than one pinned order.
	concepts := []curriculum.Concept{
		{ID: "n1", SubjectID: "s", Title: "n1", Difficulty: 1, EstimatedMins: 10},
		{ID: "n2", SubjectID: "s", Title: "n2", Difficulty: 2, EstimatedMins: 10},
		{ID: "n3", SubjectID: "s", Title: "n3", Difficulty: 1, EstimatedMins: 10},
		{ID: "n4", SubjectID: "s", Title: "n4", Difficulty: 3, EstimatedMins: 10},
		{ID: "n5", SubjectID: "s", Title: "n5", Difficulty: 2, EstimatedMins: 10},
		{ID: "n6", SubjectID: "s", Title: "n6", Difficulty: 4, EstimatedMins: 10},
	}
	edges := []curriculum.Edge{
		{PrerequisiteID: "n1", DependentID: "n2"},
		{PrerequisiteID: "n1", DependentID: "n3"},
		{PrerequisiteID: "n2", DependentID: "n4"},
		{PrerequisiteID: "n3", DependentID: "n4"},
		{PrerequisiteID: "n3", DependentID: "n5"},
		{PrerequisiteID: "n4", DependentID: "n6"},
		{PrerequisiteID: "n5", DependentID: "n6"},
	}
	curr := &fakeCurriculum{
		concepts: map[string][]curriculum.Concept{"s": concepts},
		edges:    map[string][]curriculum.Edge{"s": edges},
	}
	scores := map[string]float64{"n1": 0.9, "n3": 0.75}
	gen := newTestGenerator(curr, scores)

	path, err := gen.Generate(context.Background(), "s", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[string]int)
	for i, id := range path.ConceptIDs() {
		if prev, dup := pos[id]; dup {
			t.Fatalf("concept %q placed twice (pos %d and %d)", id, prev, i)
		}
		pos[id] = i
	}
	g := curriculum.NewGraph(concepts, edges)
	for id, i := range pos {
		for _, p := range g.Prerequisites(id) {
			if scores[p] >= DefaultThreshold {
				continue
			}
			j, placed := pos[p]
			if !placed {
				t.Errorf("%q placed but unmastered prerequisite %q is not in the path", id, p)
			} else if j >= i {
				t.Errorf("%q (pos %d) placed before prerequisite %q (pos %d)", id, i, p, j)
			}
		}
	}
	if path.TotalEstimatedMins != 10*len(path.Steps) {
		t.Errorf("total minutes: got %d, want %d", path.TotalEstimatedMins, 10*len(path.Steps))
	}
}

func TestGenerate_StepMasteryAnnotatedFromSnapshot(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.8})

	path, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range path.Steps {
		want := 0.0
		if s.Concept.ID == "A" {
			want = 0.8
		}
		if s.Mastery != want {
			t.Errorf("step %q mastery: got %g, want %g", s.Concept.ID, s.Mastery, want)
		}
	}
}

func TestPrerequisiteClosure(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)

	closure, err := gen.PrerequisiteClosure(context.Background(), "D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(closure, []string{"A", "B", "C"}) {
		t.Errorf("closure: got %v, want [A B C]", closure)
	}

	closure, err = gen.PrerequisiteClosure(context.Background(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closure) != 0 {
		t.Errorf("closure of root: got %v, want empty", closure)
	}
}

func TestPrerequisiteClosure_UnknownConcept(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)

	closure, err := gen.PrerequisiteClosure(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(closure) != 0 {
		t.Errorf("got %v, want empty closure", closure)
	}
}

func TestCanAccess(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.8, "B": 0.3})

	tests := []struct {
		concept string
		allowed bool
		missing []string
	}{
		{"A", true, nil},
		{"B", true, nil}, // A is mastered
		{"D", false, []string{"B", "C"}},
		{"nope", true, nil}, // unknown concept never locks
	}
	for _, tt := range tests {
		access, err := gen.CanAccess(context.Background(), tt.concept, "learner-1", DefaultThreshold)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.concept, err)
		}
		if access.Allowed != tt.allowed {
			t.Errorf("%s: allowed = %v, want %v", tt.concept, access.Allowed, tt.allowed)
		}
		if !slices.Equal(access.Missing, tt.missing) {
			t.Errorf("%s: missing = %v, want %v", tt.concept, access.Missing, tt.missing)
		}
	}
}

func TestCanAccess_InvalidThreshold(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), nil)
	_, err := gen.CanAccess(context.Background(), "D", "learner-1", 1.5)
	var invalid *ErrInvalidThreshold
	if !errors.As(err, &invalid) {
		t.Errorf("got %v, want ErrInvalidThreshold", err)
	}
}

func TestGenerate_ConcurrentCallsAreIndependent(t *testing.T) {
	gen := newTestGenerator(diamondSubject(), map[string]float64{"A": 0.8})

	done := make(chan *Path, 8)
	for i := 0; i < 8; i++ {
		go func() {
			p, err := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			done <- p
		}()
	}
	want := []string{"A", "B", "C", "D"}
	for i := 0; i < 8; i++ {
		p := <-done
		if p == nil {
			continue
		}
		if got := p.ConceptIDs(); !slices.Equal(got, want) {
			t.Errorf("concurrent call: got %v, want %v", got, want)
		}
	}
}

func ExampleGenerator_Generate() {
	curr := diamondSubject()
	gen := NewGenerator(curr, &fakeMastery{scores: map[string]map[string]float64{
		"learner-1": {"A": 0.8},
	}})
	path, _ := gen.Generate(context.Background(), "algebra", "learner-1", DefaultThreshold)
	fmt.Println(path.ConceptIDs())
	// Output: [A B C D]
}
