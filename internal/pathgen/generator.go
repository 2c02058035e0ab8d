package pathgen

import (
	"context"
	"sort"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

// CurriculumSource is the read interface over the concept catalog.
// Implementations return empty results, not errors, for unknown IDs.
type CurriculumSource interface {
	// Concepts lists every concept in a subject.
	Concepts(ctx context.Context, subjectID string) ([]curriculum.Concept, error)
	// Edges lists every prerequisite edge in a subject.
	Edges(ctx context.Context, subjectID string) ([]curriculum.Edge, error)
	// SubjectOf resolves the subject a concept belongs to, or "" when
	// the concept is unknown.
	SubjectOf(ctx context.Context, conceptID string) (string, error)
}

// MasterySource is the read interface over per-learner mastery facts.
// Concepts absent from the returned map score zero.
type MasterySource interface {
	MasteryBatch(ctx context.Context, learnerID string, conceptIDs []string) (map[string]float64, error)
}

// Access reports whether a learner may open a concept directly, and
// which transitive prerequisites are still below threshold if not.
type Access struct {
	Allowed bool
	Missing []string
}

// Generator produces learning paths from curriculum and mastery
// snapshots. It holds no mutable state; one Generator may serve
// concurrent calls, each reading an independent snapshot.
type Generator struct {
	curriculum CurriculumSource
	mastery    MasterySource
}

// NewGenerator creates a Generator over the given sources.
func NewGenerator(c CurriculumSource, m MasterySource) *Generator {
	return &Generator{curriculum: c, mastery: m}
}

// Generate builds the learning path for one (learner, subject) pair.
// An unknown subject yields an empty path and an unknown learner a
// zero-mastery one; only a threshold outside [0,1] is an error.
func (g *Generator) Generate(ctx context.Context, subjectID, learnerID string, threshold float64) (*Path, error) {
	if threshold < 0 || threshold > 1 {
		return nil, &ErrInvalidThreshold{Threshold: threshold}
	}

	concepts, err := g.curriculum.Concepts(ctx, subjectID)
	if err != nil {
		return nil, &ErrDependency{Component: "concepts", Err: err}
	}
	path := &Path{SubjectID: subjectID, LearnerID: learnerID, Threshold: threshold}
	if len(concepts) == 0 {
		return path, nil
	}

	edges, err := g.curriculum.Edges(ctx, subjectID)
	if err != nil {
		return nil, &ErrDependency{Component: "edges", Err: err}
	}

	ids := make([]string, len(concepts))
	for i, c := range concepts {
		ids[i] = c.ID
	}
	mastery, err := g.mastery.MasteryBatch(ctx, learnerID, ids)
	if err != nil {
		return nil, &ErrDependency{Component: "mastery", Err: err}
	}

	graph := curriculum.NewGraph(concepts, edges)
	path.Steps, path.Gaps = schedule(graph, mastery, threshold)
	for _, s := range path.Steps {
		path.TotalEstimatedMins += s.Concept.EstimatedMins
	}
	return path, nil
}

// PrerequisiteClosure returns the sorted transitive prerequisite IDs
// of a concept. An unknown concept yields an empty set. The traversal
// terminates on cyclic data; it does not treat a cycle as an error.
func (g *Generator) PrerequisiteClosure(ctx context.Context, conceptID string) ([]string, error) {
	graph, err := g.subjectGraph(ctx, conceptID)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		return nil, nil
	}
	closure := graph.Closure(conceptID)
	ids := make([]string, 0, len(closure))
	for id := range closure {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// CanAccess reports whether every transitive prerequisite of a concept
// is at or above the threshold for the learner. Unknown concepts are
// accessible: absent data never locks a door.
func (g *Generator) CanAccess(ctx context.Context, conceptID, learnerID string, threshold float64) (*Access, error) {
	if threshold < 0 || threshold > 1 {
		return nil, &ErrInvalidThreshold{Threshold: threshold}
	}

	closure, err := g.PrerequisiteClosure(ctx, conceptID)
	if err != nil {
		return nil, err
	}
	if len(closure) == 0 {
		return &Access{Allowed: true}, nil
	}

	mastery, err := g.mastery.MasteryBatch(ctx, learnerID, closure)
	if err != nil {
		return nil, &ErrDependency{Component: "mastery", Err: err}
	}

	var missing []string
	for _, id := range closure {
		if mastery[id] < threshold {
			missing = append(missing, id)
		}
	}
	return &Access{Allowed: len(missing) == 0, Missing: missing}, nil
}

// subjectGraph builds the graph of the subject a concept belongs to,
// or nil when the concept is unknown.
func (g *Generator) subjectGraph(ctx context.Context, conceptID string) (*curriculum.Graph, error) {
	subjectID, err := g.curriculum.SubjectOf(ctx, conceptID)
	if err != nil {
		return nil, &ErrDependency{Component: "subject", Err: err}
	}
	if subjectID == "" {
		return nil, nil
	}
	concepts, err := g.curriculum.Concepts(ctx, subjectID)
	if err != nil {
		return nil, &ErrDependency{Component: "concepts", Err: err}
	}
	edges, err := g.curriculum.Edges(ctx, subjectID)
	if err != nil {
		return nil, &ErrDependency{Component: "edges", Err: err}
	}
	return curriculum.NewGraph(concepts, edges), nil
}
