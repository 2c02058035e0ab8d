package store

import (
	"context"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/mistakes"
	"github.com/Yashshokeen-11/ALP/internal/review"
)

// CurriculumRepo reads and writes the concept catalog. Its read side
// satisfies pathgen.CurriculumSource; its write side is the import
// surface used by pack.Importer.
type CurriculumRepo interface {
	// Concepts lists every concept in a subject, ordered by concept ID.
	Concepts(ctx context.Context, subjectID string) ([]curriculum.Concept, error)

	// Edges lists every prerequisite edge in a subject.
	Edges(ctx context.Context, subjectID string) ([]curriculum.Edge, error)

	// SubjectOf resolves the subject a concept belongs to, or "" when the
	// concept is unknown.
	SubjectOf(ctx context.Context, conceptID string) (string, error)

	// GetConcept returns one concept by ID. The boolean is false when the
	// concept does not exist.
	GetConcept(ctx context.Context, conceptID string) (curriculum.Concept, bool, error)

	// Subjects lists every subject ID present in the catalog, sorted.
	Subjects(ctx context.Context) ([]string, error)

	// UpsertConcept inserts or replaces a concept keyed by its ID.
	UpsertConcept(ctx context.Context, c curriculum.Concept) error

	// UpsertEdge inserts an edge if it is not already present.
	UpsertEdge(ctx context.Context, subjectID string, e curriculum.Edge) error

	// DeleteSubject removes a subject's concepts and edges.
	DeleteSubject(ctx context.Context, subjectID string) error
}

// MasteryRepo persists per-learner mastery facts. It satisfies
// mastery.Repo.
type MasteryRepo interface {
	// Get returns the recorded score for one pair. The boolean is false
	// when no fact exists.
	Get(ctx context.Context, learnerID, conceptID string) (float64, bool, error)

	// Upsert inserts or replaces the score for one pair.
	Upsert(ctx context.Context, learnerID, conceptID string, score float64) error

	// ForLearner returns recorded scores keyed by concept ID. An empty
	// conceptIDs slice means every fact the learner has.
	ForLearner(ctx context.Context, learnerID string, conceptIDs []string) (map[string]float64, error)

	// DeleteLearner removes every fact owned by a learner.
	DeleteLearner(ctx context.Context, learnerID string) error
}

// ReviewRepo persists review ladder state. It satisfies review.Repo.
type ReviewRepo interface {
	Get(ctx context.Context, learnerID, conceptID string) (review.State, bool, error)
	ForLearner(ctx context.Context, learnerID string) ([]review.State, error)
	Upsert(ctx context.Context, st review.State) error
	DeleteLearner(ctx context.Context, learnerID string) error
}

// MistakeRepo persists mistake tallies. It satisfies mistakes.Repo.
type MistakeRepo interface {
	Record(ctx context.Context, learnerID, conceptID string, kind mistakes.Kind, at time.Time) error
	ForLearner(ctx context.Context, learnerID string) ([]mistakes.Record, error)
	DeleteLearner(ctx context.Context, learnerID string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// PathEventData captures one generated path for the event log.
type PathEventData struct {
	LearnerID    string
	SubjectID    string
	Threshold    float64
	ConceptCount int
	GapCount     int
	TotalMinutes int
}

// PathEventRecord is a logged path generation read back from the store.
type PathEventRecord struct {
	LearnerID    string
	SubjectID    string
	Threshold    float64
	ConceptCount int
	GapCount     int
	TotalMinutes int
	Sequence     int64
	Timestamp    time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a logged LLM request read back from the store.
type LLMRequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsageRow aggregates logged LLM requests under one key, either a
// purpose or a model ID.
type LLMUsageRow struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendPathEvent records a generated learning path.
	AppendPathEvent(ctx context.Context, data PathEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns the logged request with the given sequence
	// number, or nil if none exists.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates logged requests per purpose, sorted by key.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRow, error)

	// LLMUsageByModel aggregates logged requests per model, sorted by key.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageRow, error)

	// RecentPaths returns logged path generations, newest first. An empty
	// learnerID matches every learner.
	RecentPaths(ctx context.Context, learnerID string, limit int) ([]PathEventRecord, error)
}
