package mastery

import (
	"context"
)

// Repo is the persistence interface for mastery facts. Scores live in
// [0,1]; the absence of a fact reads as zero.
type Repo interface {
	Get(ctx context.Context, learnerID, conceptID string) (float64, bool, error)
	Upsert(ctx context.Context, learnerID, conceptID string, score float64) error
	ForLearner(ctx context.Context, learnerID string, conceptIDs []string) (map[string]float64, error)
}

// Service exposes the mastery read model consumed by the scheduler and
// the write path used by assessment flows.
type Service struct {
	repo Repo
}

// NewService creates a mastery service over the given repository.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Score returns the learner's mastery for one concept, zero when no
// fact is recorded.
func (s *Service) Score(ctx context.Context, learnerID, conceptID string) (float64, error) {
	score, ok, err := s.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return score, nil
}

// Set records a mastery score, clamped into [0,1].
func (s *Service) Set(ctx context.Context, learnerID, conceptID string, score float64) error {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return s.repo.Upsert(ctx, learnerID, conceptID, score)
}

// MasteryBatch returns the learner's scores for the given concepts.
// Concepts with no recorded fact are absent from the map and read as
// zero. The signature satisfies the scheduler's mastery source.
func (s *Service) MasteryBatch(ctx context.Context, learnerID string, conceptIDs []string) (map[string]float64, error) {
	return s.repo.ForLearner(ctx, learnerID, conceptIDs)
}
