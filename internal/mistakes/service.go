package mistakes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Record is the aggregated tally for one (learner, concept, kind) triple.
type Record struct {
	LearnerID string    `json:"learner_id"`
	ConceptID string    `json:"concept_id"`
	Kind      Kind      `json:"kind"`
	Count     int       `json:"count"`
	LastSeen  time.Time `json:"last_seen"`
}

// Repo is the persistence surface for mistake tallies.
type Repo interface {
	// Record increments the tally for the triple and stamps last-seen.
	Record(ctx context.Context, learnerID, conceptID string, kind Kind, at time.Time) error
	// ForLearner returns every tally for a learner.
	ForLearner(ctx context.Context, learnerID string) ([]Record, error)
}

// Service validates and records mistake observations over a Repo.
type Service struct {
	repo Repo
}

// NewService returns a service backed by the given repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Record tallies one observed mistake.
func (s *Service) Record(ctx context.Context, learnerID, conceptID string, kind Kind, at time.Time) error {
	if learnerID == "" {
		return errors.New("learner id is empty")
	}
	if conceptID == "" {
		return errors.New("concept id is empty")
	}
	if !kind.Valid() {
		return fmt.Errorf("unknown mistake kind %q (valid: %s)", kind, kindList())
	}
	if err := s.repo.Record(ctx, learnerID, conceptID, kind, at); err != nil {
		return fmt.Errorf("recording mistake: %w", err)
	}
	return nil
}

// ForLearner returns a learner's tallies sorted by concept ID, then kind.
func (s *Service) ForLearner(ctx context.Context, learnerID string) ([]Record, error) {
	recs, err := s.repo.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetching mistakes: %w", err)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].ConceptID != recs[j].ConceptID {
			return recs[i].ConceptID < recs[j].ConceptID
		}
		return recs[i].Kind < recs[j].Kind
	})
	return recs, nil
}

// CountsByKind aggregates a learner's tallies across concepts.
func (s *Service) CountsByKind(ctx context.Context, learnerID string) (map[Kind]int, error) {
	recs, err := s.repo.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetching mistakes: %w", err)
	}
	counts := make(map[Kind]int)
	for _, r := range recs {
		counts[r.Kind] += r.Count
	}
	return counts, nil
}
