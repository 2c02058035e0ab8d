package review

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/pathgen"
)

// ErrNotTracked reports a review operation on a concept that never entered
// the review ladder.
var ErrNotTracked = errors.New("concept is not tracked for review")

// Repo is the persistence surface the scheduler reads and writes.
type Repo interface {
	// Get returns the review state for one pair. The boolean is false when
	// the pair is not tracked.
	Get(ctx context.Context, learnerID, conceptID string) (State, bool, error)
	// ForLearner returns every tracked state for a learner.
	ForLearner(ctx context.Context, learnerID string) ([]State, error)
	// Upsert inserts or replaces a state keyed by (learner, concept).
	Upsert(ctx context.Context, st State) error
}

// Reorderer reorders a generated path around a set of priority concepts.
// *pathgen.Generator satisfies it.
type Reorderer interface {
	Reorder(ctx context.Context, path *pathgen.Path, priorityIDs []string) (*pathgen.Path, error)
}

// Scheduler manages expanding-interval review scheduling on top of a Repo.
type Scheduler struct {
	repo Repo
}

// NewScheduler returns a scheduler backed by the given repo.
func NewScheduler(repo Repo) *Scheduler {
	return &Scheduler{repo: repo}
}

// Track starts review tracking for a concept that just crossed the mastery
// threshold. Already-tracked concepts are left untouched; use Retrack to
// restart a ladder.
func (s *Scheduler) Track(ctx context.Context, learnerID, conceptID string, now time.Time) error {
	_, ok, err := s.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		return fmt.Errorf("fetching review state: %w", err)
	}
	if ok {
		return nil
	}
	return s.repo.Upsert(ctx, newState(learnerID, conceptID, now))
}

// Retrack resets a concept's ladder back to stage zero, dropping any
// graduation. Used when mastery falls below the threshold and is then
// re-earned.
func (s *Scheduler) Retrack(ctx context.Context, learnerID, conceptID string, now time.Time) error {
	return s.repo.Upsert(ctx, newState(learnerID, conceptID, now))
}

func newState(learnerID, conceptID string, now time.Time) State {
	return State{
		LearnerID:    learnerID,
		ConceptID:    conceptID,
		Stage:        0,
		NextReviewAt: now.AddDate(0, 0, BaseIntervals[0]),
		LastReviewAt: now,
	}
}

// Due returns the concepts due for review at now, most overdue first with
// concept ID as the tie-break.
func (s *Scheduler) Due(ctx context.Context, learnerID string, now time.Time) ([]string, error) {
	states, err := s.repo.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetching review states: %w", err)
	}

	type dueConcept struct {
		id      string
		overdue float64
	}
	var due []dueConcept
	for i := range states {
		st := &states[i]
		if st.IsDue(now) {
			due = append(due, dueConcept{id: st.ConceptID, overdue: st.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids, nil
}

// Record updates the review schedule after a review answer and returns the
// new state. A correct answer advances the ladder; an incorrect one resets
// the consecutive-hit count and leaves the concept due.
func (s *Scheduler) Record(ctx context.Context, learnerID, conceptID string, correct bool, now time.Time) (State, error) {
	st, ok, err := s.repo.Get(ctx, learnerID, conceptID)
	if err != nil {
		return State{}, fmt.Errorf("fetching review state: %w", err)
	}
	if !ok {
		return State{}, fmt.Errorf("concept %q: %w", conceptID, ErrNotTracked)
	}

	st.LastReviewAt = now

	if correct {
		st.ConsecutiveHits++
		if !st.Graduated {
			st.Stage++
			if st.ConsecutiveHits >= GraduationHits {
				st.Graduated = true
			}
		}
		st.NextReviewAt = now.AddDate(0, 0, st.IntervalDays())
	} else {
		st.ConsecutiveHits = 0
	}

	if err := s.repo.Upsert(ctx, st); err != nil {
		return State{}, fmt.Errorf("saving review state: %w", err)
	}
	return st, nil
}

// States returns every tracked state for a learner, sorted by concept ID.
func (s *Scheduler) States(ctx context.Context, learnerID string) ([]State, error) {
	states, err := s.repo.ForLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("fetching review states: %w", err)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].ConceptID < states[j].ConceptID
	})
	return states, nil
}

// Adapt reorders a generated path so concepts due for review come as early
// as their prerequisites allow. With nothing due the path is returned
// unchanged.
func (s *Scheduler) Adapt(ctx context.Context, r Reorderer, path *pathgen.Path, now time.Time) (*pathgen.Path, error) {
	if path == nil {
		return nil, nil
	}
	due, err := s.Due(ctx, path.LearnerID, now)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return path, nil
	}
	return r.Reorder(ctx, path, due)
}
