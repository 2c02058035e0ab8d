package store

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/ent"
	"github.com/Yashshokeen-11/ALP/ent/reviewstate"
	"github.com/Yashshokeen-11/ALP/internal/review"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Get(ctx context.Context, learnerID, conceptID string) (review.State, bool, error) {
	row, err := r.client.ReviewState.Query().
		Where(
			reviewstate.LearnerID(learnerID),
			reviewstate.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return review.State{}, false, nil
		}
		return review.State{}, false, fmt.Errorf("query review state: %w", err)
	}
	return toReviewState(row), true, nil
}

func (r *reviewRepo) ForLearner(ctx context.Context, learnerID string) ([]review.State, error) {
	rows, err := r.client.ReviewState.Query().
		Where(reviewstate.LearnerID(learnerID)).
		Order(ent.Asc(reviewstate.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review states: %w", err)
	}

	states := make([]review.State, len(rows))
	for i, row := range rows {
		states[i] = toReviewState(row)
	}
	return states, nil
}

func (r *reviewRepo) Upsert(ctx context.Context, st review.State) error {
	existing, err := r.client.ReviewState.Query().
		Where(
			reviewstate.LearnerID(st.LearnerID),
			reviewstate.ConceptID(st.ConceptID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.ReviewState.Create().
			SetLearnerID(st.LearnerID).
			SetConceptID(st.ConceptID).
			SetStage(st.Stage).
			SetNextReviewAt(st.NextReviewAt).
			SetConsecutiveHits(st.ConsecutiveHits).
			SetGraduated(st.Graduated).
			SetLastReviewAt(st.LastReviewAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create review state: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query review state: %w", err)
	}

	_, err = existing.Update().
		SetStage(st.Stage).
		SetNextReviewAt(st.NextReviewAt).
		SetConsecutiveHits(st.ConsecutiveHits).
		SetGraduated(st.Graduated).
		SetLastReviewAt(st.LastReviewAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review state: %w", err)
	}
	return nil
}

func (r *reviewRepo) DeleteLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.ReviewState.Delete().
		Where(reviewstate.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete review states: %w", err)
	}
	return nil
}

func toReviewState(row *ent.ReviewState) review.State {
	return review.State{
		LearnerID:       row.LearnerID,
		ConceptID:       row.ConceptID,
		Stage:           row.Stage,
		NextReviewAt:    row.NextReviewAt,
		ConsecutiveHits: row.ConsecutiveHits,
		Graduated:       row.Graduated,
		LastReviewAt:    row.LastReviewAt,
	}
}
