package store

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/ent"
	"github.com/Yashshokeen-11/ALP/ent/masteryfact"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, learnerID, conceptID string) (float64, bool, error) {
	row, err := r.client.MasteryFact.Query().
		Where(
			masteryfact.LearnerID(learnerID),
			masteryfact.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query mastery fact: %w", err)
	}
	return row.Score, true, nil
}

func (r *masteryRepo) Upsert(ctx context.Context, learnerID, conceptID string, score float64) error {
	existing, err := r.client.MasteryFact.Query().
		Where(
			masteryfact.LearnerID(learnerID),
			masteryfact.ConceptID(conceptID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.MasteryFact.Create().
			SetLearnerID(learnerID).
			SetConceptID(conceptID).
			SetScore(score).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery fact: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query mastery fact: %w", err)
	}

	_, err = existing.Update().
		SetScore(score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery fact: %w", err)
	}
	return nil
}

func (r *masteryRepo) ForLearner(ctx context.Context, learnerID string, conceptIDs []string) (map[string]float64, error) {
	query := r.client.MasteryFact.Query().
		Where(masteryfact.LearnerID(learnerID))
	if len(conceptIDs) > 0 {
		query = query.Where(masteryfact.ConceptIDIn(conceptIDs...))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery facts: %w", err)
	}

	scores := make(map[string]float64, len(rows))
	for _, row := range rows {
		scores[row.ConceptID] = row.Score
	}
	return scores, nil
}

func (r *masteryRepo) DeleteLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.MasteryFact.Delete().
		Where(masteryfact.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete mastery facts: %w", err)
	}
	return nil
}
