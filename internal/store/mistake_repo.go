package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Yashshokeen-11/ALP/ent"
	"github.com/Yashshokeen-11/ALP/ent/mistakerecord"
	"github.com/Yashshokeen-11/ALP/internal/mistakes"
)

// mistakeRepo implements MistakeRepo using the ent client.
type mistakeRepo struct {
	client *ent.Client
}

func (r *mistakeRepo) Record(ctx context.Context, learnerID, conceptID string, kind mistakes.Kind, at time.Time) error {
	existing, err := r.client.MistakeRecord.Query().
		Where(
			mistakerecord.LearnerID(learnerID),
			mistakerecord.ConceptID(conceptID),
			mistakerecord.Kind(string(kind)),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.MistakeRecord.Create().
			SetLearnerID(learnerID).
			SetConceptID(conceptID).
			SetKind(string(kind)).
			SetCount(1).
			SetLastSeen(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mistake record: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query mistake record: %w", err)
	}

	_, err = existing.Update().
		AddCount(1).
		SetLastSeen(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mistake record: %w", err)
	}
	return nil
}

func (r *mistakeRepo) ForLearner(ctx context.Context, learnerID string) ([]mistakes.Record, error) {
	rows, err := r.client.MistakeRecord.Query().
		Where(mistakerecord.LearnerID(learnerID)).
		Order(ent.Asc(mistakerecord.FieldConceptID), ent.Asc(mistakerecord.FieldKind)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistake records: %w", err)
	}

	records := make([]mistakes.Record, len(rows))
	for i, row := range rows {
		records[i] = mistakes.Record{
			LearnerID: row.LearnerID,
			ConceptID: row.ConceptID,
			Kind:      mistakes.Kind(row.Kind),
			Count:     row.Count,
			LastSeen:  row.LastSeen,
		}
	}
	return records, nil
}

func (r *mistakeRepo) DeleteLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.MistakeRecord.Delete().
		Where(mistakerecord.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete mistake records: %w", err)
	}
	return nil
}
