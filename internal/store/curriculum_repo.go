package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Yashshokeen-11/ALP/ent"
	"github.com/Yashshokeen-11/ALP/ent/concept"
	"github.com/Yashshokeen-11/ALP/ent/prereqedge"
	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

// curriculumRepo implements CurriculumRepo using the ent client.
type curriculumRepo struct {
	client *ent.Client
}

func (r *curriculumRepo) Concepts(ctx context.Context, subjectID string) ([]curriculum.Concept, error) {
	rows, err := r.client.Concept.Query().
		Where(concept.SubjectID(subjectID)).
		Order(ent.Asc(concept.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}

	concepts := make([]curriculum.Concept, len(rows))
	for i, row := range rows {
		concepts[i] = curriculum.Concept{
			ID:            row.ConceptID,
			SubjectID:     row.SubjectID,
			Title:         row.Title,
			Difficulty:    row.Difficulty,
			EstimatedMins: row.EstimatedMins,
		}
	}
	return concepts, nil
}

func (r *curriculumRepo) Edges(ctx context.Context, subjectID string) ([]curriculum.Edge, error) {
	rows, err := r.client.PrereqEdge.Query().
		Where(prereqedge.SubjectID(subjectID)).
		Order(ent.Asc(prereqedge.FieldPrerequisiteID), ent.Asc(prereqedge.FieldDependentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query edges: %w", err)
	}

	edges := make([]curriculum.Edge, len(rows))
	for i, row := range rows {
		edges[i] = curriculum.Edge{
			PrerequisiteID: row.PrerequisiteID,
			DependentID:    row.DependentID,
		}
	}
	return edges, nil
}

func (r *curriculumRepo) SubjectOf(ctx context.Context, conceptID string) (string, error) {
	row, err := r.client.Concept.Query().
		Where(concept.ConceptID(conceptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query concept subject: %w", err)
	}
	return row.SubjectID, nil
}

func (r *curriculumRepo) GetConcept(ctx context.Context, conceptID string) (curriculum.Concept, bool, error) {
	row, err := r.client.Concept.Query().
		Where(concept.ConceptID(conceptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return curriculum.Concept{}, false, nil
		}
		return curriculum.Concept{}, false, fmt.Errorf("query concept: %w", err)
	}
	return curriculum.Concept{
		ID:            row.ConceptID,
		SubjectID:     row.SubjectID,
		Title:         row.Title,
		Difficulty:    row.Difficulty,
		EstimatedMins: row.EstimatedMins,
	}, true, nil
}

func (r *curriculumRepo) Subjects(ctx context.Context) ([]string, error) {
	ids, err := r.client.Concept.Query().
		Unique(true).
		Select(concept.FieldSubjectID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *curriculumRepo) UpsertConcept(ctx context.Context, c curriculum.Concept) error {
	existing, err := r.client.Concept.Query().
		Where(concept.ConceptID(c.ID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Concept.Create().
			SetConceptID(c.ID).
			SetSubjectID(c.SubjectID).
			SetTitle(c.Title).
			SetDifficulty(c.Difficulty).
			SetEstimatedMins(c.EstimatedMins).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create concept: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query concept: %w", err)
	}

	_, err = existing.Update().
		SetSubjectID(c.SubjectID).
		SetTitle(c.Title).
		SetDifficulty(c.Difficulty).
		SetEstimatedMins(c.EstimatedMins).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update concept: %w", err)
	}
	return nil
}

func (r *curriculumRepo) UpsertEdge(ctx context.Context, subjectID string, e curriculum.Edge) error {
	exists, err := r.client.PrereqEdge.Query().
		Where(
			prereqedge.PrerequisiteID(e.PrerequisiteID),
			prereqedge.DependentID(e.DependentID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query edge: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.PrereqEdge.Create().
		SetPrerequisiteID(e.PrerequisiteID).
		SetDependentID(e.DependentID).
		SetSubjectID(subjectID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create edge: %w", err)
	}
	return nil
}

func (r *curriculumRepo) DeleteSubject(ctx context.Context, subjectID string) error {
	if _, err := r.client.PrereqEdge.Delete().
		Where(prereqedge.SubjectID(subjectID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete edges: %w", err)
	}
	if _, err := r.client.Concept.Delete().
		Where(concept.SubjectID(subjectID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete concepts: %w", err)
	}
	return nil
}
