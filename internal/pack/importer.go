package pack

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

// Store is the persistence surface the importer writes through.
type Store interface {
	UpsertConcept(ctx context.Context, c curriculum.Concept) error
	UpsertEdge(ctx context.Context, subjectID string, e curriculum.Edge) error
	DeleteSubject(ctx context.Context, subjectID string) error
}

// Result summarizes one completed import.
type Result struct {
	BatchID  string
	Subjects int
	Concepts int
	Edges    int
}

// Importer writes validated pack contents into the store.
type Importer struct {
	store Store
}

// NewImporter returns an importer over the given store.
func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

// Import upserts every subject in the pack. With replace set, each
// subject's existing concepts and edges are deleted first, so the pack
// becomes the subject's complete curriculum.
func (im *Importer) Import(ctx context.Context, f *File, replace bool) (*Result, error) {
	res := &Result{BatchID: uuid.NewString()}

	for i := range f.Subjects {
		s := &f.Subjects[i]
		if replace {
			if err := im.store.DeleteSubject(ctx, s.ID); err != nil {
				return nil, fmt.Errorf("clearing subject %q: %w", s.ID, err)
			}
		}

		concepts, edges := s.Curriculum()
		for _, c := range concepts {
			if err := im.store.UpsertConcept(ctx, c); err != nil {
				return nil, fmt.Errorf("importing concept %q: %w", c.ID, err)
			}
		}
		for _, e := range edges {
			if err := im.store.UpsertEdge(ctx, s.ID, e); err != nil {
				return nil, fmt.Errorf("importing edge %s -> %s: %w", e.PrerequisiteID, e.DependentID, err)
			}
		}

		res.Subjects++
		res.Concepts += len(concepts)
		res.Edges += len(edges)
	}

	return res, nil
}
