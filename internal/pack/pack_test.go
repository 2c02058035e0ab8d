package pack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

func validDoc() string {
	return `{
		"schema_version": "1.0.0",
		"subjects": [
			{
				"id": "algebra",
				"title": "Algebra I",
				"concepts": [
					{"id": "alg-expressions", "title": "Expressions", "difficulty": 1, "estimated_mins": 10},
					{"id": "alg-linear-eq", "title": "Linear equations", "difficulty": 2, "estimated_mins": 20}
				],
				"edges": [
					{"prerequisite": "alg-expressions", "dependent": "alg-linear-eq"}
				]
			}
		]
	}`
}

func TestParse_ValidPack(t *testing.T) {
	f, err := Parse([]byte(validDoc()))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", f.SchemaVersion)
	require.Len(t, f.Subjects, 1)
	s := f.Subjects[0]
	assert.Equal(t, "algebra", s.ID)
	assert.Equal(t, "Algebra I", s.Title)
	assert.Len(t, s.Concepts, 2)
	assert.Len(t, s.Edges, 1)

	concepts, edges := s.Curriculum()
	require.Len(t, concepts, 2)
	assert.Equal(t, "algebra", concepts[0].SubjectID)
	assert.Equal(t, curriculum.Edge{PrerequisiteID: "alg-expressions", DependentID: "alg-linear-eq"}, edges[0])
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not json",
			doc:  `{"schema_version": `,
		},
		{
			name: "missing schema_version",
			doc:  `{"subjects": [{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}]}]}`,
		},
		{
			name: "empty subjects",
			doc:  `{"schema_version": "1.0.0", "subjects": []}`,
		},
		{
			name: "concept missing title",
			doc:  `{"schema_version": "1.0.0", "subjects": [{"id": "s", "concepts": [{"id": "a", "estimated_mins": 5}]}]}`,
		},
		{
			name: "zero estimated_mins",
			doc:  `{"schema_version": "1.0.0", "subjects": [{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 0}]}]}`,
		},
		{
			name: "edge missing dependent",
			doc:  `{"schema_version": "1.0.0", "subjects": [{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}], "edges": [{"prerequisite": "a"}]}]}`,
		},
		{
			name: "unknown top-level field",
			doc:  `{"schema_version": "1.0.0", "extra": true, "subjects": [{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}]}]}`,
		},
		{
			name: "malformed version string",
			doc:  `{"schema_version": "latest", "subjects": [{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestParse_VersionGate(t *testing.T) {
	doc := func(version string) string {
		return fmt.Sprintf(`{
			"schema_version": %q,
			"subjects": [{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}]}]
		}`, version)
	}

	tests := []struct {
		version string
		wantErr bool
	}{
		{"1.0.0", false},
		{"v1.2.3", false},
		{"1.9.0", false},
		{"2.0.0", true},
		{"0.9.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			_, err := Parse([]byte(doc(tt.version)))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not supported")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParse_CycleRejected(t *testing.T) {
	doc := `{
		"schema_version": "1.0.0",
		"subjects": [{
			"id": "s",
			"concepts": [
				{"id": "a", "title": "A", "estimated_mins": 5},
				{"id": "b", "title": "B", "estimated_mins": 5}
			],
			"edges": [
				{"prerequisite": "a", "dependent": "b"},
				{"prerequisite": "b", "dependent": "a"}
			]
		}]
	}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
	assert.Contains(t, err.Error(), `subject "s"`)
}

func TestParse_DanglingEdgeRejected(t *testing.T) {
	doc := `{
		"schema_version": "1.0.0",
		"subjects": [{
			"id": "s",
			"concepts": [{"id": "a", "title": "A", "estimated_mins": 5}],
			"edges": [{"prerequisite": "ghost", "dependent": "a"}]
		}]
	}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestParse_DuplicateSubject(t *testing.T) {
	doc := `{
		"schema_version": "1.0.0",
		"subjects": [
			{"id": "s", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}]},
			{"id": "s", "concepts": [{"id": "b", "title": "B", "estimated_mins": 5}]}
		]
	}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate subject")
}

func TestParse_DuplicateConceptAcrossSubjects(t *testing.T) {
	doc := `{
		"schema_version": "1.0.0",
		"subjects": [
			{"id": "s1", "concepts": [{"id": "a", "title": "A", "estimated_mins": 5}]},
			{"id": "s2", "concepts": [{"id": "a", "title": "A again", "estimated_mins": 5}]}
		]
	}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `concept "a"`)
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "algebra.json")
		require.NoError(t, os.WriteFile(path, []byte(validDoc()), 0o644))

		f, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, f.Subjects, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("invalid file names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})
}

// fakeStore records importer calls in order.
type fakeStore struct {
	ops      []string
	concepts []curriculum.Concept
	edges    []curriculum.Edge
	failOn   string
}

func (f *fakeStore) UpsertConcept(_ context.Context, c curriculum.Concept) error {
	if f.failOn == "concept" {
		return errors.New("store down")
	}
	f.ops = append(f.ops, "concept:"+c.ID)
	f.concepts = append(f.concepts, c)
	return nil
}

func (f *fakeStore) UpsertEdge(_ context.Context, subjectID string, e curriculum.Edge) error {
	if f.failOn == "edge" {
		return errors.New("store down")
	}
	f.ops = append(f.ops, "edge:"+e.PrerequisiteID+">"+e.DependentID)
	f.edges = append(f.edges, e)
	return nil
}

func (f *fakeStore) DeleteSubject(_ context.Context, subjectID string) error {
	if f.failOn == "delete" {
		return errors.New("store down")
	}
	f.ops = append(f.ops, "delete:"+subjectID)
	return nil
}

func TestImport_UpsertsEverything(t *testing.T) {
	f, err := Parse([]byte(validDoc()))
	require.NoError(t, err)

	store := &fakeStore{}
	res, err := NewImporter(store).Import(context.Background(), f, false)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Subjects)
	assert.Equal(t, 2, res.Concepts)
	assert.Equal(t, 1, res.Edges)
	_, err = uuid.Parse(res.BatchID)
	assert.NoError(t, err, "batch ID should be a UUID")

	require.Len(t, store.concepts, 2)
	assert.Equal(t, "algebra", store.concepts[0].SubjectID)
	require.Len(t, store.edges, 1)
}

func TestImport_ReplaceClearsSubjectFirst(t *testing.T) {
	f, err := Parse([]byte(validDoc()))
	require.NoError(t, err)

	store := &fakeStore{}
	_, err = NewImporter(store).Import(context.Background(), f, true)
	require.NoError(t, err)

	require.NotEmpty(t, store.ops)
	assert.Equal(t, "delete:algebra", store.ops[0], "replace must clear before writing")
}

func TestImport_WithoutReplaceDoesNotDelete(t *testing.T) {
	f, err := Parse([]byte(validDoc()))
	require.NoError(t, err)

	store := &fakeStore{}
	_, err = NewImporter(store).Import(context.Background(), f, false)
	require.NoError(t, err)

	for _, op := range store.ops {
		assert.NotContains(t, op, "delete:")
	}
}

func TestImport_StoreFailure(t *testing.T) {
	f, err := Parse([]byte(validDoc()))
	require.NoError(t, err)

	for _, failOn := range []string{"concept", "edge"} {
		t.Run(failOn, func(t *testing.T) {
			store := &fakeStore{failOn: failOn}
			_, err := NewImporter(store).Import(context.Background(), f, false)
			require.Error(t, err)
		})
	}
}
