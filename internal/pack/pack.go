// Package pack loads curriculum pack files: the JSON documents that carry
// subjects, concepts, and prerequisite edges into the store.
package pack

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

// SupportedSchemaMajor is the pack format major version this build reads.
const SupportedSchemaMajor = "v1"

// File is a decoded curriculum pack.
type File struct {
	SchemaVersion string    `json:"schema_version"`
	Subjects      []Subject `json:"subjects"`
}

// Subject groups the concepts and prerequisite edges of one subject.
type Subject struct {
	ID       string    `json:"id"`
	Title    string    `json:"title,omitempty"`
	Concepts []Concept `json:"concepts"`
	Edges    []Edge    `json:"edges,omitempty"`
}

// Concept is the pack-file form of a teachable unit.
type Concept struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Difficulty    float64 `json:"difficulty,omitempty"`
	EstimatedMins int     `json:"estimated_mins"`
}

// Edge is a directed prerequisite relationship inside one subject.
type Edge struct {
	Prerequisite string `json:"prerequisite"`
	Dependent    string `json:"dependent"`
}

// Curriculum converts the subject into the typed model, stamping the
// subject ID onto every concept.
func (s *Subject) Curriculum() ([]curriculum.Concept, []curriculum.Edge) {
	concepts := make([]curriculum.Concept, len(s.Concepts))
	for i, c := range s.Concepts {
		concepts[i] = curriculum.Concept{
			ID:            c.ID,
			SubjectID:     s.ID,
			Title:         c.Title,
			Difficulty:    c.Difficulty,
			EstimatedMins: c.EstimatedMins,
		}
	}
	edges := make([]curriculum.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = curriculum.Edge{PrerequisiteID: e.Prerequisite, DependentID: e.Dependent}
	}
	return concepts, edges
}

// Load reads and parses a pack file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// Parse validates a pack document against the embedded schema, decodes it,
// gates the format version, and runs curriculum validation per subject.
func Parse(data []byte) (*File, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}

	if err := checkSchemaVersion(f.SchemaVersion); err != nil {
		return nil, err
	}

	subjects := make(map[string]bool, len(f.Subjects))
	owner := make(map[string]string) // concept ID -> subject ID
	for i := range f.Subjects {
		s := &f.Subjects[i]
		if subjects[s.ID] {
			return nil, fmt.Errorf("duplicate subject %q", s.ID)
		}
		subjects[s.ID] = true

		for _, c := range s.Concepts {
			if other, ok := owner[c.ID]; ok {
				return nil, fmt.Errorf("concept %q appears in both subject %q and subject %q", c.ID, other, s.ID)
			}
			owner[c.ID] = s.ID
		}

		concepts, edges := s.Curriculum()
		if err := curriculum.Validate(concepts, edges); err != nil {
			return nil, fmt.Errorf("subject %q: %w", s.ID, err)
		}
	}

	return &f, nil
}

// checkSchemaVersion accepts versions with or without a leading "v" and
// rejects any major version other than the supported one.
func checkSchemaVersion(v string) error {
	if v == "" {
		return errors.New("pack schema_version is empty")
	}
	canon := v
	if !strings.HasPrefix(canon, "v") {
		canon = "v" + canon
	}
	if !semver.IsValid(canon) {
		return fmt.Errorf("pack schema_version %q is not a valid semantic version", v)
	}
	if semver.Major(canon) != SupportedSchemaMajor {
		return fmt.Errorf("pack schema_version %q is not supported by this build (want major %s)", v, SupportedSchemaMajor)
	}
	return nil
}
