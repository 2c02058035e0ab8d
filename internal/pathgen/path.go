package pathgen

import "github.com/Yashshokeen-11/ALP/internal/curriculum"

// DefaultThreshold is the mastery score at which a prerequisite counts
// as satisfied unless the caller overrides it.
const DefaultThreshold = 0.7

// Step is one concept in a generated path, annotated with the
// learner's mastery score at snapshot time.
type Step struct {
	Concept curriculum.Concept
	Mastery float64
}

// Path is the scheduler output for one (learner, subject) pair: the
// prerequisite-respecting concept order, the total estimated minutes
// over the ordered concepts only, and the IDs of prerequisites that
// block unplaced concepts.
type Path struct {
	SubjectID          string
	LearnerID          string
	Threshold          float64
	Steps              []Step
	TotalEstimatedMins int
	Gaps               []string
}

// ConceptIDs returns the ordered concept IDs of the path.
func (p *Path) ConceptIDs() []string {
	ids := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		ids[i] = s.Concept.ID
	}
	return ids
}
