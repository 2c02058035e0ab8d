package tutor

import "github.com/Yashshokeen-11/ALP/internal/curriculum"

// Narration is a short structured study-plan summary for one generated
// learning path.
type Narration struct {
	// Headline is a one-sentence framing of the plan.
	Headline string

	// Steps carries one note per path step, in path order.
	Steps []StepNote
}

// StepNote is the narration for a single path step.
type StepNote struct {
	ConceptID     string
	Encouragement string
}

// ExplainInput is the context assembled for one concept explanation:
// the concept, the learner's standing on it, and its graph neighborhood.
type ExplainInput struct {
	Concept   curriculum.Concept
	Mastery   float64
	Threshold float64
	Prereqs   []PrereqStanding
	Unlocks   []curriculum.Concept
}

// PrereqStanding is one direct prerequisite with the learner's score.
type PrereqStanding struct {
	Concept   curriculum.Concept
	Mastery   float64
	Satisfied bool
}

// Explanation is a short structured introduction to one concept.
type Explanation struct {
	// Overview says what the concept is.
	Overview string

	// WhyNow connects the concept to what the learner already knows
	// and what it unlocks.
	WhyNow string

	// FirstSteps are concrete ways to start.
	FirstSteps []string
}
