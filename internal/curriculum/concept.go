package curriculum

// Concept is a single teachable unit within a subject.
type Concept struct {
	ID            string
	SubjectID     string
	Title         string
	Difficulty    float64 // unbounded, conventionally 0-5
	EstimatedMins int
}

// Edge is a directed prerequisite relation: the prerequisite concept
// must be satisfied before the dependent concept is attempted.
type Edge struct {
	PrerequisiteID string
	DependentID    string
}
