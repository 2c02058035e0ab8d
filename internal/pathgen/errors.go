package pathgen

import "fmt"

// ErrInvalidThreshold indicates a mastery threshold outside [0,1].
// The call is rejected synchronously with no partial result.
type ErrInvalidThreshold struct {
	Threshold float64
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("mastery threshold must be in [0,1], got %g", e.Threshold)
}

// ErrDependency indicates a collaborator read failed before the pure
// computation could begin. The scheduler never retries; the caller owns
// retry policy.
type ErrDependency struct {
	Component string // "concepts", "edges", "mastery", "subject"
	Err       error
}

func (e *ErrDependency) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Component, e.Err)
}

func (e *ErrDependency) Unwrap() error { return e.Err }
