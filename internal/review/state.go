package review

import "time"

// State holds the review schedule for a single (learner, concept) pair.
type State struct {
	LearnerID       string    `json:"learner_id"`
	ConceptID       string    `json:"concept_id"`
	Stage           int       `json:"stage"`
	NextReviewAt    time.Time `json:"next_review_at"`
	ConsecutiveHits int       `json:"consecutive_hits"`
	Graduated       bool      `json:"graduated"`
	LastReviewAt    time.Time `json:"last_review_at"`
}

// IsDue returns true if the concept is due for review (at or past the
// scheduled time).
func (s *State) IsDue(now time.Time) bool {
	return !now.Before(s.NextReviewAt)
}

// OverdueDays returns how many days past due the concept is. Returns 0 if
// not yet due.
func (s *State) OverdueDays(now time.Time) float64 {
	if now.Before(s.NextReviewAt) {
		return 0
	}
	return now.Sub(s.NextReviewAt).Hours() / 24.0
}

// IntervalDays returns the current review interval in days.
func (s *State) IntervalDays() int {
	if s.Graduated {
		return GraduatedIntervalDays
	}
	if s.Stage >= len(BaseIntervals) {
		return BaseIntervals[len(BaseIntervals)-1]
	}
	return BaseIntervals[s.Stage]
}

// pastGrace returns true once the concept is overdue by more than half its
// current interval.
func (s *State) pastGrace(now time.Time) bool {
	if !s.IsDue(now) {
		return false
	}
	return s.OverdueDays(now) > float64(s.IntervalDays())*0.5
}

// Status describes a concept's review position for display.
type Status string

const (
	StatusNotDue    Status = "not_due"
	StatusDue       Status = "due"
	StatusOverdue   Status = "overdue"
	StatusGraduated Status = "graduated"
)

// Status returns the review status for UI display.
func (s *State) Status(now time.Time) Status {
	if s.Graduated && !s.IsDue(now) {
		return StatusGraduated
	}
	if s.pastGrace(now) {
		return StatusOverdue
	}
	if s.IsDue(now) {
		return StatusDue
	}
	return StatusNotDue
}

// DaysUntil returns the number of days until the next review.
// Returns 0 if already due.
func (s *State) DaysUntil(now time.Time) int {
	if s.IsDue(now) {
		return 0
	}
	return int(s.NextReviewAt.Sub(now).Hours()/24.0) + 1
}
