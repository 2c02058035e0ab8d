package review

import (
	"testing"
	"time"
)

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	before := &State{NextReviewAt: now.Add(24 * time.Hour)}
	if before.IsDue(now) {
		t.Error("expected not due before the scheduled time")
	}
	exact := &State{NextReviewAt: now}
	if !exact.IsDue(now) {
		t.Error("expected due at the scheduled time")
	}
	after := &State{NextReviewAt: now.Add(-48 * time.Hour)}
	if !after.IsDue(now) {
		t.Error("expected due past the scheduled time")
	}
}

func TestOverdueDays_NotDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := &State{NextReviewAt: now.Add(48 * time.Hour)}
	if got := st.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays() = %f, want 0", got)
	}
}

func TestOverdueDays_ThreeDaysOverdue(t *testing.T) {
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := due.Add(3 * 24 * time.Hour)
	st := &State{NextReviewAt: due}
	got := st.OverdueDays(now)
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
}

func TestIntervalDays_EachStage(t *testing.T) {
	tests := []struct {
		stage    int
		expected int
	}{
		{0, 1},
		{1, 3},
		{2, 7},
		{3, 14},
		{4, 30},
		{5, 60},
	}
	for _, tt := range tests {
		st := &State{Stage: tt.stage}
		if got := st.IntervalDays(); got != tt.expected {
			t.Errorf("Stage %d: IntervalDays() = %d, want %d", tt.stage, got, tt.expected)
		}
	}
}

func TestIntervalDays_BeyondMaxStage(t *testing.T) {
	st := &State{Stage: 10}
	if got := st.IntervalDays(); got != 60 {
		t.Errorf("Stage 10: IntervalDays() = %d, want 60", got)
	}
}

func TestIntervalDays_Graduated(t *testing.T) {
	st := &State{Stage: 6, Graduated: true}
	if got := st.IntervalDays(); got != 90 {
		t.Errorf("Graduated: IntervalDays() = %d, want 90", got)
	}
}

func TestStatus_NotDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := &State{Stage: 2, NextReviewAt: now.Add(5 * 24 * time.Hour)}
	if got := st.Status(now); got != StatusNotDue {
		t.Errorf("Status() = %q, want %q", got, StatusNotDue)
	}
}

func TestStatus_Due_WithinGrace(t *testing.T) {
	// Stage 2 (7-day interval), 1 day overdue, grace is 3.5 days.
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := due.Add(1 * 24 * time.Hour)
	st := &State{Stage: 2, NextReviewAt: due}
	if got := st.Status(now); got != StatusDue {
		t.Errorf("Status() = %q, want %q", got, StatusDue)
	}
}

func TestStatus_Overdue_PastGrace(t *testing.T) {
	// Stage 2 (7-day interval), 5 days overdue, grace is 3.5 days.
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := due.Add(5 * 24 * time.Hour)
	st := &State{Stage: 2, NextReviewAt: due}
	if got := st.Status(now); got != StatusOverdue {
		t.Errorf("Status() = %q, want %q", got, StatusOverdue)
	}
}

func TestStatus_Graduated_NotDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := &State{Stage: 6, Graduated: true, NextReviewAt: now.Add(30 * 24 * time.Hour)}
	if got := st.Status(now); got != StatusGraduated {
		t.Errorf("Status() = %q, want %q", got, StatusGraduated)
	}
}

func TestStatus_Graduated_Due(t *testing.T) {
	// Graduated but due within the 45-day grace window still reads as due.
	due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := due.Add(10 * 24 * time.Hour)
	st := &State{Stage: 6, Graduated: true, NextReviewAt: due}
	if got := st.Status(now); got != StatusDue {
		t.Errorf("Status() = %q, want %q", got, StatusDue)
	}
}

func TestDaysUntil_Future(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := &State{NextReviewAt: now.Add(108 * time.Hour)} // 4.5 days out
	if got := st.DaysUntil(now); got != 5 {
		t.Errorf("DaysUntil() = %d, want 5", got)
	}
}

func TestDaysUntil_AlreadyDue(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	st := &State{NextReviewAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	if got := st.DaysUntil(now); got != 0 {
		t.Errorf("DaysUntil() = %d, want 0", got)
	}
}

func TestBaseIntervals_Values(t *testing.T) {
	expected := []int{1, 3, 7, 14, 30, 60}
	if len(BaseIntervals) != len(expected) {
		t.Fatalf("expected %d base intervals, got %d", len(expected), len(BaseIntervals))
	}
	for i, v := range expected {
		if BaseIntervals[i] != v {
			t.Errorf("BaseIntervals[%d] = %d, want %d", i, BaseIntervals[i], v)
		}
	}
}
