package pathgen

import (
	"container/heap"
	"math"
	"testing"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
)

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		name       string
		mastery    float64
		difficulty float64
		missing    int
		want       float64
	}{
		{"untouched easy concept", 0, 0, 0, 0.3},
		{"fully mastered", 1, 0, 0, 0},
		{"difficulty pushes later", 0, 2, 0, -0.1},
		{"partial mastery", 0.5, 1, 0, -0.05},
		{"each missing prerequisite costs half", 0, 0, 1, -0.2},
		{"combined", 0.3, 2, 1, -0.69},
	}
	for _, tt := range tests {
		got := PriorityScore(tt.mastery, tt.difficulty, tt.missing)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: PriorityScore(%g, %g, %d) = %g, want %g",
				tt.name, tt.mastery, tt.difficulty, tt.missing, got, tt.want)
		}
	}
}

func TestPriorityScore_RewardsLowMastery(t *testing.T) {
	low := PriorityScore(0.1, 1, 0)
	high := PriorityScore(0.6, 1, 0)
	if low <= high {
		t.Errorf("lower mastery should score higher: %g vs %g", low, high)
	}
}

func TestFrontier_PopsByPriorityThenID(t *testing.T) {
	f := &frontier{}
	push := func(id string, p float64) {
		heap.Push(f, frontierItem{concept: curriculum.Concept{ID: id}, priority: p})
	}
	push("delta", 0.1)
	push("bravo", 0.25)
	push("charlie", 0.25)
	push("alpha", -0.3)
	push("echo", 0.25)

	want := []string{"bravo", "charlie", "echo", "delta", "alpha"}
	for i, id := range want {
		item := heap.Pop(f).(frontierItem)
		if item.concept.ID != id {
			t.Errorf("pop %d: got %q, want %q", i, item.concept.ID, id)
		}
	}
}
