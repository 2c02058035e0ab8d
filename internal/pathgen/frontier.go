package pathgen

import "github.com/Yashshokeen-11/ALP/internal/curriculum"

// Priority weights. The linear combination and its sign convention are
// part of the product contract; do not retune without product guidance.
const (
	masteryWeight    = 0.3
	difficultyWeight = 0.2
	missingWeight    = 0.5
)

// PriorityScore ranks an eligible concept for scheduling; higher is
// scheduled sooner. Low mastery leaves more room to learn, difficulty
// pushes a concept later, and each missing prerequisite pushes it
// later still. Missing is zero for genuine frontier candidates.
func PriorityScore(mastery, difficulty float64, missing int) float64 {
	return (1-mastery)*masteryWeight - difficulty*difficultyWeight - float64(missing)*missingWeight
}

// frontier is a max-heap of eligible concepts keyed by priority score,
// with ties broken by lexical concept ID so pop order is reproducible.
type frontier []frontierItem

type frontierItem struct {
	concept  curriculum.Concept
	priority float64
}

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority > f[j].priority
	}
	return f[i].concept.ID < f[j].concept.ID
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
