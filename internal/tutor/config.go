package tutor

// Config controls the narration calls.
type Config struct {
	// NarrateMaxTokens budgets the study-plan summary. One headline
	// plus a line per step fits comfortably.
	NarrateMaxTokens int

	// ExplainMaxTokens budgets a single concept explanation, which
	// runs longer than a plan summary.
	ExplainMaxTokens int

	// Temperature applies to both calls.
	Temperature float64
}

// DefaultConfig returns the budgets the CLI ships with.
func DefaultConfig() Config {
	return Config{
		NarrateMaxTokens: 512,
		ExplainMaxTokens: 768,
		Temperature:      0.5,
	}
}
