package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Yashshokeen-11/ALP/internal/app"
	"github.com/Yashshokeen-11/ALP/internal/pathgen"
)

// defaultThreshold seeds every --threshold flag, so ALP_THRESHOLD is
// the baseline and an explicit flag wins.
var defaultThreshold = resolveThreshold()

// runApp opens the store and launches the read-only TUI browser.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	learnerID := os.Getenv("ALP_LEARNER")
	if learnerID == "" {
		learnerID = uuid.NewString()
		fmt.Fprintf(os.Stderr, "ALP_LEARNER not set; browsing as new learner %s\n", learnerID)
	}

	return app.Run(app.Options{
		Curriculum: st.CurriculumRepo(),
		Mastery:    st.MasteryRepo(),
		Review:     st.ReviewRepo(),
		LearnerID:  learnerID,
		Threshold:  defaultThreshold,
	})
}

// resolveThreshold reads ALP_THRESHOLD, falling back to the scheduler
// default on unset or unparseable values.
func resolveThreshold() float64 {
	raw := os.Getenv("ALP_THRESHOLD")
	if raw == "" {
		return pathgen.DefaultThreshold
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil || t < 0 || t > 1 {
		fmt.Fprintf(os.Stderr, "Ignoring invalid ALP_THRESHOLD %q; using %.2f\n", raw, pathgen.DefaultThreshold)
		return pathgen.DefaultThreshold
	}
	return t
}
