package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/llm"
	"github.com/Yashshokeen-11/ALP/internal/mastery"
	"github.com/Yashshokeen-11/ALP/internal/pathgen"
	"github.com/Yashshokeen-11/ALP/internal/review"
	"github.com/Yashshokeen-11/ALP/internal/store"
	"github.com/Yashshokeen-11/ALP/internal/tutor"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <learner> <subject>",
	Short: "Generate a prerequisite-ordered learning path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, subjectID := args[0], args[1]
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		focus, _ := cmd.Flags().GetString("focus")
		due, _ := cmd.Flags().GetBool("due")
		narrate, _ := cmd.Flags().GetBool("narrate")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		gen := pathgen.NewGenerator(s.CurriculumRepo(), mastery.NewService(s.MasteryRepo()))

		path, err := gen.Generate(ctx, subjectID, learnerID, threshold)
		if err != nil {
			return fmt.Errorf("generate path: %w", err)
		}

		// Review bias first, explicit focus last so the caller's pick
		// wins the front of the path when both are given.
		if due {
			sched := review.NewScheduler(s.ReviewRepo())
			path, err = sched.Adapt(ctx, gen, path, time.Now())
			if err != nil {
				return fmt.Errorf("apply review bias: %w", err)
			}
		}
		if focus != "" {
			path, err = gen.Reorder(ctx, path, splitIDList(focus))
			if err != nil {
				return fmt.Errorf("apply focus bias: %w", err)
			}
		}

		if err := s.EventRepo().AppendPathEvent(ctx, store.PathEventData{
			LearnerID:    learnerID,
			SubjectID:    subjectID,
			Threshold:    threshold,
			ConceptCount: len(path.Steps),
			GapCount:     len(path.Gaps),
			TotalMinutes: path.TotalEstimatedMins,
		}); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not record path event:", err)
		}

		printPath(ctx, s, path)

		if narrate {
			narratePath(ctx, s, path)
		}
		return nil
	},
}

// splitIDList parses a comma-separated ID list, dropping empty entries.
func splitIDList(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func printPath(ctx context.Context, s *store.Store, p *pathgen.Path) {
	fmt.Printf("Learning path for %s in %s (threshold %.2f)\n", p.LearnerID, p.SubjectID, p.Threshold)
	fmt.Println(strings.Repeat("─", 84))

	if len(p.Steps) == 0 && len(p.Gaps) == 0 {
		fmt.Printf("No concepts found for subject %q.\n", p.SubjectID)
		return
	}

	if len(p.Steps) > 0 {
		fmt.Printf("%3s  %-24s  %-32s  %-14s  %4s  %5s\n",
			"#", "ID", "Concept", "Mastery", "Diff", "Est")
		fmt.Println(strings.Repeat("─", 84))

		for i, step := range p.Steps {
			band := mastery.BandFor(step.Mastery, p.Threshold)
			fmt.Printf("%3d  %-24s  %-32s  %s %-10s  %4.1f  %4dm\n",
				i+1,
				truncate(step.Concept.ID, 24),
				truncate(step.Concept.Title, 32),
				band.Icon(),
				fmt.Sprintf("%s %3.0f%%", band.Label(), step.Mastery*100),
				step.Concept.Difficulty,
				step.Concept.EstimatedMins,
			)
		}

		fmt.Println(strings.Repeat("─", 84))
		fmt.Printf("Total estimated time: %d minutes\n", p.TotalEstimatedMins)
	}

	if len(p.Gaps) > 0 {
		fmt.Println()
		fmt.Println("Prerequisite gaps blocking the rest of the subject:")
		for _, id := range p.Gaps {
			title := ""
			if c, ok, err := s.CurriculumRepo().GetConcept(ctx, id); err == nil && ok {
				title = "  " + c.Title
			}
			fmt.Printf("  ✗ %s%s\n", id, title)
		}
	}
}

// narratePath asks the configured LLM for a study-plan summary. The
// path has already been printed, so narration failures only warn.
func narratePath(ctx context.Context, s *store.Store, p *pathgen.Path) {
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Narration skipped.")
		return
	}

	svc := tutor.NewService(provider, tutor.DefaultConfig())
	narration, err := svc.NarratePlan(ctx, p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Narration failed:", err)
		return
	}

	fmt.Println()
	fmt.Println(narration.Headline)
	for i, note := range narration.Steps {
		if note.Encouragement == "" {
			continue
		}
		fmt.Printf("%3d. %s\n", i+1, note.Encouragement)
	}
}

func init() {
	pathCmd.Flags().Float64P("threshold", "t", defaultThreshold, "Mastery score at which a prerequisite counts as satisfied")
	pathCmd.Flags().String("focus", "", "Comma-separated concept IDs to pull forward")
	pathCmd.Flags().Bool("due", false, "Pull concepts due for review forward")
	pathCmd.Flags().Bool("narrate", false, "Summarize the plan with the configured LLM")
}
