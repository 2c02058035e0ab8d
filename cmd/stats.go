package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/mistakes"
	"github.com/Yashshokeen-11/ALP/internal/review"
	"github.com/Yashshokeen-11/ALP/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <learner>",
	Short: "Show a learner's progress per subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		cur := s.CurriculumRepo()

		subjects, err := cur.Subjects(ctx)
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		if len(subjects) == 0 {
			fmt.Println("No subjects in the catalog. Import a curriculum pack first.")
			return nil
		}

		scores, err := s.MasteryRepo().ForLearner(ctx, learnerID, nil)
		if err != nil {
			return fmt.Errorf("fetch mastery: %w", err)
		}

		fmt.Printf("Progress for %s (threshold %.2f)\n", learnerID, threshold)
		fmt.Println(strings.Repeat("─", 88))
		fmt.Printf("%-16s  %8s  %10s  %10s  %6s  %5s  %9s\n",
			"Subject", "Concepts", "Proficient", "Developing", "Fresh", "Avg", "Remaining")
		fmt.Println(strings.Repeat("─", 88))

		for _, sub := range subjects {
			concepts, err := cur.Concepts(ctx, sub)
			if err != nil {
				return fmt.Errorf("list concepts for %q: %w", sub, err)
			}
			if len(concepts) == 0 {
				continue
			}

			var proficient, developing, fresh, remainingMins int
			var sum float64
			for _, c := range concepts {
				m := scores[c.ID]
				sum += m
				switch {
				case m >= threshold:
					proficient++
				case m > 0:
					developing++
					remainingMins += c.EstimatedMins
				default:
					fresh++
					remainingMins += c.EstimatedMins
				}
			}

			fmt.Printf("%-16s  %8d  %10d  %10d  %6d  %4.0f%%  %8dm\n",
				truncate(sub, 16), len(concepts), proficient, developing, fresh,
				sum/float64(len(concepts))*100, remainingMins)
		}

		now := time.Now().UTC()
		printReviewSummary(ctx, s, learnerID, now)
		printMistakeSummary(ctx, s, learnerID)
		printRecentPaths(ctx, s, learnerID)
		return nil
	},
}

func printReviewSummary(ctx context.Context, s *store.Store, learnerID string, now time.Time) {
	sched := review.NewScheduler(s.ReviewRepo())
	states, err := sched.States(ctx, learnerID)
	if err != nil || len(states) == 0 {
		return
	}

	var due, graduated int
	for i := range states {
		if states[i].IsDue(now) {
			due++
		}
		if states[i].Graduated {
			graduated++
		}
	}

	fmt.Printf("\nReviews: %d tracked, %d due, %d graduated\n", len(states), due, graduated)
}

func printMistakeSummary(ctx context.Context, s *store.Store, learnerID string) {
	counts, err := mistakes.NewService(s.MistakeRepo()).CountsByKind(ctx, learnerID)
	if err != nil || len(counts) == 0 {
		return
	}

	var parts []string
	for _, k := range mistakes.AllKinds() {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(k.Label())))
		}
	}
	fmt.Printf("\nMistakes: %s\n", strings.Join(parts, ", "))
}

func printRecentPaths(ctx context.Context, s *store.Store, learnerID string) {
	paths, err := s.EventRepo().RecentPaths(ctx, learnerID, 5)
	if err != nil || len(paths) == 0 {
		return
	}

	fmt.Println("\nRecent paths:")
	for _, p := range paths {
		fmt.Printf("  %s  %-16s  %d concept(s), %d gap(s), %dm\n",
			p.Timestamp.Local().Format("2006-01-02 15:04"),
			truncate(p.SubjectID, 16), p.ConceptCount, p.GapCount, p.TotalMinutes)
	}
}

func init() {
	statsCmd.Flags().Float64P("threshold", "t", defaultThreshold, "Mastery score at which a concept counts as proficient")
}
