package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Yashshokeen-11/ALP/internal/mastery"
	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Read and write mastery facts",
}

var masterySetCmd = &cobra.Command{
	Use:   "set <learner> <concept> <score>",
	Short: "Record a mastery score in [0,1]",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, conceptID := args[0], args[1]
		score, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[2], err)
		}
		if score < 0 || score > 1 {
			return fmt.Errorf("score %v is outside [0,1]", score)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		if _, ok, err := s.CurriculumRepo().GetConcept(ctx, conceptID); err != nil {
			return fmt.Errorf("look up concept: %w", err)
		} else if !ok {
			return fmt.Errorf("unknown concept %q", conceptID)
		}

		if err := mastery.NewService(s.MasteryRepo()).Set(ctx, learnerID, conceptID, score); err != nil {
			return fmt.Errorf("record mastery: %w", err)
		}

		fmt.Printf("Recorded %s = %.2f for %s.\n", conceptID, score, learnerID)
		return nil
	},
}

var masteryListCmd = &cobra.Command{
	Use:   "list <learner>",
	Short: "List a learner's recorded mastery facts",
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
		scores, err := s.MasteryRepo().ForLearner(ctx, learnerID, nil)
		if err != nil {
			return fmt.Errorf("list mastery: %w", err)
		}

		if len(scores) == 0 {
			fmt.Printf("No mastery recorded for %s.\n", learnerID)
			return nil
		}

		ids := make([]string, 0, len(scores))
		for id := range scores {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("%-24s  %-36s  %6s  %s\n", "Concept", "Title", "Score", "Band")
		fmt.Println(strings.Repeat("─", 84))

		for _, id := range ids {
			title := ""
			if c, ok, err := s.CurriculumRepo().GetConcept(ctx, id); err == nil && ok {
				title = c.Title
			}
			band := mastery.BandFor(scores[id], threshold)
			fmt.Printf("%-24s  %-36s  %5.0f%%  %s %s\n",
				truncate(id, 24), truncate(title, 36), scores[id]*100,
				band.Icon(), band.Label())
		}

		fmt.Printf("\n%d facts\n", len(scores))
		return nil
	},
}

func init() {
	masteryListCmd.Flags().Float64P("threshold", "t", defaultThreshold, "Threshold used to band scores for display")

	masteryCmd.AddCommand(masterySetCmd)
	masteryCmd.AddCommand(masteryListCmd)
}
