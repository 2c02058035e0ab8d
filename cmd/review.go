package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/review"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Spaced-review ladder over mastered concepts",
}

var reviewTrackCmd = &cobra.Command{
	Use:   "track <learner> <concept>",
	Short: "Start review tracking for a concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, conceptID := args[0], args[1]
		restart, _ := cmd.Flags().GetBool("restart")

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

		sched := review.NewScheduler(s.ReviewRepo())
		now := time.Now().UTC()
		if restart {
			err = sched.Retrack(ctx, learnerID, conceptID, now)
		} else {
			err = sched.Track(ctx, learnerID, conceptID, now)
		}
		if err != nil {
			return fmt.Errorf("track concept: %w", err)
		}

		fmt.Printf("Tracking %s for %s. First review in %d day(s).\n",
			conceptID, learnerID, review.BaseIntervals[0])
		return nil
	},
}

var reviewDueCmd = &cobra.Command{
	Use:   "due <learner>",
	Short: "List concepts due for review, most overdue first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		sched := review.NewScheduler(s.ReviewRepo())
		now := time.Now().UTC()

		due, err := sched.Due(ctx, learnerID, now)
		if err != nil {
			return fmt.Errorf("list due reviews: %w", err)
		}
		if len(due) == 0 {
			fmt.Printf("Nothing due for %s.\n", learnerID)
			return nil
		}

		states, err := sched.States(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("fetch review states: %w", err)
		}
		byConcept := make(map[string]review.State, len(states))
		for _, st := range states {
			byConcept[st.ConceptID] = st
		}

		fmt.Printf("%-24s  %-36s  %5s  %8s  %s\n",
			"Concept", "Title", "Stage", "Overdue", "Status")
		fmt.Println(strings.Repeat("─", 88))

		for _, id := range due {
			st := byConcept[id]
			title := ""
			if c, ok, err := s.CurriculumRepo().GetConcept(ctx, id); err == nil && ok {
				title = c.Title
			}
			fmt.Printf("%-24s  %-36s  %5d  %7.1fd  %s\n",
				truncate(id, 24), truncate(title, 36),
				st.Stage, st.OverdueDays(now), st.Status(now))
		}

		fmt.Printf("\n%d due\n", len(due))
		return nil
	},
}

var reviewRecordCmd = &cobra.Command{
	Use:   "record <learner> <concept> <correct|incorrect>",
	Short: "Record a review answer and advance the ladder",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, conceptID := args[0], args[1]

		var correct bool
		switch args[2] {
		case "correct":
			correct = true
		case "incorrect":
			correct = false
		default:
			return fmt.Errorf("result must be \"correct\" or \"incorrect\", got %q", args[2])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		sched := review.NewScheduler(s.ReviewRepo())
		st, err := sched.Record(ctx, learnerID, conceptID, correct, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("record review: %w", err)
		}

		if st.Graduated {
			fmt.Printf("%s graduated. Next check on %s.\n",
				conceptID, st.NextReviewAt.Local().Format("2006-01-02"))
			return nil
		}
		if correct {
			fmt.Printf("Stage %d, %d consecutive hit(s). Next review on %s.\n",
				st.Stage, st.ConsecutiveHits, st.NextReviewAt.Local().Format("2006-01-02"))
		} else {
			fmt.Printf("Streak reset. %s stays due at stage %d.\n", conceptID, st.Stage)
		}
		return nil
	},
}

func init() {
	reviewTrackCmd.Flags().Bool("restart", false, "Reset an existing ladder back to stage zero")

	reviewCmd.AddCommand(reviewTrackCmd)
	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewRecordCmd)
}
