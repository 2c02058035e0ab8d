package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yashshokeen-11/ALP/internal/mistakes"
	"github.com/spf13/cobra"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Track recurring mistake kinds per concept",
}

var mistakesRecordCmd = &cobra.Command{
	Use:   "record <learner> <concept> <kind>",
	Short: "Tally one observed mistake",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, conceptID := args[0], args[1]
		kind, err := mistakes.ParseKind(args[2])
		if err != nil {
			return err
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

		svc := mistakes.NewService(s.MistakeRepo())
		if err := svc.Record(ctx, learnerID, conceptID, kind, time.Now().UTC()); err != nil {
			return fmt.Errorf("record mistake: %w", err)
		}

		fmt.Printf("Recorded %s on %s for %s.\n", kind.Label(), conceptID, learnerID)
		return nil
	},
}

var mistakesListCmd = &cobra.Command{
	Use:   "list <learner>",
	Short: "List a learner's mistake tallies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		records, err := mistakes.NewService(s.MistakeRepo()).ForLearner(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("list mistakes: %w", err)
		}

		if len(records) == 0 {
			fmt.Printf("No mistakes recorded for %s.\n", learnerID)
			return nil
		}

		fmt.Printf("%-24s  %-18s  %5s  %s\n", "Concept", "Kind", "Count", "Last seen")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range records {
			fmt.Printf("%-24s  %-18s  %5d  %s\n",
				truncate(r.ConceptID, 24), r.Kind.Label(), r.Count,
				r.LastSeen.Local().Format("2006-01-02 15:04"))
		}

		fmt.Printf("\n%d tallies\n", len(records))
		return nil
	},
}

func init() {
	mistakesCmd.AddCommand(mistakesRecordCmd)
	mistakesCmd.AddCommand(mistakesListCmd)
}
