package cmd

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/mastery"
	"github.com/Yashshokeen-11/ALP/internal/pathgen"
	"github.com/spf13/cobra"
)

var accessCmd = &cobra.Command{
	Use:   "access <learner> <concept>",
	Short: "Check whether a learner may open a concept directly",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, conceptID := args[0], args[1]
		threshold, _ := cmd.Flags().GetFloat64("threshold")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		gen := pathgen.NewGenerator(s.CurriculumRepo(), mastery.NewService(s.MasteryRepo()))

		access, err := gen.CanAccess(ctx, conceptID, learnerID, threshold)
		if err != nil {
			return fmt.Errorf("check access: %w", err)
		}

		if access.Allowed {
			fmt.Printf("%s may open %s: every prerequisite is at or above %.2f.\n",
				learnerID, conceptID, threshold)
			return nil
		}

		fmt.Printf("%s may not open %s yet. Missing prerequisites:\n", learnerID, conceptID)
		for _, id := range access.Missing {
			line := "  ✗ " + id
			if c, ok, err := s.CurriculumRepo().GetConcept(ctx, id); err == nil && ok {
				line += "  " + c.Title
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	accessCmd.Flags().Float64P("threshold", "t", defaultThreshold, "Mastery score at which a prerequisite counts as satisfied")
}
