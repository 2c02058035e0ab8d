package cmd

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/mastery"
	"github.com/Yashshokeen-11/ALP/internal/pathgen"
	"github.com/spf13/cobra"
)

var prereqsCmd = &cobra.Command{
	Use:   "prereqs <concept>",
	Short: "List the transitive prerequisites of a concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conceptID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		gen := pathgen.NewGenerator(s.CurriculumRepo(), mastery.NewService(s.MasteryRepo()))

		closure, err := gen.PrerequisiteClosure(ctx, conceptID)
		if err != nil {
			return fmt.Errorf("compute closure: %w", err)
		}

		if len(closure) == 0 {
			fmt.Printf("%s has no prerequisites.\n", conceptID)
			return nil
		}

		fmt.Printf("Prerequisites of %s (transitive):\n", conceptID)
		for _, id := range closure {
			line := "  " + id
			if c, ok, err := s.CurriculumRepo().GetConcept(ctx, id); err == nil && ok {
				line += "  " + c.Title
			}
			fmt.Println(line)
		}
		return nil
	},
}
