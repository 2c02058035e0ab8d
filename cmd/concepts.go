package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/spf13/cobra"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Browse the concept catalog",
}

var conceptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List concepts (optionally filtered by subject)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		cur := s.CurriculumRepo()

		subjects := []string{subject}
		if subject == "" {
			subjects, err = cur.Subjects(ctx)
			if err != nil {
				return fmt.Errorf("list subjects: %w", err)
			}
			if len(subjects) == 0 {
				fmt.Println("No subjects in the catalog. Import a curriculum pack first.")
				return nil
			}
		}

		fmt.Printf("%-24s  %-36s  %-16s  %4s  %5s  %7s\n",
			"ID", "Concept", "Subject", "Diff", "Est", "Prereqs")
		fmt.Println(strings.Repeat("─", 102))

		total := 0
		for _, sub := range subjects {
			concepts, err := cur.Concepts(ctx, sub)
			if err != nil {
				return fmt.Errorf("list concepts for %q: %w", sub, err)
			}
			if len(concepts) == 0 && subject != "" {
				return fmt.Errorf("no concepts found for subject %q", subject)
			}
			edges, err := cur.Edges(ctx, sub)
			if err != nil {
				return fmt.Errorf("list edges for %q: %w", sub, err)
			}

			prereqCount := make(map[string]int)
			for _, e := range edges {
				prereqCount[e.DependentID]++
			}

			for _, c := range concepts {
				printConceptRow(c, prereqCount[c.ID])
			}
			total += len(concepts)
		}

		fmt.Printf("\n%d concepts\n", total)
		return nil
	},
}

func printConceptRow(c curriculum.Concept, prereqs int) {
	title := c.Title
	if len(title) > 36 {
		title = title[:33] + "..."
	}
	fmt.Printf("%-24s  %-36s  %-16s  %4.1f  %4dm  %7d\n",
		truncate(c.ID, 24), title, truncate(c.SubjectID, 16),
		c.Difficulty, c.EstimatedMins, prereqs)
}

func init() {
	conceptsListCmd.Flags().String("subject", "", "Filter by subject ID")

	conceptsCmd.AddCommand(conceptsListCmd)
}
