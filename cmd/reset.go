package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner>",
	Short: "Delete a learner's mastery, review, and mistake data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Printf("Delete all mastery, review, and mistake data for %q? [y/N] ", learnerID)
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.MasteryRepo().DeleteLearner(ctx, learnerID); err != nil {
			return fmt.Errorf("delete mastery: %w", err)
		}
		if err := s.ReviewRepo().DeleteLearner(ctx, learnerID); err != nil {
			return fmt.Errorf("delete review states: %w", err)
		}
		if err := s.MistakeRepo().DeleteLearner(ctx, learnerID); err != nil {
			return fmt.Errorf("delete mistakes: %w", err)
		}

		fmt.Printf("Cleared learner data for %s. Path and LLM events are kept.\n", learnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
