package cmd

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/curriculum"
	"github.com/Yashshokeen-11/ALP/internal/llm"
	"github.com/Yashshokeen-11/ALP/internal/store"
	"github.com/Yashshokeen-11/ALP/internal/tutor"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <learner> <concept>",
	Short: "Introduce a concept with the configured LLM",
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

		in, err := buildExplainInput(ctx, s.CurriculumRepo(), s.MasteryRepo(), learnerID, conceptID, threshold)
		if err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := tutor.NewService(provider, tutor.DefaultConfig())
		e, err := svc.ExplainConcept(ctx, in)
		if err != nil {
			return fmt.Errorf("explain concept: %w", err)
		}

		fmt.Printf("%s\n\n", in.Concept.Title)
		fmt.Println(e.Overview)
		if e.WhyNow != "" {
			fmt.Println()
			fmt.Println(e.WhyNow)
		}
		if len(e.FirstSteps) > 0 {
			fmt.Println()
			fmt.Println("Where to start:")
			for _, step := range e.FirstSteps {
				fmt.Printf("  • %s\n", step)
			}
		}
		return nil
	},
}

// buildExplainInput assembles the concept's graph neighborhood and the
// learner's scores on it.
func buildExplainInput(ctx context.Context, cur store.CurriculumRepo, mas store.MasteryRepo, learnerID, conceptID string, threshold float64) (tutor.ExplainInput, error) {
	c, ok, err := cur.GetConcept(ctx, conceptID)
	if err != nil {
		return tutor.ExplainInput{}, fmt.Errorf("look up concept: %w", err)
	}
	if !ok {
		return tutor.ExplainInput{}, fmt.Errorf("unknown concept %q", conceptID)
	}

	concepts, err := cur.Concepts(ctx, c.SubjectID)
	if err != nil {
		return tutor.ExplainInput{}, fmt.Errorf("load subject concepts: %w", err)
	}
	edges, err := cur.Edges(ctx, c.SubjectID)
	if err != nil {
		return tutor.ExplainInput{}, fmt.Errorf("load subject edges: %w", err)
	}
	g := curriculum.NewGraph(concepts, edges)

	ids := append([]string{conceptID}, g.Prerequisites(conceptID)...)
	scores, err := mas.ForLearner(ctx, learnerID, ids)
	if err != nil {
		return tutor.ExplainInput{}, fmt.Errorf("load mastery: %w", err)
	}

	in := tutor.ExplainInput{
		Concept:   c,
		Mastery:   scores[conceptID],
		Threshold: threshold,
	}
	for _, id := range g.Prerequisites(conceptID) {
		pc, ok := g.Concept(id)
		if !ok {
			continue
		}
		in.Prereqs = append(in.Prereqs, tutor.PrereqStanding{
			Concept:   pc,
			Mastery:   scores[id],
			Satisfied: scores[id] >= threshold,
		})
	}
	for _, id := range g.Dependents(conceptID) {
		if dc, ok := g.Concept(id); ok {
			in.Unlocks = append(in.Unlocks, dc)
		}
	}

	return in, nil
}

func init() {
	explainCmd.Flags().Float64P("threshold", "t", defaultThreshold, "Mastery score at which a prerequisite counts as satisfied")
}
