package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yashshokeen-11/ALP/internal/llm"
	"github.com/Yashshokeen-11/ALP/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM traffic",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list llm events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		const rowFmt = "%-5s  %-19s  %-2s  %-16s  %-28s  %11s  %7s\n"
		fmt.Printf(rowFmt, "Seq", "Timestamp", "OK", "Purpose", "Model", "In/Out", "Ms")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf(rowFmt,
				strconv.FormatInt(e.Sequence, 10),
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ok,
				truncate(e.Purpose, 16),
				truncate(e.Model, 28),
				fmt.Sprintf("%d/%d", e.InputTokens, e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10),
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "Print one LLM call with its full transcripts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(context.Background(), seq)
		if err != nil {
			return fmt.Errorf("load llm event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no llm event with sequence %d", seq)
		}

		fmt.Printf("Seq:      %d\n", e.Sequence)
		fmt.Printf("When:     %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Backend:  %s / %s\n", e.Provider, e.Model)
		fmt.Printf("Purpose:  %s\n", e.Purpose)
		fmt.Printf("Tokens:   %d in, %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:  %d ms\n", e.LatencyMs)
		if !e.Success {
			fmt.Printf("Failed:   %s\n", e.ErrorMessage)
		}

		printTranscript("REQUEST", e.RequestBody)
		printTranscript("RESPONSE", e.ResponseBody)
		return nil
	},
}

// printTranscript prints one captured body under a ruled heading.
func printTranscript(heading, body string) {
	rule := strings.Repeat("─", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(heading)
	fmt.Println(rule)
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("aggregate usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}
		printUsageByPurpose(byPurpose)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("aggregate usage by model: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Println()
			printCostByModel(byModel)
		}
		return nil
	},
}

func printUsageByPurpose(rows []store.LLMUsageRow) {
	const rowFmt = "%-16s  %8s  %8s  %10s  %10s  %10s\n"
	rule := strings.Repeat("─", 76)

	fmt.Println("Usage by Purpose")
	fmt.Println(rule)
	fmt.Printf(rowFmt, "Purpose", "Requests", "Failures", "Input", "Output", "Total")
	fmt.Println(rule)

	var sum store.LLMUsageRow
	for _, row := range rows {
		fmt.Printf(rowFmt, row.Key,
			strconv.Itoa(row.Requests), strconv.Itoa(row.Failures),
			strconv.Itoa(row.InputTokens), strconv.Itoa(row.OutputTokens),
			strconv.Itoa(row.InputTokens+row.OutputTokens))
		sum.Requests += row.Requests
		sum.Failures += row.Failures
		sum.InputTokens += row.InputTokens
		sum.OutputTokens += row.OutputTokens
	}

	fmt.Println(rule)
	fmt.Printf(rowFmt, "TOTAL",
		strconv.Itoa(sum.Requests), strconv.Itoa(sum.Failures),
		strconv.Itoa(sum.InputTokens), strconv.Itoa(sum.OutputTokens),
		strconv.Itoa(sum.InputTokens+sum.OutputTokens))
}

func printCostByModel(rows []store.LLMUsageRow) {
	const rowFmt = "%-32s  %8s  %10s  %10s  %10s\n"
	rule := strings.Repeat("─", 76)

	fmt.Println("Estimated Cost (USD)")
	fmt.Println(rule)
	fmt.Printf(rowFmt, "Model", "Requests", "Input", "Output", "Cost")
	fmt.Println(rule)

	var total float64
	var unpriced []string
	for _, row := range rows {
		costCell := "?"
		if pricing := llm.LookupCost(row.Key); pricing != nil {
			c := pricing.Cost(row.InputTokens, row.OutputTokens)
			total += c
			costCell = formatCost(c)
		} else {
			unpriced = append(unpriced, row.Key)
		}
		fmt.Printf(rowFmt, truncate(row.Key, 32),
			strconv.Itoa(row.Requests),
			strconv.Itoa(row.InputTokens), strconv.Itoa(row.OutputTokens),
			costCell)
	}

	fmt.Println(rule)
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf(rowFmt, label, "", "", "", formatCost(total))

	if len(unpriced) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "How many calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls with this purpose label")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
