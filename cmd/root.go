package cmd

import (
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alp",
	Short: "Adaptive learning path planner",
	Long: "ALP plans what to study next. It walks a subject's prerequisite graph\n" +
		"against the learner's mastery record and schedules the concepts that\n" +
		"are ready to learn now. Run without a subcommand to browse the path map.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (wins over ALP_DB)")

	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(prereqsCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath honors --db first, then falls back to ALP_DB and the
// XDG default inside DefaultDBPath.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store every subcommand works against. Callers own
// the returned store and must Close it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("locate database: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	return s, nil
}
