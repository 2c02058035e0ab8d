package cmd

import (
	"context"
	"fmt"

	"github.com/Yashshokeen-11/ALP/internal/pack"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <pack.json>",
	Short: "Import a curriculum pack into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replace, _ := cmd.Flags().GetBool("replace")

		f, err := pack.Load(args[0])
		if err != nil {
			return fmt.Errorf("load pack: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := pack.NewImporter(s.CurriculumRepo()).Import(context.Background(), f, replace)
		if err != nil {
			return fmt.Errorf("import pack: %w", err)
		}

		fmt.Printf("Imported %d subject(s), %d concept(s), %d edge(s). Batch %s.\n",
			res.Subjects, res.Concepts, res.Edges, res.BatchID)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("replace", false, "Delete each subject's existing concepts and edges before importing")
}
