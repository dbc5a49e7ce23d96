package main

import (
	"errors"

	"github.com/bookshelf-cli/shelf/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books as CSV",
	Long: `List all books as CSV with the header id,title,memo,created_at,updated_at.

Record directories without a metadata file are skipped. An empty shelf
prints nothing.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	rows, err := s.List()
	if errors.Is(err, store.ErrEmpty) {
		logger.Info("shelf is empty", zap.String("root", s.Root()))
		return nil
	}
	if err != nil {
		return err
	}
	return store.WriteCSV(cmd.OutOrStdout(), rows)
}
