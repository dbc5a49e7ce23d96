package main

import (
	"github.com/bookshelf-cli/shelf/internal/config"
	"github.com/bookshelf-cli/shelf/internal/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a book's original file in the configured viewer",
	Long: `Open a book's original file in the configured viewer.

The viewer is read from the viewer key of the global config
(system, skim, preview, zathura, evince, okular).

Examples:
  shelf open sicp
  shelf config viewer zathura`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return configError(err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	path, err := s.SourcePath(args[0])
	if err != nil {
		return err
	}

	if err := viewer.New(cfg.Viewer).Open(path); err != nil {
		return err
	}
	logger.Info("opened book", zap.String("id", args[0]), zap.String("path", path))
	return outputJSON(cmd.OutOrStdout(), StatusResponse{Status: "opened", ID: args[0], Path: path})
}
