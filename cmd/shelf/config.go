package main

import (
	"fmt"
	"strings"

	"github.com/bookshelf-cli/shelf/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set global configuration values",
	Long: `Get or set values in ~/.config/shelf/config.yml.

Usage:
  shelf config                   # Show all config
  shelf config root              # Get specific value
  shelf config root ~/Books      # Set value
  shelf config viewer zathura    # Set viewer

Keys:
  root       Shelf root directory (overridden by --root and $SHELF_ROOT)
  log-level  Log level (debug, info, warn, error)
  viewer     Viewer for 'shelf open' (system, skim, preview, zathura, evince, okular)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return configError(err)
	}
	out := cmd.OutOrStdout()

	// No args: show all config
	if len(args) == 0 {
		return outputJSON(out, ConfigResponse{
			Root:     cfg.Root,
			LogLevel: cfg.LogLevel,
			Viewer:   cfg.Viewer,
		})
	}

	key := args[0]
	normalizedKey := normalizeKey(key)

	// One arg: get specific value
	if len(args) == 1 {
		switch normalizedKey {
		case "root":
			return outputJSON(out, map[string]string{"root": cfg.Root})
		case "log-level":
			return outputJSON(out, map[string]string{"log_level": cfg.LogLevel})
		case "viewer":
			return outputJSON(out, map[string]string{"viewer": cfg.Viewer})
		default:
			return fmt.Errorf("unknown configuration key: %s", key)
		}
	}

	// Two args: set value
	value := args[1]

	switch normalizedKey {
	case "root":
		cfg.Root = config.ExpandPath(value)
	case "log-level":
		if err := config.ValidateLogLevel(value); err != nil {
			return err
		}
		cfg.LogLevel = strings.ToLower(value)
	case "viewer":
		if err := config.ValidateViewer(value); err != nil {
			return err
		}
		cfg.Viewer = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	return outputJSON(out, UpdateResponse{
		Status: "updated",
		Key:    normalizedKey,
		Value:  value,
	})
}

// normalizeKey converts key formats (log-level, log_level, LOG_LEVEL) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
