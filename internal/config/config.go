package config

import (
	"os"
	"path/filepath"
)

const (
	// RootEnv names the environment variable that overrides the store root.
	RootEnv = "SHELF_ROOT"

	// DefaultRoot is used when nothing else configures the store root.
	// It is relative to the working directory.
	DefaultRoot = "shelf"
)

// ResolveRoot returns the store root directory.
//
// Precedence: flagValue, then $SHELF_ROOT, then root in the global config,
// then DefaultRoot. A leading ~ is expanded in every source.
func ResolveRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return ExpandPath(flagValue), nil
	}
	if env := os.Getenv(RootEnv); env != "" {
		return ExpandPath(env), nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", err
	}
	if cfg.Root != "" {
		return ExpandPath(cfg.Root), nil
	}
	return DefaultRoot, nil
}

// ResolveLogLevel returns the configured log level, defaulting to info.
// verbose forces debug.
func ResolveLogLevel(verbose bool) (string, error) {
	if verbose {
		return "debug", nil
	}
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", err
	}
	if cfg.LogLevel == "" {
		return "info", nil
	}
	return cfg.LogLevel, nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
