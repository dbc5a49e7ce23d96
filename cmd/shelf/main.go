// Package main provides the shelf CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bookshelf-cli/shelf/internal/config"
	"github.com/bookshelf-cli/shelf/internal/logging"
	"github.com/bookshelf-cli/shelf/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	rootFlag    string
	verboseFlag bool

	// logger is set by setup before any command runs. It stays nil when
	// cobra fails before reaching a command (unknown flag, bad args).
	logger *zap.Logger
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger = nil
	resetFlags()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		reportError(stderr, err)
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return exitCode(err)
}

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Personal bookshelf for PDF, EPUB and text documents",
	Long: `shelf keeps a personal collection of documents on disk.

Each book lives in its own directory under the shelf root, holding a copy
of the original file, its extracted plain text, and JSON metadata. There is
no index: every command reads the directory tree directly.

The shelf root is taken from --root, then $SHELF_ROOT, then the root key in
~/.config/shelf/config.yml, and finally ./shelf.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Shelf root directory")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}

// setup loads .env, then builds the logger every command writes to.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	level, err := config.ResolveLogLevel(verboseFlag)
	if err != nil {
		return configError(err)
	}
	l, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return configError(err)
	}
	logger = l
	return nil
}

// openStore resolves the shelf root and returns a store logging to the
// command logger.
func openStore() (*store.Store, error) {
	root, err := config.ResolveRoot(rootFlag)
	if err != nil {
		return nil, configError(err)
	}
	logger.Debug("using shelf root", zap.String("root", root))
	return store.New(root, store.WithLogger(logger)), nil
}

// reportError writes a failed command's error as a log line, or as plain
// text when no logger was built.
func reportError(stderr io.Writer, err error) {
	if logger != nil {
		logger.Error(err.Error())
		return
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
}

// resetFlags restores every flag variable to its default so repeated runs
// in one process do not leak values.
func resetFlags() {
	rootFlag = ""
	verboseFlag = false
	addMemo = ""
	editTitle = ""
	editMemo = ""
}
