package main

import (
	"github.com/spf13/cobra"
)

var (
	editTitle string
	editMemo  string
)

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editMemo, "memo", "", "New memo")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit the title or memo of a book",
	Long: `Edit the title or memo of a book.

Only non-empty values are applied, so a field cannot be cleared. The
updated_at timestamp is refreshed on every edit.

Examples:
  shelf edit sicp --title "SICP, 2nd edition"
  shelf edit sicp --memo "chapter 3 pending"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	_, err = s.UpdateMetadata(args[0], editTitle, editMemo)
	return err
}
