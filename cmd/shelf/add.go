package main

import (
	"github.com/spf13/cobra"
)

var addMemo string

func init() {
	addCmd.Flags().StringVar(&addMemo, "memo", "", "Memo about the book")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <file> <id> <title>",
	Short: "Add a document to the shelf",
	Long: `Add a document to the shelf.

The file is copied into a new directory named after the id, its text is
extracted (PDF, EPUB and TXT are supported), and metadata is written.
A file whose text cannot be extracted is still added, without a text file.

Examples:
  shelf add ~/Downloads/sicp.pdf sicp "Structure and Interpretation"
  shelf add notes.txt notes "Reading notes" --memo "from the 2024 course"`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	_, err = s.Create(args[0], args[1], args[2], addMemo)
	return err
}
