package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Print the metadata of a book as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	m, err := s.ReadMetadata(args[0])
	if err != nil {
		return err
	}
	return outputJSON(cmd.OutOrStdout(), m)
}
