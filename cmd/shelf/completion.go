package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate completion scripts for your shell.

Bash:
  $ source <(shelf completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ shelf completion bash > /etc/bash_completion.d/shelf
  # macOS:
  $ shelf completion bash > $(brew --prefix)/etc/bash_completion.d/shelf

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ shelf completion zsh > "${fpath[1]}/_shelf"

  # You may need to start a new shell for this setup to take effect.

Fish:
  $ shelf completion fish | source

  # To load completions for each session, execute once:
  $ shelf completion fish > ~/.config/fish/completions/shelf.fish

PowerShell:
  PS> shelf completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> shelf completion powershell > shelf.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default: // "powershell"
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}
