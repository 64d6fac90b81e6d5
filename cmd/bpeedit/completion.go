package main

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `Generate shell completion script for bpeedit.

To load completions:

Bash:
  $ source <(bpeedit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ bpeedit completion bash > /etc/bash_completion.d/bpeedit
  # macOS:
  $ bpeedit completion bash > $(brew --prefix)/etc/bash_completion.d/bpeedit

Zsh:
  $ source <(bpeedit completion zsh)
  # To load completions for each session, execute once:
  $ bpeedit completion zsh > "${fpath[1]}/_bpeedit"

Fish:
  $ bpeedit completion fish | source
  # To load completions for each session, execute once:
  $ bpeedit completion fish > ~/.config/fish/completions/bpeedit.fish

PowerShell:
  PS> bpeedit completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> bpeedit completion powershell > bpeedit.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
