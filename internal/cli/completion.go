package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for shieldicon.

To load completions:

Bash:
  $ source <(shieldicon completion bash)

  # To load completions for each session, execute once:
  $ shieldicon completion bash > /etc/bash_completion.d/shieldicon

Zsh:
  $ shieldicon completion zsh > "${fpath[1]}/_shieldicon"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ shieldicon completion fish | source
  $ shieldicon completion fish > ~/.config/fish/completions/shieldicon.fish

PowerShell:
  PS> shieldicon completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
