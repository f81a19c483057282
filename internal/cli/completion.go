package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metronav/metronav/pkg/lines"
	"github.com/metronav/metronav/pkg/network"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for metronav.

To load completions:

Bash:
  $ source <(metronav completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ metronav completion bash > /etc/bash_completion.d/metronav
  # macOS:
  $ metronav completion bash > $(brew --prefix)/etc/bash_completion.d/metronav

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ metronav completion zsh > "${fpath[1]}/_metronav"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ metronav completion fish | source

  # To load completions for each session, execute once:
  $ metronav completion fish > ~/.config/fish/completions/metronav.fish

PowerShell:
  PS> metronav completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> metronav completion powershell > metronav.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// completionNetwork loads the network for shell completion. Errors yield nil
// so completion degrades to no suggestions.
func (c *CLI) completionNetwork(cmd *cobra.Command) *network.Network {
	cfg, err := c.resolveConfig(cmd)
	if err != nil {
		return nil
	}
	n, err := lines.Load(cfg.Lines, lines.Options{AllowDuplicateStations: cfg.AllowDuplicateStations})
	if err != nil {
		return nil
	}
	return n
}

// completeStations completes station names for the first maxArgs positional
// arguments.
func (c *CLI) completeStations(maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		n := c.completionNetwork(cmd)
		if n == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return matchPrefix(network.BuildStationIndex(n).Stations(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeLines completes line IDs.
func (c *CLI) completeLines(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	n := c.completionNetwork(cmd)
	if n == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix(n.IDs(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// matchPrefix keeps the candidates starting with prefix, ignoring case.
func matchPrefix(candidates []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, s := range candidates {
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			out = append(out, s)
		}
	}
	return out
}
