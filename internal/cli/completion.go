package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/comiccon2025/comicpage/pkg/pipeline"
	"github.com/comiccon2025/comicpage/pkg/render/styles"
)

// commonViewports are offered when completing --viewport.
var commonViewports = []string{"1280x720", "1366x768", "1440x900", "1920x1080", "390x844"}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for comicpage.

Besides subcommands, the scripts complete render formats (--format),
graph styles (--style) and common viewports (--viewport).

  $ source <(comicpage completion bash)
  $ comicpage completion zsh > "${fpath[1]}/_comicpage"
  $ comicpage completion fish > ~/.config/fish/completions/comicpage.fish
  PS> comicpage completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
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
}

// registerFlagCompletions attaches value completion to the flags of every
// subcommand that defines them.
func registerFlagCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		if cmd.Flags().Lookup("format") != nil {
			_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
		}
		if cmd.Flags().Lookup("style") != nil {
			_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(
				[]string{styles.NameSimple, styles.NameHanddrawn}, cobra.ShellCompDirectiveNoFileComp))
		}
		if cmd.Flags().Lookup("viewport") != nil {
			_ = cmd.RegisterFlagCompletionFunc("viewport", cobra.FixedCompletions(
				commonViewports, cobra.ShellCompDirectiveNoFileComp))
		}
	}
}

// completeFormats completes the last entry of a comma-separated format list,
// skipping formats already given.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, last = toComplete[:i+1], toComplete[i+1:]
	}
	given := pipeline.ParseFormats(prefix)

	var out []string
	for _, f := range pipeline.AllFormats {
		if strings.HasPrefix(f, last) && !containsString(given, f) {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
