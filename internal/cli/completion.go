package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/pipeline"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for tagsheet.

Besides commands and flags, completion knows the paper names, the tag-size
catalogue, the content kinds and the output formats, so values such as
--size and --content can be completed too.

Bash:
  $ source <(tagsheet completion bash)
  $ tagsheet completion bash > /etc/bash_completion.d/tagsheet

Zsh:
  $ tagsheet completion zsh > "${fpath[1]}/_tagsheet"

Fish:
  $ tagsheet completion fish > ~/.config/fish/completions/tagsheet.fish

PowerShell:
  PS> tagsheet completion powershell | Out-String | Invoke-Expression
`,
		Example: `  tagsheet render shelf.csv --size <TAB>
  tagsheet plan shelf.csv --content productName,<TAB>`,
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

	return cmd
}

// registerLayoutCompletions completes the values of the layout flags.
func registerLayoutCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("paper", completePaper)
	_ = cmd.RegisterFlagCompletionFunc("size", completeSize)
	_ = cmd.RegisterFlagCompletionFunc("content", completeContent)
}

func completePaper(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, p := range tag.Papers() {
		out = append(out, fmt.Sprintf("%s\t%s, %.0f × %.0f mm", p.Name, p.Label, p.WidthMm, p.HeightMm))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func completeSize(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range tag.Sizes() {
		out = append(out, fmt.Sprintf("%d\t%s", s.ID, s.Label))
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}

// completeContent completes the last element of a comma-separated list,
// skipping kinds that are already listed.
func completeContent(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, chosen := "", map[string]bool{}
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		for _, c := range strings.Split(toComplete[:i], ",") {
			chosen[strings.TrimSpace(c)] = true
		}
	}
	var out []string
	for _, c := range tag.AllContent() {
		if !chosen[string(c)] {
			out = append(out, prefix+string(c)+"\t"+c.Label())
		}
	}
	if prefix == "" {
		out = append(out, "none\tEmpty selection")
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeFormats completes a comma-separated --format list.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var out []string
	for _, f := range []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON, pipeline.FormatXLSX} {
		if !strings.Contains(","+prefix, ","+f+",") {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
