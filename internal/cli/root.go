package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The config file is loaded in PersistentPreRunE, so every subcommand sees
// c.Config with file and environment overrides applied. Callers that wrap
// PersistentPreRunE must call the original.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tagsheet lays out product price tags on printable sheets",
		Long: `Tagsheet lays out product price tags on A4 and A3 sheets. It picks a tag size,
computes how many tags fit on a page, paginates the catalogue and renders the
sheets as SVG, PNG, PDF, JSON or XLSX.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./tagsheet.toml)")

	root.AddCommand(c.planCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sizesCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
