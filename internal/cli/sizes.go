package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/suggest"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// sizesCommand prints the tag-size catalogue with the sizes suggested for
// the content selection highlighted.
func (c *CLI) sizesCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "List tag sizes and the ones suggested for the content",
		Example: `  tagsheet sizes
  tagsheet sizes --content productName,salePrice --paper a3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, flags)
			if err != nil {
				return err
			}
			paper, err := tag.PaperByName(opts.Paper)
			if err != nil {
				return err
			}

			sizes := tag.Sizes()
			suggested := suggest.Sizes(opts.Content, sizes)
			fmt.Println(sizesTable(sizes, suggested, paper, -1))
			printDetail("content: %s", contentLabels(opts.Content))
			printDetail("★ %s suggested", plural(len(suggested), "size"))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// pickCommand opens the interactive size picker.
func (c *CLI) pickCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "pick [products]",
		Short: "Choose content and a tag size interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, flags)
			if err != nil {
				return err
			}
			paper, err := tag.PaperByName(opts.Paper)
			if err != nil {
				return err
			}

			result, err := tea.NewProgram(NewSizePickerModel(opts.Content, paper), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			m, ok := result.(SizePickerModel)
			if !ok || m.Selected == nil {
				printInfo("No size selected")
				return nil
			}

			printSuccess("Selected #%d %s", m.Selected.ID, m.Selected)
			input := "products.json"
			if len(args) == 1 {
				input = args[0]
			}
			printNextStep("Render with", renderHint(input, m.Selected.ID, paper.Name, m.Content))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func renderHint(input string, sizeID int, paper tag.PaperSize, content []tag.Content) string {
	names := make([]string, len(content))
	for i, c := range content {
		names[i] = string(c)
	}
	sel := strings.Join(names, ",")
	if sel == "" {
		sel = "none"
	}
	return fmt.Sprintf("tagsheet render %s --size %d --paper %s --content %s", input, sizeID, paper, sel)
}

func contentLabels(content []tag.Content) string {
	if len(content) == 0 {
		return "none"
	}
	labels := make([]string, len(content))
	for i, c := range content {
		labels[i] = c.Label()
	}
	return strings.Join(labels, ", ")
}
