package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/catalog"
	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/io"
	"github.com/matzehuels/tagsheet/pkg/pipeline"
	"github.com/matzehuels/tagsheet/pkg/render/sink"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// planCommand creates the plan command, which lays out a product file and
// prints the page summary without rendering.
func (c *CLI) planCommand() *cobra.Command {
	var (
		flags  layoutFlags
		asJSON bool
		faces  bool
	)

	cmd := &cobra.Command{
		Use:   "plan [products]",
		Short: "Compute the page layout for a product file",
		Long: `Plan reads a product file (.json, .toml or .csv), fits the chosen tag size onto
the paper and reports how many tags fit per page and how many pages are needed.`,
		Example: `  tagsheet plan products.json --size 17 --paper a4
  tagsheet plan products.csv --content productName,salePrice --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, flags)
			if err != nil {
				return err
			}
			opts.Faces = faces
			return c.runPlan(cmd, args[0], splitIDs(flags.ids), opts, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.ids, "ids", "", "only these product IDs (comma-separated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full placement sheet as JSON")
	cmd.Flags().BoolVar(&faces, "faces", false, "include tag faces in JSON output")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, path string, ids []string, opts pipeline.Options, asJSON bool) error {
	products, err := loadProducts(path, ids)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, loggerFromContext(cmd.Context()))
	res, err := runner.Plan(cmd.Context(), products, opts)
	if err != nil {
		return err
	}
	s := res.Sheet

	if asJSON {
		var jsonOpts []sink.JSONOption
		if opts.Faces {
			jsonOpts = append(jsonOpts, sink.WithJSONFaces(), sink.WithJSONCurrency(opts.Currency))
		}
		data, err := sink.RenderJSON(s, opts.Content, jsonOpts...)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	printKeyValue("Paper", fmt.Sprintf("%s (%.0f × %.0f mm)", s.Paper.Label, s.Paper.WidthMm, s.Paper.HeightMm))
	printKeyValue("Tag size", fmt.Sprintf("#%d %s", s.Size.ID, s.Size))
	printKeyValue("Grid", fmt.Sprintf("%d × %d = %d per page", s.Capacity.Columns, s.Capacity.Rows, s.Capacity.PerPage()))
	printSheetStats(res.Stats.Products, res.Stats.Tags, res.Stats.Pages, false)

	if len(s.Pages) == 0 {
		printWarning("Nothing to print: no products or no content selected")
		return nil
	}
	for _, p := range s.Pages {
		printDetail("page %d: %s", p.Number, plural(len(p.Placements), "tag"))
	}
	fmt.Println()
	printNextStep("Render it", fmt.Sprintf("tagsheet render %s --size %d --paper %s", path, s.Size.ID, s.Paper.Name))
	return nil
}

// loadProducts imports path and keeps only ids, when given, in file order.
func loadProducts(path string, ids []string) ([]tag.Product, error) {
	products, err := io.Import(path)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		return products, nil
	}
	selected := catalog.Select(products, ids)
	if len(selected) < len(ids) {
		for _, id := range ids {
			if _, ok := catalog.Find(products, id); !ok {
				return nil, errors.New(errors.ErrCodeProductNotFound, "product %q not found in %s", id, path)
			}
		}
	}
	return selected, nil
}
