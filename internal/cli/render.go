package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/pipeline"
)

// renderOpts holds the output flags of the render command.
type renderOpts struct {
	formats    string  // comma-separated formats, empty uses the config
	output     string  // output directory
	name       string  // base file name, defaults to the input file stem
	scale      float64 // PNG scale factor
	noOutlines bool    // omit cut outlines
	noCache    bool    // bypass the artifact cache
	refresh    bool    // re-render and overwrite cached artifacts
}

// renderCommand creates the render command, which plans and renders a
// product file to one or more output formats.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags layoutFlags
		ro    renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [products]",
		Short: "Render printable tag sheets for a product file",
		Long: `Render lays out a product file and writes the sheets in the requested formats.

Page formats (svg, png) produce one file per page named <name>-p<N>.<ext>,
or <name>.<ext> when the sheet has a single page. pdf, json and xlsx always
produce a single <name>.<ext>. PNG needs rsvg-convert on the PATH.`,
		Example: `  tagsheet render products.json -f svg,pdf -o out
  tagsheet render products.csv --size 4 --paper a3 -f xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, flags)
			if err != nil {
				return err
			}
			if err := ro.apply(&opts); err != nil {
				return err
			}
			if ro.output == "" {
				ro.output = c.Config.Render.Output
			}
			return c.runRender(cmd.Context(), args[0], splitIDs(flags.ids), opts, ro)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.ids, "ids", "", "only these product IDs (comma-separated)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg, png, pdf, json, xlsx (comma-separated)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&ro.name, "name", "", "base file name (default: input file name)")
	cmd.Flags().Float64Var(&ro.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&ro.noOutlines, "no-outlines", false, "omit tag cut outlines")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&ro.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// apply checks the render flags and copies them into opts. The base name
// must stay inside the output directory.
func (ro renderOpts) apply(opts *pipeline.Options) error {
	if ro.name != "" {
		if err := errors.ValidatePath(ro.name); err != nil {
			return err
		}
	}
	if ro.formats != "" {
		formats, err := pipeline.ParseFormats(ro.formats)
		if err != nil {
			return err
		}
		opts.Formats = formats
	}
	if ro.scale != 0 {
		opts.Scale = ro.scale
	}
	if ro.noOutlines {
		opts.NoOutlines = true
	}
	opts.Refresh = ro.refresh
	return nil
}

func (c *CLI) runRender(ctx context.Context, input string, ids []string, opts pipeline.Options, ro renderOpts) error {
	products, err := loadProducts(input, ids)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spin := newSpinner(ctx, fmt.Sprintf("Rendering %s", strings.Join(opts.Formats, ", ")))
	spin.Start()
	res, err := runner.Render(ctx, products, opts)
	if err != nil {
		spin.StopWithError("Render failed")
		return err
	}
	spin.Stop()
	prog.done("rendered", "formats", strings.Join(opts.Formats, ","), "pages", res.Stats.Pages)

	if res.Stats.Pages == 0 {
		printWarning("Sheet has no pages; page formats were skipped")
	}

	name := ro.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	paths, err := writeArtifacts(ro.output, name, res.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", plural(len(paths), "file"))
	printSheetStats(res.Stats.Products, res.Stats.Tags, res.Stats.Pages, res.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes every artifact under dir and returns the paths in
// format order.
func writeArtifacts(dir, name string, artifacts map[string][][]byte) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dir, filepath.Dir(name)), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	var paths []string
	for _, format := range formats {
		for i, data := range artifacts[format] {
			path := filepath.Join(dir, artifactName(name, format, i, len(artifacts[format])))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// artifactName returns name.ext for single files and name-pN.ext for pages.
func artifactName(name, format string, index, total int) string {
	if total == 1 {
		return name + "." + format
	}
	return fmt.Sprintf("%s-p%d.%s", name, index+1, format)
}
