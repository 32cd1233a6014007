package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/catalog"
	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/io"
	"github.com/matzehuels/tagsheet/pkg/render"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// catalogCommand groups the product file editing subcommands. Every edit
// reads the whole file, applies one transition and writes it back.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Edit and list product files",
	}

	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogAddCommand())
	cmd.AddCommand(c.catalogUpdateCommand())
	cmd.AddCommand(c.catalogRemoveCommand())

	return cmd
}

// draftFlags are the editable product fields.
type draftFlags struct {
	name      string
	code      string
	basePrice float64
	salePrice float64
	brandLogo string
	copies    int
}

func (f *draftFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "product name")
	fs.StringVar(&f.code, "code", "", "product code (SKU)")
	fs.Float64Var(&f.basePrice, "base", 0, "base price")
	fs.Float64Var(&f.salePrice, "sale", 0, "sale price (default: base price)")
	fs.StringVar(&f.brandLogo, "brand", "", "brand logo text or URL")
	fs.IntVar(&f.copies, "copies", 0, "number of tags to print")
}

// applyTo overwrites the fields of p whose flags were set on cmd.
func (f draftFlags) applyTo(cmd *cobra.Command, p tag.Product) tag.Product {
	changed := cmd.Flags().Changed
	if changed("name") {
		p.Name = f.name
	}
	if changed("code") {
		p.Code = f.code
	}
	if changed("base") {
		p.BasePrice = f.basePrice
	}
	if changed("sale") {
		p.SalePrice = f.salePrice
	}
	if changed("brand") {
		p.BrandLogo = f.brandLogo
	}
	if changed("copies") {
		p.Copies = f.copies
	}
	return p
}

// loadCatalog reads path; a missing file is an empty catalogue.
func loadCatalog(path string) ([]tag.Product, error) {
	products, err := io.Import(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return nil, nil
	}
	return products, err
}

func (c *CLI) catalogListCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List the products in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := io.Import(args[0])
			if err != nil {
				return err
			}
			if currency == "" {
				currency = c.Config.Layout.Currency
			}
			if len(products) == 0 {
				printInfo("No products in %s", args[0])
				return nil
			}
			fmt.Println(productsTable(products, currency))
			printDetail("%s, %s", plural(len(products), "product"), plural(tagTotal(products), "tag"))
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "currency symbol")
	return cmd
}

func (c *CLI) catalogAddCommand() *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:     "add [file]",
		Short:   "Add a product, creating the file if needed",
		Example: `  tagsheet catalog add products.json --name "Green Tea" --code GT-100 --base 250 --sale 199`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := loadCatalog(args[0])
			if err != nil {
				return err
			}
			sale := f.salePrice
			if !cmd.Flags().Changed("sale") {
				sale = f.basePrice
			}
			next, p, err := catalog.Add(products, catalog.Draft{
				Name:      f.name,
				Code:      f.code,
				BasePrice: f.basePrice,
				SalePrice: sale,
				BrandLogo: f.brandLogo,
				Copies:    f.copies,
			})
			if err != nil {
				return err
			}
			if err := io.Export(next, args[0]); err != nil {
				return err
			}
			printSuccess("Added %s", p.Name)
			printDetail("id: %s", p.ID)
			return nil
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) catalogUpdateCommand() *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "update [file] [id]",
		Short: "Change fields of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := io.Import(args[0])
			if err != nil {
				return err
			}
			p, ok := catalog.Find(products, args[1])
			if !ok {
				return errors.New(errors.ErrCodeProductNotFound, "product %q not found in %s", args[1], args[0])
			}
			next, err := catalog.Update(products, f.applyTo(cmd, p))
			if err != nil {
				return err
			}
			if err := io.Export(next, args[0]); err != nil {
				return err
			}
			printSuccess("Updated %s", args[1])
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func (c *CLI) catalogRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [file] [id...]",
		Short: "Remove products by ID",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := io.Import(args[0])
			if err != nil {
				return err
			}
			for _, id := range args[1:] {
				if products, err = catalog.Remove(products, id); err != nil {
					return err
				}
			}
			if err := io.Export(products, args[0]); err != nil {
				return err
			}
			printSuccess("Removed %s", plural(len(args)-1, "product"))
			return nil
		},
	}
}

func productsTable(products []tag.Product, currency string) string {
	rows := make([][]string, len(products))
	for i, p := range products {
		id := p.ID
		if len(id) > 8 {
			id = id[:8]
		}
		rows[i] = []string{
			id,
			p.Name,
			p.Code,
			render.FormatPrice(currency, p.BasePrice),
			render.FormatPrice(currency, p.SalePrice),
			fmt.Sprintf("%d", p.TagCount()),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Code", "Base", "Sale", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 4 && row >= 0 && row < len(products) && products[row].OnSale() {
				return base.Foreground(colorYellow)
			}
			return base.Foreground(colorWhite)
		}).
		Render()
}

func tagTotal(products []tag.Product) int {
	n := 0
	for _, p := range products {
		n += p.TagCount()
	}
	return n
}

// splitIDs parses a comma-separated --ids flag; empty means all products.
func splitIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
