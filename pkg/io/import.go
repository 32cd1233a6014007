package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagsheet/pkg/catalog"
	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// Format identifies a product file format.
type Format string

// Supported product file formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported product file %q (want .json, .toml or .csv)", path)
}

// productFile is the document shape shared by JSON and TOML.
type productFile struct {
	Products []tag.Product `json:"products" toml:"products"`
}

// Import reads, completes and validates the product file at path.
func Import(path string) ([]tag.Product, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "product file %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	products, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return products, nil
}

// Read decodes products in the given format and validates them.
func Read(r io.Reader, format Format) ([]tag.Product, error) {
	var (
		products []tag.Product
		err      error
	)
	switch format {
	case FormatJSON:
		products, err = ReadJSON(r)
	case FormatTOML:
		products, err = ReadTOML(r)
	case FormatCSV:
		products, err = ReadCSV(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported product format %q", format)
	}
	if err != nil {
		return nil, err
	}

	products = catalog.AssignIDs(products)
	if err := catalog.ValidateAll(products); err != nil {
		return nil, err
	}
	return products, nil
}

// ReadJSON decodes a JSON array of products or an object with a "products"
// array. It does not validate.
func ReadJSON(r io.Reader) ([]tag.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var products []tag.Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON products")
		}
		return products, nil
	}

	var doc productFile
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON products")
	}
	return doc.Products, nil
}

// ReadTOML decodes a TOML document with a [[products]] array. It does not
// validate.
func ReadTOML(r io.Reader) ([]tag.Product, error) {
	var doc productFile
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML products")
	}
	return doc.Products, nil
}

// csvColumns lists the recognised CSV header names in export order.
var csvColumns = []string{"id", "name", "code", "base_price", "sale_price", "brand_logo", "copies"}

// ReadCSV decodes products from CSV with a header row. It does not validate.
func ReadCSV(r io.Reader) ([]tag.Product, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read CSV header")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "CSV header must contain a name column")
	}

	var products []tag.Product
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read CSV line %d", line)
		}
		p, err := productFromRecord(rec, cols)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "CSV line %d", line)
		}
		products = append(products, p)
	}
	return products, nil
}

func productFromRecord(rec []string, cols map[string]int) (tag.Product, error) {
	field := func(name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	number := func(name string) (float64, error) {
		s := field(name)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return v, nil
	}

	p := tag.Product{
		ID:        field("id"),
		Name:      field("name"),
		Code:      field("code"),
		BrandLogo: field("brand_logo"),
	}
	var err error
	if p.BasePrice, err = number("base_price"); err != nil {
		return p, err
	}
	if p.SalePrice, err = number("sale_price"); err != nil {
		return p, err
	}
	if s := field("copies"); s != "" {
		if p.Copies, err = strconv.Atoi(s); err != nil {
			return p, fmt.Errorf("copies: %w", err)
		}
	}
	return p, nil
}
