package io

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// Export writes products to path in the format implied by its extension.
// The file is written to a temporary sibling first and renamed into place,
// keeping the permissions of an existing file (0644 for a new one).
func Export(products []tag.Product, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tagsheet-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, products, format); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Write encodes products in the given format.
func Write(w io.Writer, products []tag.Product, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, products)
	case FormatTOML:
		return WriteTOML(w, products)
	case FormatCSV:
		return WriteCSV(w, products)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported product format %q", format)
}

// WriteJSON writes products as an indented JSON array.
func WriteJSON(w io.Writer, products []tag.Product) error {
	if products == nil {
		products = []tag.Product{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(products)
}

// WriteTOML writes products as a [[products]] array of tables.
func WriteTOML(w io.Writer, products []tag.Product) error {
	return toml.NewEncoder(w).Encode(productFile{Products: products})
}

// WriteCSV writes products with a header row.
func WriteCSV(w io.Writer, products []tag.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, p := range products {
		rec := []string{
			p.ID,
			p.Name,
			p.Code,
			strconv.FormatFloat(p.BasePrice, 'f', -1, 64),
			strconv.FormatFloat(p.SalePrice, 'f', -1, 64),
			p.BrandLogo,
			strconv.Itoa(p.Copies),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
