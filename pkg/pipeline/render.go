package pipeline

import (
	"fmt"

	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/render/sink"
)

// RenderSheet generates output artifacts for s in the requested formats.
//
// Page formats (svg, png, pdf) are skipped when the sheet has no pages;
// json and xlsx are always produced.
func RenderSheet(s *layout.Sheet, opts Options) (map[string][][]byte, error) {
	artifacts := make(map[string][][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if pageFormats[format] && len(s.Pages) == 0 {
			continue
		}
		data, err := renderFormat(s, opts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(s *layout.Sheet, opts Options, format string) ([][]byte, error) {
	svgOpts := buildSVGOptions(opts)

	switch format {
	case FormatSVG:
		return sink.RenderSVG(s, opts.Content, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(s, opts.Content, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		pdfOpts := []sink.PDFOption{sink.WithPDFCurrency(opts.Currency)}
		if opts.NoOutlines {
			pdfOpts = append(pdfOpts, sink.WithoutPDFOutlines())
		}
		return single(sink.RenderPDF(s, opts.Content, pdfOpts...))
	case FormatJSON:
		jsonOpts := []sink.JSONOption{sink.WithJSONCurrency(opts.Currency)}
		if opts.Faces {
			jsonOpts = append(jsonOpts, sink.WithJSONFaces())
		}
		return single(sink.RenderJSON(s, opts.Content, jsonOpts...))
	case FormatXLSX:
		return single(sink.RenderXLSX(s))
	default:
		return nil, ValidateFormat(format)
	}
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithCurrency(opts.Currency)}
	if opts.NoOutlines {
		svgOpts = append(svgOpts, sink.WithoutOutlines())
	}
	return svgOpts
}

func single(data []byte, err error) ([][]byte, error) {
	if err != nil {
		return nil, err
	}
	return [][]byte{data}, nil
}
