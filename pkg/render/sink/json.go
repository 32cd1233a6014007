package sink

import (
	"encoding/json"

	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/render"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	face  render.FaceOptions
	faces bool
}

// WithJSONFaces includes the printed face of every tag, so consumers can
// reproduce the sheet without re-deriving content rules.
func WithJSONFaces() JSONOption { return func(r *jsonRenderer) { r.faces = true } }

// WithJSONCurrency sets the currency symbol used for faces.
func WithJSONCurrency(c string) JSONOption { return func(r *jsonRenderer) { r.face.Currency = c } }

type jsonOutput struct {
	Paper    jsonPaper     `json:"paper"`
	Size     tag.TagSize   `json:"size"`
	Capacity jsonCapacity  `json:"capacity"`
	Content  []tag.Content `json:"content"`
	TagCount int           `json:"tag_count"`
	Pages    []jsonPage    `json:"pages"`
}

type jsonPaper struct {
	Name     tag.PaperSize `json:"name"`
	WidthMm  float64       `json:"width_mm"`
	HeightMm float64       `json:"height_mm"`
}

type jsonCapacity struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	PerPage int `json:"per_page"`
}

type jsonPage struct {
	Number int       `json:"number"`
	Tags   []jsonTag `json:"tags"`
}

type jsonTag struct {
	layout.Slot
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Copy      int       `json:"copy,omitempty"`
	Face      *jsonFace `json:"face,omitempty"`
}

type jsonFace struct {
	Brand     string `json:"brand,omitempty"`
	Logo      string `json:"logo,omitempty"`
	Name      string `json:"name,omitempty"`
	Code      string `json:"code,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
	QRCode    string `json:"qr_code,omitempty"`
	BasePrice string `json:"base_price,omitempty"`
	SalePrice string `json:"sale_price,omitempty"`
	Struck    bool   `json:"struck,omitempty"`
}

// RenderJSON exports the sheet's placement data.
func RenderJSON(s *layout.Sheet, content []tag.Content, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Paper: jsonPaper{Name: s.Paper.Name, WidthMm: s.Paper.WidthMm, HeightMm: s.Paper.HeightMm},
		Size:  s.Size,
		Capacity: jsonCapacity{
			Columns: s.Capacity.Columns,
			Rows:    s.Capacity.Rows,
			PerPage: s.Capacity.PerPage(),
		},
		Content:  tag.NormalizeContent(content),
		TagCount: s.TagCount(),
		Pages:    make([]jsonPage, 0, len(s.Pages)),
	}

	for _, p := range s.Pages {
		jp := jsonPage{Number: p.Number, Tags: make([]jsonTag, 0, len(p.Placements))}
		for _, pl := range p.Placements {
			jt := jsonTag{
				Slot:      pl.Slot,
				ProductID: pl.Product.ID,
				Name:      pl.Product.Name,
				Code:      pl.Product.Code,
				Copy:      pl.Copy,
			}
			if r.faces {
				f := render.BuildFace(pl.Product, content, s.Size, r.face)
				jt.Face = &jsonFace{
					Brand: f.Brand, Logo: f.Logo, Name: f.Name, Code: f.Code,
					Barcode: f.Barcode, QRCode: f.QRCode,
					BasePrice: f.BasePrice, SalePrice: f.SalePrice, Struck: f.Struck,
				}
			}
			jp.Tags = append(jp.Tags, jt)
		}
		out.Pages = append(out.Pages, jp)
	}

	return json.MarshalIndent(out, "", "  ")
}
