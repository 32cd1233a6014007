package sink

import (
	"encoding/json"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	s := testSheet(t, 31, 17)
	data, err := RenderJSON(s, testContent)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Paper.Name != "a4" {
		t.Errorf("Paper = %q, want a4", out.Paper.Name)
	}
	if out.Capacity.Columns != 6 || out.Capacity.Rows != 5 || out.Capacity.PerPage != 30 {
		t.Errorf("Capacity = %+v, want 6×5", out.Capacity)
	}
	if out.TagCount != 31 {
		t.Errorf("TagCount = %d, want 31", out.TagCount)
	}
	if len(out.Pages) != 2 || len(out.Pages[0].Tags) != 30 || len(out.Pages[1].Tags) != 1 {
		t.Fatalf("unexpected pages: %d", len(out.Pages))
	}
	last := out.Pages[0].Tags[29]
	if last.Column != 5 || last.Row != 4 {
		t.Errorf("last slot = (%d,%d), want (5,4)", last.Column, last.Row)
	}
	if last.Face != nil {
		t.Error("faces included without WithJSONFaces")
	}
}

func TestRenderJSONWithFaces(t *testing.T) {
	s := testSheet(t, 1, 17)
	data, err := RenderJSON(s, testContent, WithJSONFaces(), WithJSONCurrency("€"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	f := out.Pages[0].Tags[0].Face
	if f == nil {
		t.Fatal("face missing")
	}
	if f.SalePrice != "€99" || f.Barcode != "P-1" || f.BasePrice != "" {
		t.Errorf("face = %+v", f)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(testSheet(t, 0, 17), nil)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if pages, ok := out["pages"].([]any); !ok || len(pages) != 0 {
		t.Errorf("pages = %v, want []", out["pages"])
	}
	if content, ok := out["content"].([]any); !ok || len(content) != 0 {
		t.Errorf("content = %v, want []", out["content"])
	}
}
