package layout

import (
	"slices"
	"testing"

	"github.com/matzehuels/tagsheet/pkg/errors"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		capacity  int
		wantPages []int
	}{
		{"empty", 0, 30, nil},
		{"single partial page", 5, 30, []int{5}},
		{"exactly one page", 30, 30, []int{30}},
		{"one over", 31, 30, []int{30, 1}},
		{"several pages", 65, 30, []int{30, 30, 5}},
		{"capacity one", 3, 1, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := seq(tt.n)
			pages, err := Paginate(items, tt.capacity)
			if err != nil {
				t.Fatalf("Paginate() error: %v", err)
			}
			if len(pages) != len(tt.wantPages) {
				t.Fatalf("Paginate() returned %d pages, want %d", len(pages), len(tt.wantPages))
			}

			var flat []int
			for i, p := range pages {
				if len(p) != tt.wantPages[i] {
					t.Errorf("page %d has %d items, want %d", i, len(p), tt.wantPages[i])
				}
				flat = append(flat, p...)
			}
			if len(flat) != tt.n {
				t.Errorf("pages hold %d items, want %d", len(flat), tt.n)
			}
			if tt.n > 0 && !slices.Equal(flat, items) {
				t.Errorf("concatenated pages = %v, want %v", flat, items)
			}
		})
	}
}

func TestPaginatePageBounds(t *testing.T) {
	for n := 0; n <= 100; n++ {
		for _, c := range []int{1, 2, 7, 30, 101} {
			pages, err := Paginate(seq(n), c)
			if err != nil {
				t.Fatalf("Paginate(%d, %d) error: %v", n, c, err)
			}
			if n == 0 && len(pages) != 0 {
				t.Fatalf("Paginate(0, %d) returned %d pages", c, len(pages))
			}
			total := 0
			for i, p := range pages {
				total += len(p)
				last := i == len(pages)-1
				if !last && len(p) != c {
					t.Fatalf("Paginate(%d, %d): page %d has %d items", n, c, i, len(p))
				}
				if last && (len(p) < 1 || len(p) > c) {
					t.Fatalf("Paginate(%d, %d): last page has %d items", n, c, len(p))
				}
			}
			if total != n {
				t.Fatalf("Paginate(%d, %d) holds %d items", n, c, total)
			}
		}
	}
}

func TestPaginateZeroCapacity(t *testing.T) {
	for _, c := range []int{0, -3} {
		pages, err := Paginate(seq(5), c)
		if !errors.Is(err, errors.ErrCodeZeroCapacity) {
			t.Errorf("Paginate(capacity=%d) error = %v, want ZERO_CAPACITY", c, err)
		}
		if pages != nil {
			t.Errorf("Paginate(capacity=%d) returned pages", c)
		}
	}
}

func TestPaginatePagesDoNotAlias(t *testing.T) {
	items := seq(4)
	pages, err := Paginate(items, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = append(pages[0], 99)
	if pages[1][0] != 2 {
		t.Errorf("appending to page 0 overwrote page 1: %v", pages[1])
	}
}
