package handler

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit page and limit", "?page=3&limit=10", 3, 10, 20},
		{"limit capped", "?limit=500", 1, 100, 0},
		{"invalid values fall back", "?page=abc&limit=-5", 1, 20, 0},
		{"zero page falls back", "?page=0", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/"+tt.query, nil)
			page, limit, offset := parsePagination(r)
			if page != tt.wantPage || limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("parsePagination(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.query, page, limit, offset, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestBuildMeta(t *testing.T) {
	meta := buildMeta(2, 20, 45)
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", meta.TotalPages)
	}
	if meta.Page != 2 || meta.Limit != 20 || meta.Total != 45 {
		t.Errorf("meta = %+v", meta)
	}

	exact := buildMeta(1, 10, 30)
	if exact.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", exact.TotalPages)
	}
}
