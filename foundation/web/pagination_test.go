package web

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values pass through", 3, 25, 3, 25},
		{"zero page falls back to first", 0, 25, 1, 25},
		{"negative page falls back to first", -4, 25, 1, 25},
		{"zero limit falls back to default", 3, 0, 3, 10},
		{"negative limit falls back to default", 3, -1, 3, 10},
		{"both invalid", 0, 0, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPage(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantPages int
	}{
		{"exact multiple", 30, 1, 10, 3},
		{"partial last page", 31, 1, 10, 4},
		{"fewer records than one page", 3, 1, 10, 1},
		{"no records", 0, 1, 10, 0},
		{"clamped inputs", 15, 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.limit)
			if p.Pages != tt.wantPages {
				t.Errorf("NewPagination(%d, %d, %d).Pages = %d, want %d",
					tt.total, tt.page, tt.limit, p.Pages, tt.wantPages)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
			if p.Page < 1 || p.Limit < 1 {
				t.Errorf("pagination not clamped: page=%d limit=%d", p.Page, p.Limit)
			}
		})
	}
}
