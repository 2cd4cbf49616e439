package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{name: "zero values", in: Params{}, wantPage: 1, wantLimit: DefaultLimit},
		{name: "negative page", in: Params{Page: -3, Limit: 10}, wantPage: 1, wantLimit: 10},
		{name: "limit over max", in: Params{Page: 2, Limit: 500}, wantPage: 2, wantLimit: MaxLimit},
		{name: "in range", in: Params{Page: 4, Limit: 25}, wantPage: 4, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Fatalf("Normalize(%+v) = %+v, want page=%d limit=%d", tt.in, got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 20}).Offset(); got != 0 {
		t.Fatalf("page 1 offset = %d, want 0", got)
	}
	if got := (Params{Page: 3, Limit: 20}).Offset(); got != 40 {
		t.Fatalf("page 3 offset = %d, want 40", got)
	}
	if got := (Params{Page: 0, Limit: 0}).Offset(); got != 0 {
		t.Fatalf("unnormalized offset = %d, want 0", got)
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{total: 0, limit: 20, want: 0},
		{total: 1, limit: 20, want: 1},
		{total: 20, limit: 20, want: 1},
		{total: 21, limit: 20, want: 2},
		{total: 120, limit: 20, want: 6},
		{total: 121, limit: 20, want: 7},
	}

	for _, tt := range tests {
		if got := PageCount(tt.total, tt.limit); got != tt.want {
			t.Fatalf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
