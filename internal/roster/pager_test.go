package roster

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 9: 1, 10: 1, 11: 2, 25: 3, 30: 3, 31: 4}
	for n, want := range cases {
		if got := TotalPages(n); got != want {
			t.Fatalf("TotalPages(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestPageBounds_RowCounts(t *testing.T) {
	for _, n := range []int{1, 9, 10, 11, 25, 40} {
		total := TotalPages(n)
		for page := 1; page <= total; page++ {
			start, end := PageBounds(page, n)
			rows := end - start
			want := PageSize
			if page == total && n%PageSize != 0 {
				want = n % PageSize
			}
			if rows != want {
				t.Fatalf("n=%d page=%d rows=%d, want %d", n, page, rows, want)
			}
		}
	}
	if start, end := PageBounds(1, 0); start != 0 || end != 0 {
		t.Fatalf("PageBounds on empty = %d:%d, want 0:0", start, end)
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct{ page, total, want int }{
		{0, 3, 1},
		{2, 3, 2},
		{7, 3, 3},
		{5, 0, 1},
		{-1, 0, 1},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page, tc.total); got != tc.want {
			t.Fatalf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.total, got, tc.want)
		}
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name                 string
		current, total, span int
		want                 []int
	}{
		{"none", 1, 0, 5, nil},
		{"fits", 2, 3, 5, []int{1, 2, 3}},
		{"start", 1, 20, 5, []int{1, 2, 3, 4, 5}},
		{"middle", 10, 20, 5, []int{8, 9, 10, 11, 12}},
		{"end", 20, 20, 5, []int{16, 17, 18, 19, 20}},
		{"unbounded span", 3, 4, 0, []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PageWindow(tc.current, tc.total, tc.span)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PageWindow(%d, %d, %d) = %v, want %v", tc.current, tc.total, tc.span, got, tc.want)
			}
		})
	}
}
