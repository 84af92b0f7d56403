package io

import (
	"testing"
	"time"

	"github.com/matzehuels/collage/pkg/config"
)

func names(infos []Info) []string {
	out := make([]string, len(infos))
	for i, in := range infos {
		out[i] = in.Name
	}
	return out
}

func TestSort(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC) }
	base := []Info{
		{Name: "c.jpg", Taken: day(1)},
		{Name: "a.jpg", Taken: day(3)},
		{Name: "b.jpg", Taken: day(1)},
	}

	tests := []struct {
		order config.SortOrder
		want  []string
	}{
		{config.SortName, []string{"a.jpg", "b.jpg", "c.jpg"}},
		{config.SortDate, []string{"b.jpg", "c.jpg", "a.jpg"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			infos := append([]Info(nil), base...)
			Sort(infos, tt.order)
			got := names(infos)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Sort(%s) = %v, want %v", tt.order, got, tt.want)
				}
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	infos := make([]Info, 7)
	tests := []struct {
		perPage int
		want    []int
	}{
		{0, []int{7}},
		{3, []int{3, 3, 1}},
		{7, []int{7}},
		{10, []int{7}},
		{1, []int{1, 1, 1, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		pages := Paginate(infos, tt.perPage)
		if len(pages) != len(tt.want) {
			t.Errorf("Paginate(7, %d) = %d pages, want %d", tt.perPage, len(pages), len(tt.want))
			continue
		}
		for i, p := range pages {
			if len(p) != tt.want[i] {
				t.Errorf("Paginate(7, %d) page %d = %d, want %d", tt.perPage, i, len(p), tt.want[i])
			}
		}
	}
	if got := Paginate(nil, 3); got != nil {
		t.Errorf("Paginate(nil) = %v, want nil", got)
	}
}
