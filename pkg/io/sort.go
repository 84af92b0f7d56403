package io

import (
	"cmp"
	"slices"

	"github.com/matzehuels/collage/pkg/config"
)

// Sort orders infos in place. SortName orders by filename; SortDate orders
// by capture date, oldest first, with filename breaking ties. Both are
// stable, so equal keys keep their scan order.
func Sort(infos []Info, order config.SortOrder) {
	switch order {
	case config.SortDate:
		slices.SortStableFunc(infos, func(a, b Info) int {
			if c := a.Taken.Compare(b.Taken); c != 0 {
				return c
			}
			return cmp.Compare(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(infos, func(a, b Info) int {
			return cmp.Compare(a.Name, b.Name)
		})
	}
}

// Paginate splits infos into consecutive pages of at most perPage entries.
// A perPage of 0 puts everything on one page.
func Paginate(infos []Info, perPage int) [][]Info {
	if len(infos) == 0 {
		return nil
	}
	if perPage <= 0 || perPage >= len(infos) {
		return [][]Info{infos}
	}
	var pages [][]Info
	for start := 0; start < len(infos); start += perPage {
		pages = append(pages, infos[start:min(start+perPage, len(infos))])
	}
	return pages
}
