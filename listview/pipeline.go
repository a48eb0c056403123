// Package listview derives the rows a table screen displays
package listview

import (
	"sort"
	"strings"

	"github.com/amourdesk/amourdesk-go/models/records"
)

// Direction orders a sorted column.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter keeps the records where at least one designated searchable column
// contains the term, case-insensitively. An empty term returns the input
// unchanged, order preserved. No tokenization, no fuzzy matching.
func Filter[E records.Record](items []E, term string) []E {
	out := make([]E, 0, len(items))
	if term == "" {
		return append(out, items...)
	}
	needle := strings.ToLower(term)
	for _, item := range items {
		for _, key := range item.SearchKeys() {
			if strings.Contains(strings.ToLower(item.Field(key)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Sort orders records by the named column with a three-way comparison, the
// sign flipped for descending. The sort is stable, so ties keep their
// filter-step relative order. An empty key returns the input unchanged.
func Sort[E records.Record](items []E, key string, dir Direction) []E {
	out := make([]E, len(items))
	copy(out, items)
	if key == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		cmp := strings.Compare(out[i].Field(key), out[j].Field(key))
		if dir == Desc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// Paginate returns the slice [(page-1)*size, page*size). An out-of-range page
// yields an empty slice; the page is deliberately not clamped when the
// filtered set shrinks.
func Paginate[E any](items []E, page, size int) []E {
	if page < 1 || size < 1 {
		return []E{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []E{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]E, end-start)
	copy(out, items[start:end])
	return out
}

// TotalPages returns ceil(count/size); zero records means zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size < 1 {
		return 0
	}
	return (count + size - 1) / size
}
