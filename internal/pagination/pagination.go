package pagination

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
)

// DefaultPageSize is the number of products shown per page.
const DefaultPageSize = 4

// maxLabels is the widest page-number strip rendered before collapsing.
const maxLabels = 7

// Filter returns the products whose title contains query, ignoring case.
// Order is preserved and an empty query matches everything. The result never
// aliases items.
func Filter(items []catalog.Product, query string) []catalog.Product {
	out := make([]catalog.Product, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			out = append(out, item)
		}
	}
	return out
}

// TotalPages is ceil(count/pageSize); zero when there is nothing to show.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	return pages
}

// Slice returns the items on page (1-based). Out-of-range pages yield an
// empty slice; callers are expected to request valid pages only.
func Slice[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// Range returns the 1-based positions of the first and last item on page,
// as shown in "Showing 5 to 8 of 20 results".
func Range(page, pageSize, total int) (from, to int) {
	if total <= 0 || page < 1 || pageSize <= 0 {
		return 0, 0
	}
	from = min((page-1)*pageSize+1, total)
	to = min(page*pageSize, total)
	return from, to
}

// Label is one slot of the page-number strip: a page or an ellipsis.
type Label struct {
	Page     int
	Ellipsis bool
}

func (l Label) String() string {
	if l.Ellipsis {
		return "…"
	}
	return strconv.Itoa(l.Page)
}

var ellipsis = Label{Ellipsis: true}

// PageLabels builds the page-number strip for the navigation controls. It
// returns at most seven slots and keeps the first and last page visible when
// the strip collapses. The rules are checked in order; the first match wins.
func PageLabels(totalPages, currentPage int) []Label {
	if totalPages <= 0 {
		return []Label{}
	}

	if totalPages <= maxLabels {
		return pageRange(1, totalPages)
	}

	switch {
	case currentPage <= 4:
		labels := pageRange(1, 5)
		return append(labels, ellipsis, Label{Page: totalPages})
	case currentPage >= totalPages-3:
		labels := []Label{{Page: 1}, ellipsis}
		return append(labels, pageRange(totalPages-4, totalPages)...)
	default:
		labels := []Label{{Page: 1}, ellipsis}
		labels = append(labels, pageRange(currentPage-1, currentPage+1)...)
		return append(labels, ellipsis, Label{Page: totalPages})
	}
}

func pageRange(from, to int) []Label {
	labels := make([]Label, 0, to-from+1)
	for p := from; p <= to; p++ {
		labels = append(labels, Label{Page: p})
	}
	return labels
}
