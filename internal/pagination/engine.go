package pagination

import (
	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
)

// Engine derives the filtered list from (items, query) and the visible page
// from (filtered, page, pageSize). It is a value type: copies share the
// immutable product slices but not the page cursor.
//
// Any change to items or query replaces the filtered list and forces page 1.
// Navigation never leaves [1, max(TotalPages, 1)].
type Engine struct {
	items    []catalog.Product
	filtered []catalog.Product
	query    string
	page     int
	pageSize int
}

// NewEngine creates an empty engine. A non-positive pageSize selects
// DefaultPageSize.
func NewEngine(pageSize int) Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Engine{
		filtered: []catalog.Product{},
		page:     1,
		pageSize: pageSize,
	}
}

// SetItems replaces the catalog contents and resets to the first page.
func (e *Engine) SetItems(items []catalog.Product) {
	e.items = items
	e.refilter()
}

// SetQuery applies a settled search query and resets to the first page. The
// same query again is a no-op.
func (e *Engine) SetQuery(query string) {
	if query == e.query {
		return
	}
	e.query = query
	e.refilter()
}

func (e *Engine) refilter() {
	e.filtered = Filter(e.items, e.query)
	e.page = 1
}

// Query returns the applied query.
func (e Engine) Query() string { return e.query }

// Page returns the current 1-based page.
func (e Engine) Page() int { return e.page }

// PageSize returns the number of items per page.
func (e Engine) PageSize() int { return e.pageSize }

// Filtered returns the products matching the query.
func (e Engine) Filtered() []catalog.Product { return e.filtered }

// FilteredCount returns len(Filtered()).
func (e Engine) FilteredCount() int { return len(e.filtered) }

// TotalPages returns the number of pages of the filtered list.
func (e Engine) TotalPages() int {
	return TotalPages(len(e.filtered), e.pageSize)
}

// Visible returns the products on the current page.
func (e Engine) Visible() []catalog.Product {
	return Slice(e.filtered, e.page, e.pageSize)
}

// Labels returns the page-number strip for the current page.
func (e Engine) Labels() []Label {
	return PageLabels(e.TotalPages(), e.page)
}

// Range returns the 1-based positions of the visible items.
func (e Engine) Range() (from, to int) {
	return Range(e.page, e.pageSize, len(e.filtered))
}

// ShowControls reports whether pagination controls should be rendered.
func (e Engine) ShowControls() bool {
	return e.TotalPages() > 1
}

// CanPrev reports whether First/Prev are enabled.
func (e Engine) CanPrev() bool {
	return e.page > 1
}

// CanNext reports whether Next/Last are enabled.
func (e Engine) CanNext() bool {
	return e.page < e.TotalPages()
}

// GoTo moves to page p if it is within [1, max(TotalPages, 1)].
func (e *Engine) GoTo(p int) bool {
	if p < 1 || p > max(e.TotalPages(), 1) {
		return false
	}
	e.page = p
	return true
}

// Next advances one page unless already on the last page.
func (e *Engine) Next() bool {
	if !e.CanNext() {
		return false
	}
	return e.GoTo(e.page + 1)
}

// Prev goes back one page unless already on the first page.
func (e *Engine) Prev() bool {
	if !e.CanPrev() {
		return false
	}
	return e.GoTo(e.page - 1)
}

// First jumps to page 1.
func (e *Engine) First() bool {
	if !e.CanPrev() {
		return false
	}
	return e.GoTo(1)
}

// Last jumps to the final page.
func (e *Engine) Last() bool {
	if !e.CanNext() {
		return false
	}
	return e.GoTo(e.TotalPages())
}
