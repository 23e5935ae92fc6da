package storefront

import (
	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

// Route identifies one of the storefront pages.
type Route int

const (
	RouteHome Route = iota
	RouteAbout
	RouteContact
)

var routes = []Route{RouteHome, RouteAbout, RouteContact}

func (r Route) String() string {
	switch r {
	case RouteAbout:
		return "About"
	case RouteContact:
		return "Contact"
	default:
		return "Home"
	}
}

// Overlay determines which modal, if any, is drawn over the page.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayThemePicker
)

type focusTarget int

const (
	focusNone focusTarget = iota
	focusSearch
	focusContact
)

// Theme Messages

// ThemeChangedMsg carries the active theme after resolution or selection.
type ThemeChangedMsg struct {
	Theme theme.ID
}

// Search Messages

// QuerySettledMsg carries a debounced search query.
type QuerySettledMsg struct {
	Query string
}

// Catalog Messages

// CatalogLoadedMsg indicates the product fetch finished, successfully or not.
type CatalogLoadedMsg struct {
	State catalog.State
}

// Contact Messages

// ContactSubmittedMsg acknowledges a valid contact form submission.
type ContactSubmittedMsg struct {
	Name  string
	Email string
}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}

// bridgedMsg wraps events delivered through the bridge so the listener can be
// re-armed exactly once per delivery.
type bridgedMsg struct {
	inner interface{}
}
