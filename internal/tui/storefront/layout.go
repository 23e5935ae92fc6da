package storefront

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

const (
	sidebarWidth = 24
	minCardWidth = 26
	cardGap      = 1
)

// Layout describes the structural choices a theme makes, independent of color.
type Layout struct {
	Sidebar   bool
	HeaderNav bool
	Columns   int
	Border    lipgloss.Border
}

// LayoutFor returns the layout for id. Unknown identifiers get the default
// layout.
func LayoutFor(id theme.ID) Layout {
	switch id {
	case theme.Dark:
		return Layout{Sidebar: true, HeaderNav: false, Columns: 3, Border: lipgloss.NormalBorder()}
	case theme.Colorful:
		return Layout{Sidebar: false, HeaderNav: true, Columns: 4, Border: lipgloss.RoundedBorder()}
	default:
		return Layout{Sidebar: false, HeaderNav: true, Columns: 4, Border: lipgloss.NormalBorder()}
	}
}

// columnsFor narrows the grid when width cannot fit the theme's column count.
func (l Layout) columnsFor(width int) int {
	cols := l.Columns
	for cols > 1 && cols*minCardWidth+(cols-1)*cardGap > width {
		cols--
	}
	return max(cols, 1)
}

// contentWidth is the space left for the page body.
func (l Layout) contentWidth(width int) int {
	if l.Sidebar {
		width -= sidebarWidth
	}
	return max(width-2, minCardWidth)
}
