package storefront

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

// Palette is the color system of a theme.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
}

var (
	minimalistPalette = Palette{
		Primary: lipgloss.Color("#DC2626"), // red-600
		Accent:  lipgloss.Color("#EA580C"), // orange-600
		Text:    lipgloss.Color("#111827"),
		Muted:   lipgloss.Color("#6B7280"),
		Surface: lipgloss.Color("#F3F4F6"),
		Border:  lipgloss.Color("#D1D5DB"),
		Error:   lipgloss.Color("#B91C1C"),
	}

	darkPalette = Palette{
		Primary: lipgloss.Color("#9333EA"), // purple-600
		Accent:  lipgloss.Color("#93C5FD"), // blue-300
		Text:    lipgloss.Color("#F9FAFB"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Surface: lipgloss.Color("#1F2937"),
		Border:  lipgloss.Color("#374151"),
		Error:   lipgloss.Color("#F87171"),
	}

	colorfulPalette = Palette{
		Primary: lipgloss.Color("#9333EA"),
		Accent:  lipgloss.Color("#DB2777"), // pink-600
		Text:    lipgloss.Color("#374151"),
		Muted:   lipgloss.Color("#6B7280"),
		Surface: lipgloss.Color("#FDF2F8"),
		Border:  lipgloss.Color("#BFDBFE"),
		Error:   lipgloss.Color("#EF4444"),
	}
)

// Styles is the full style set for one theme.
type Styles struct {
	Palette Palette

	Logo        lipgloss.Style
	Header      lipgloss.Style
	NavItem     lipgloss.Style
	NavActive   lipgloss.Style
	ThemeButton lipgloss.Style

	Sidebar      lipgloss.Style
	SidebarTitle lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Muted    lipgloss.Style

	Search        lipgloss.Style
	SearchFocused lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Badge     lipgloss.Style
	Price     lipgloss.Style
	Rating    lipgloss.Style
	Skeleton  lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	PageActive     lipgloss.Style

	Footer      lipgloss.Style
	ErrorBanner lipgloss.Style
	Notice      lipgloss.Style
	Overlay     lipgloss.Style
	Spinner     lipgloss.Style
}

// StylesFor builds the style set for id.
func StylesFor(id theme.ID) Styles {
	layout := LayoutFor(id)

	var p Palette
	switch id {
	case theme.Dark:
		p = darkPalette
	case theme.Colorful:
		p = colorfulPalette
	default:
		p = minimalistPalette
	}

	s := Styles{Palette: p}

	s.Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Header = lipgloss.NewStyle().
		BorderStyle(layout.Border).
		BorderBottom(true).
		BorderForeground(p.Border).
		PaddingLeft(1).
		PaddingRight(1)

	s.NavItem = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	s.NavActive = s.NavItem.
		Foreground(p.Primary).
		Bold(true).
		Underline(true)

	s.ThemeButton = lipgloss.NewStyle().
		Foreground(p.Text).
		Padding(0, 1)

	s.Sidebar = lipgloss.NewStyle().
		Width(sidebarWidth-2).
		BorderStyle(layout.Border).
		BorderRight(true).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(1, 1)

	s.SidebarTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		MarginBottom(1)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		MarginTop(1)

	s.Muted = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Search = lipgloss.NewStyle().
		BorderStyle(layout.Border).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.SearchFocused = s.Search.
		BorderForeground(p.Primary)

	s.Card = lipgloss.NewStyle().
		BorderStyle(layout.Border).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.Badge = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Rating = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FACC15"))

	s.Skeleton = lipgloss.NewStyle().
		Foreground(p.Border)

	s.Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Padding(0, 1)

	s.ButtonDisabled = lipgloss.NewStyle().
		Foreground(p.Border).
		Faint(true).
		Padding(0, 1)

	s.PageActive = lipgloss.NewStyle().
		Bold(true).
		Reverse(true).
		Foreground(p.Primary).
		Padding(0, 1)

	s.Footer = lipgloss.NewStyle().
		Foreground(p.Muted).
		BorderStyle(layout.Border).
		BorderTop(true).
		BorderForeground(p.Border).
		PaddingLeft(1).
		MarginTop(1)

	s.ErrorBanner = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(p.Error).
		Padding(0, 2).
		MarginBottom(1)

	s.Notice = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		MarginTop(1)

	s.Overlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 3)

	s.Spinner = lipgloss.NewStyle().
		Foreground(p.Primary)

	if id == theme.Colorful {
		s.Title = s.Title.Italic(true)
		s.Section = s.Section.Foreground(p.Primary).Italic(true)
		s.Button = s.Button.Foreground(p.Accent)
	}

	return s
}
