package storefront

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if !m.resolved {
		return m.renderPlaceholder()
	}
	if m.width < minWidth || m.height < minHeight {
		return m.renderErrorBanner()
	}

	var body string
	switch m.overlay {
	case OverlayHelp:
		body = m.renderHelp()
	case OverlayThemePicker:
		body = m.renderThemePicker()
	default:
		body = m.renderRoute()
	}

	if m.showError {
		body = lipgloss.JoinVertical(lipgloss.Left, m.renderErrorBanner(), body)
	}

	if m.layout.Sidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", body)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// renderPlaceholder is shown until the persisted theme is known so the first
// themed frame is never a wrong one.
func (m Model) renderPlaceholder() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Loading preferences...")
}

func (m Model) renderErrorBanner() string {
	return m.styles.ErrorBanner.Render(m.errorMsg)
}

func (m Model) renderHeader() string {
	s := m.styles
	parts := []string{s.Logo.Render(brandName)}

	if m.layout.HeaderNav {
		parts = append(parts, "  ", m.renderNav(" "))
	}

	arrow := "▾"
	if !m.useUnicode {
		arrow = "v"
	}
	button := s.ThemeButton.Render(fmt.Sprintf("Theme: %s %s [t]", m.theme.Label(), arrow))

	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(button) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + button
	return s.Header.Render(line)
}

func (m Model) renderNav(sep string) string {
	items := make([]string, 0, len(routes))
	for _, r := range routes {
		if r == m.route {
			items = append(items, m.styles.NavActive.Render(r.String()))
		} else {
			items = append(items, m.styles.NavItem.Render(r.String()))
		}
	}
	return strings.Join(items, sep)
}

func (m Model) renderSidebar() string {
	s := m.styles
	lines := []string{s.SidebarTitle.Render("Navigation")}
	for _, r := range routes {
		marker := "  "
		style := s.NavItem
		if r == m.route {
			marker = "› "
			style = s.NavActive
		}
		lines = append(lines, marker+style.Render(r.String()))
	}
	lines = append(lines, "", s.Muted.Render(m.theme.Label()+" theme"))

	height := max(m.height-6, len(lines))
	return s.Sidebar.Height(height).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	hints := []string{"tab: pages", "t: theme", "?: help", "q: quit"}
	if m.route == RouteHome {
		hints = append([]string{"/: search", "←/→: page"}, hints...)
	}
	if m.route == RouteContact {
		hints = append([]string{"enter: edit", "ctrl+s: send"}, hints...)
	}

	copyright := fmt.Sprintf("© %d %s · %s", time.Now().Year(), brandName, footerTagline)
	return m.styles.Footer.Width(max(m.width-2, 1)).Render(
		lipgloss.JoinVertical(lipgloss.Left, copyright, strings.Join(hints, "  •  ")),
	)
}

func (m Model) renderRoute() string {
	switch m.route {
	case RouteAbout:
		return m.renderAbout()
	case RouteContact:
		return m.renderContact()
	default:
		return m.renderHome()
	}
}

func (m Model) renderHome() string {
	s := m.styles
	width := m.layout.contentWidth(m.width)

	hero := lipgloss.JoinVertical(
		lipgloss.Left,
		s.Title.Render(heroTitle),
		s.Subtitle.Width(width).Render(heroSubtitle),
	)

	sections := []string{hero, s.Section.Render(productsHead), m.renderSearch()}

	switch {
	case m.loading:
		sections = append(sections, m.renderLoading(width))
	case m.engine.FilteredCount() == 0:
		sections = append(sections, s.Muted.Render(fmt.Sprintf("No products found matching \"%s\"", m.engine.Query())))
	default:
		sections = append(sections, m.renderGrid(m.engine.Visible(), width))
		if m.engine.ShowControls() {
			sections = append(sections, m.renderPagination())
		}
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderSearch() string {
	style := m.styles.Search
	if m.focus == focusSearch {
		style = m.styles.SearchFocused
	}
	box := style.Render(m.search.View())
	if m.debouncer.Pending() {
		box = lipgloss.JoinHorizontal(lipgloss.Center, box, " ", m.spinner.View(), m.styles.Muted.Render(" searching..."))
	}
	return box
}

func (m Model) renderLoading(width int) string {
	cols := m.layout.columnsFor(width)
	cardWidth := cardWidthFor(width, cols)

	cards := make([]string, 0, m.engine.PageSize())
	for i := 0; i < m.engine.PageSize(); i++ {
		cards = append(cards, m.renderSkeletonCard(cardWidth))
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.spinner.View()+" Loading products...",
		joinGrid(cards, cols),
	)
}

func (m Model) renderSkeletonCard(width int) string {
	inner := max(width-4, 1)
	block := "░"
	if !m.useUnicode {
		block = "."
	}
	bar := m.styles.Skeleton.Render(strings.Repeat(block, inner))
	half := m.styles.Skeleton.Render(strings.Repeat(block, max(inner/2, 1)))
	return m.styles.Card.Width(width - 2).Render(strings.Join([]string{half, bar, bar, half}, "\n"))
}

func (m Model) renderGrid(products []catalog.Product, width int) string {
	cols := m.layout.columnsFor(width)
	cardWidth := cardWidthFor(width, cols)

	cards := make([]string, 0, len(products))
	for _, p := range products {
		cards = append(cards, m.renderCard(p, cardWidth))
	}
	return joinGrid(cards, cols)
}

func (m Model) renderCard(p catalog.Product, width int) string {
	s := m.styles
	inner := max(width-4, 1)

	star := "★"
	if !m.useUnicode {
		star = "*"
	}

	lines := []string{
		s.Badge.Render(truncate(p.Category, inner)),
		s.CardTitle.Render(truncate(p.Title, inner)),
		s.Muted.Render(truncate(p.Description, inner)),
		s.Price.Render(p.FormattedPrice()) + "  " + s.Rating.Render(fmt.Sprintf("%s %.1f", star, p.Rating.Rate)),
		s.Button.Render("Add to Cart"),
	}
	return s.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPagination() string {
	s := m.styles
	e := m.engine

	button := func(label string, enabled bool) string {
		if enabled {
			return s.Button.Render(label)
		}
		return s.ButtonDisabled.Render(label)
	}

	first, prev, next, last := "« First", "‹ Prev", "Next ›", "Last »"
	if !m.useUnicode {
		first, prev, next, last = "<< First", "< Prev", "Next >", "Last >>"
	}

	parts := []string{button(first, e.CanPrev()), button(prev, e.CanPrev())}
	for _, label := range e.Labels() {
		switch {
		case label.Ellipsis:
			ellipsis := label.String()
			if !m.useUnicode {
				ellipsis = "..."
			}
			parts = append(parts, s.Muted.Render(ellipsis))
		case label.Page == e.Page():
			parts = append(parts, s.PageActive.Render(label.String()))
		default:
			parts = append(parts, " "+label.String()+" ")
		}
	}
	parts = append(parts, button(next, e.CanNext()), button(last, e.CanNext()))

	from, to := e.Range()
	summary := s.Muted.Render(fmt.Sprintf("Showing %d to %d of %d results", from, to, e.FilteredCount()))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, parts...),
		summary,
	)
}

func (m Model) renderAbout() string {
	s := m.styles
	width := m.layout.contentWidth(m.width)

	mission := s.Card.Width(width - 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.Section.UnsetMarginTop().Render(missionTitle),
		s.Subtitle.Width(width-4).Render(missionBody),
	))

	cols := m.layout.columnsFor(width)
	if cols > 3 {
		cols = 3
	}
	cardWidth := cardWidthFor(width, cols)
	cards := make([]string, 0, 3)
	for i, opt := range theme.Options() {
		title := fmt.Sprintf("Theme %d: %s", i+1, opt.Label)
		if opt.ID == m.theme {
			title += " (active)"
		}
		cards = append(cards, s.Card.Width(cardWidth-2).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.CardTitle.Render(title),
			s.Muted.Width(cardWidth-4).Render(opt.Description),
		)))
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.Title.Render(aboutTitle),
		s.Subtitle.Width(width).Render(aboutSubtitle),
		"",
		mission,
		joinGrid(cards, cols),
	))
}

func (m Model) renderContact() string {
	s := m.styles
	width := m.layout.contentWidth(m.width)

	label := func(text string, field int) string {
		if m.focus == focusContact && m.contact.active == field {
			return s.Button.UnsetPadding().Render("› " + text)
		}
		return s.Muted.Render("  " + text)
	}

	form := lipgloss.JoinVertical(
		lipgloss.Left,
		s.Section.UnsetMarginTop().Render("Send us a Message"),
		label("Name", fieldName),
		"  "+m.contact.name.View(),
		label("Email", fieldEmail),
		"  "+m.contact.email.View(),
		label("Message", fieldMessage),
		m.contact.message.View(),
		"",
		s.Button.Render("[ Send Message ]")+s.Muted.Render(" ctrl+s"),
	)

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		s.Section.UnsetMarginTop().Render("Get in Touch"),
		"Email:   "+contactEmail,
		"Phone:   "+contactPhone,
		"Address: "+contactAddress,
	)

	sections := []string{
		s.Title.Render(contactTitle),
		s.Subtitle.Width(width).Render(contactSubtitle),
		"",
		s.Card.Width(width - 2).Render(form),
		s.Card.Width(width - 2).Render(info),
	}
	if m.notice != "" {
		sections = append(sections, s.Notice.Render(m.notice))
	}

	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHelp() string {
	s := m.styles
	return s.Overlay.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.Title.Render(brandName+" Help"),
		helpContent,
		s.Muted.Render("Press ? or Esc to close"),
	))
}

func (m Model) renderThemePicker() string {
	s := m.styles
	lines := []string{s.Title.Render("Choose a theme")}
	for i, opt := range theme.Options() {
		cursor := "  "
		if i == m.pickerCursor {
			cursor = "› "
		}
		marker := "○"
		if opt.ID == m.theme {
			marker = "●"
		}
		if !m.useUnicode {
			marker = "( )"
			if opt.ID == m.theme {
				marker = "(*)"
			}
		}
		name := fmt.Sprintf("%s%d. %s %s", cursor, i+1, marker, opt.Label)
		if i == m.pickerCursor {
			name = s.NavActive.UnsetPadding().Render(name)
		}
		lines = append(lines, name, s.Muted.Render("     "+opt.Description))
	}
	lines = append(lines, "", s.Muted.Render("enter: apply  •  esc: close"))
	return s.Overlay.Render(strings.Join(lines, "\n"))
}

func cardWidthFor(width, cols int) int {
	return max((width-(cols-1)*cardGap)/cols, minCardWidth/2)
}

// joinGrid lays cards out in rows of cols.
func joinGrid(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	rows := make([]string, 0, len(cards)/cols+1)
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i, card := range cards[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, width int) string {
	return runewidth.Truncate(strings.Join(strings.Fields(s), " "), width, "…")
}
