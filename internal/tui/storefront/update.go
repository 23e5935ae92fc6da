package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

const (
	minWidth  = 60
	minHeight = 20
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.isClosed() {
		return m, nil
	}

	switch msg := msg.(type) {

	case bridgedMsg:
		next, cmd := m.Update(msg.inner)
		return next, tea.Batch(cmd, m.bridge.listen())

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ThemeChangedMsg:
		if !msg.Theme.Valid() {
			return m, nil
		}
		m.resolved = true
		if msg.Theme != m.theme {
			m.applyTheme(msg.Theme)
		}
		return m, nil

	case QuerySettledMsg:
		m.engine.SetQuery(msg.Query)
		return m, nil

	case CatalogLoadedMsg:
		m.loading = msg.State.Loading
		m.engine.SetItems(msg.State.Items)
		return m, nil

	case ContactSubmittedMsg:
		m.contact.reset()
		m.contact.blur()
		m.focus = focusNone
		m.notice = fmt.Sprintf("Thanks, %s! We'll reply to %s soon.", msg.Name, msg.Email)
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, clearErrorAfterCmd(errorDisplayDuration)

	case ClearErrorMsg:
		if strings.HasPrefix(m.errorMsg, "Terminal too small") {
			return m, nil
		}
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	if m.focus != focusNone {
		return m.updateFocused(msg)
	}
	return m, nil
}

// updateFocused forwards non-key messages such as cursor blinks to the
// focused input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusContact:
		cmd = m.contact.update(msg)
	}
	return m, cmd
}

// handleKeyPress routes keys to the overlay, the focused input or the page.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case OverlayHelp:
		return m.handleHelpKeys(msg)
	case OverlayThemePicker:
		return m.handlePickerKeys(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	case focusContact:
		return m.handleContactKeys(msg)
	}

	return m.handlePageKeys(msg)
}

func (m Model) handlePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.overlay = OverlayHelp
		return m, nil

	case "t":
		m.openPicker()
		return m, nil

	case "tab":
		m.setRoute(m.route + 1)
		return m, nil

	case "shift+tab":
		m.setRoute(m.route - 1)
		return m, nil

	case "x", "esc":
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		m.notice = ""
		return m, nil
	}

	switch m.route {
	case RouteHome:
		return m.handleHomeKeys(msg)
	case RouteContact:
		if msg.String() == "enter" || msg.String() == "i" {
			m.focus = focusContact
			m.notice = ""
			cmd := m.contact.focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd
	case "left", "h":
		m.engine.Prev()
	case "right", "l":
		m.engine.Next()
	case "g", "home":
		m.engine.First()
	case "G", "end":
		m.engine.Last()
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		m.focus = focusNone
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.debouncer.OnInput(after)
	}
	return m, cmd
}

func (m Model) handleContactKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.contact.blur()
		m.focus = focusNone
		return m, nil
	case "tab":
		cmd := m.contact.move(1)
		return m, cmd
	case "shift+tab":
		cmd := m.contact.move(-1)
		return m, cmd
	case "enter":
		if m.contact.active != fieldMessage {
			cmd := m.contact.move(1)
			return m, cmd
		}
	case "ctrl+s":
		req := m.contact.request()
		if err := req.Validate(); err != nil {
			return m, func() tea.Msg { return ErrorMsg{Message: err.Error()} }
		}
		return m, submitContactCmd(m.ctx, req, m.logger)
	}

	cmd := m.contact.update(msg)
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc":
		m.overlay = OverlayNone
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := theme.Options()

	switch msg.String() {
	case "esc", "t":
		m.overlay = OverlayNone
	case "up", "k":
		m.pickerCursor = (m.pickerCursor - 1 + len(options)) % len(options)
	case "down", "j":
		m.pickerCursor = (m.pickerCursor + 1) % len(options)
	case "1", "2", "3":
		index := int(msg.String()[0] - '1')
		if index < len(options) {
			m.pickerCursor = index
			m.selectTheme(options[index].ID)
		}
	case "enter", " ":
		m.selectTheme(options[m.pickerCursor].ID)
	}
	return m, nil
}

func (m *Model) openPicker() {
	m.overlay = OverlayThemePicker
	m.pickerCursor = 0
	for i, opt := range theme.Options() {
		if opt.ID == m.theme {
			m.pickerCursor = i
		}
	}
}

// selectTheme applies id through the store so it is persisted and broadcast.
func (m *Model) selectTheme(id theme.ID) {
	m.overlay = OverlayNone
	if !m.themes.Set(string(id)) {
		return
	}
	m.resolved = true
	if id != m.theme {
		m.applyTheme(id)
	}
}

func (m *Model) setRoute(r Route) {
	n := Route(len(routes))
	m.route = (r%n + n) % n
	m.notice = ""
}
