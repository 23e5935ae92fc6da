package storefront

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

const errorDisplayDuration = 5 * time.Second

// loadCatalogCmd performs the single catalog fetch.
func loadCatalogCmd(ctx context.Context, c *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{State: c.Load(ctx)}
	}
}

// resolveThemeCmd reads the persisted theme once.
func resolveThemeCmd(ctx context.Context, store *theme.Store) tea.Cmd {
	return func() tea.Msg {
		return ThemeChangedMsg{Theme: store.Resolve(ctx)}
	}
}

// submitContactCmd acknowledges a validated contact request locally.
func submitContactCmd(ctx context.Context, req ContactRequest, logger ports.Logger) tea.Cmd {
	return func() tea.Msg {
		if logger != nil {
			logger.Info(ctx, "contact message acknowledged", "message_length", len(req.Message))
		}
		return ContactSubmittedMsg{Name: req.Name, Email: req.Email}
	}
}

// clearErrorAfterCmd dismisses the error banner after d.
func clearErrorAfterCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
