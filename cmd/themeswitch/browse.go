package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
	"github.com/alexisbeaulieu97/themeswitch/internal/preferences"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
	"github.com/alexisbeaulieu97/themeswitch/internal/tui/storefront"
)

// storefrontDeps builds the collaborators of the storefront model.
func storefrontDeps(app *AppContext, logger ports.Logger, sessionTheme string) (*catalog.Catalog, *theme.Store, error) {
	cfg := app.Config

	prefs := preferences.Open(cfg.PreferencesPath, logger.With("component", "preferences"))

	var store ports.PreferenceStore = prefs
	if sessionTheme != "" {
		id, ok := theme.Parse(sessionTheme)
		if !ok {
			return nil, nil, newCommandError("start storefront", fmt.Sprintf("applying theme %q", sessionTheme), fmt.Errorf("unknown theme"), validThemesHint())
		}
		store = theme.WithSessionOverride(prefs, id)
	}

	themes := theme.NewStore(store, logger.With("component", "theme"))
	source := catalog.NewHTTPSource(cfg.Endpoint, cfg.RequestTimeout, logger.With("component", "catalog"), catalog.WithUserAgent(userAgent()))
	return catalog.New(source, logger.With("component", "catalog")), themes, nil
}

func runStorefront(ctx context.Context, app *AppContext, logger ports.Logger, flags *rootFlags) error {
	cat, themes, err := storefrontDeps(app, logger, flags.theme)
	if err != nil {
		return err
	}

	m := storefront.NewModel(ctx, cat, themes, storefront.Options{
		PageSize: app.Config.PageSize,
		Debounce: app.Config.Debounce,
		Logger:   logger,
		Unicode:  supportsUnicode(os.Stdout),
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "storefront execution failed", "error", err)
		return fmt.Errorf("failed to run storefront: %w", err)
	}

	logger.Info(ctx, "storefront closed", "theme", themes.Get().String())
	return nil
}
