package storefront

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/logger"
	"github.com/alexisbeaulieu97/themeswitch/internal/preferences"
	"github.com/alexisbeaulieu97/themeswitch/internal/search"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

type staticSource struct {
	items []catalog.Product
	err   error
}

func (s staticSource) Fetch(context.Context) ([]catalog.Product, error) {
	return s.items, s.err
}

// captureScheduler records scheduled callbacks; fireLatest runs the most
// recent one that has not been stopped.
type captureScheduler struct {
	mu     sync.Mutex
	timers []*captureTimer
}

type captureTimer struct {
	fn      func()
	stopped bool
}

func (t *captureTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *captureScheduler) AfterFunc(_ time.Duration, f func()) search.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &captureTimer{fn: f}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *captureScheduler) fireLatest() {
	c.mu.Lock()
	var latest *captureTimer
	for i := len(c.timers) - 1; i >= 0; i-- {
		if !c.timers[i].stopped {
			latest = c.timers[i]
			break
		}
	}
	c.mu.Unlock()
	if latest != nil {
		latest.stopped = true
		latest.fn()
	}
}

type harness struct {
	model     Model
	prefs     *preferences.FileStore
	themes    *theme.Store
	catalog   *catalog.Catalog
	scheduler *captureScheduler
}

func storeProducts() []catalog.Product {
	titles := []string{
		"Fjallraven Backpack",
		"Mens Casual Premium Slim Fit T-Shirts",
		"Mens Cotton Jacket",
		"Mens Casual Slim Fit",
		"Gold Dragon Bracelet",
		"Solid Gold Petite Micropave",
		"White Gold Plated Princess",
		"Pierced Owl Rose Gold Plated Earrings",
		"WD 2TB Portable Hard Drive",
		"SanDisk SSD PLUS 1TB",
		"Silicon Power 256GB SSD",
		"WD 4TB Gaming Drive",
		"Acer 21.5 inch Monitor",
		"Samsung 49-Inch Gaming Monitor",
		"Womens 3-in-1 Snowboard Jacket",
		"Womens Faux Leather Moto Biker Jacket",
		"Rain Jacket Women Windbreaker",
		"MBJ Womens Solid Short Sleeve Boat Neck",
		"Opna Womens Short Sleeve Moisture Shirt",
		"DANVOUY Womens T Shirt Casual",
	}
	out := make([]catalog.Product, 0, len(titles))
	for i, title := range titles {
		out = append(out, catalog.Product{
			ID:       catalog.ProductID(fmt.Sprint(i + 1)),
			Title:    title,
			Price:    10 + float64(i),
			Category: "general",
			Rating:   catalog.Rating{Rate: 4.1, Count: 100},
		})
	}
	return out
}

func newHarness(t *testing.T, persisted string, src catalog.ProductSource) *harness {
	t.Helper()

	prefs, err := preferences.NewFileStore(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)
	if persisted != "" {
		require.NoError(t, prefs.Set(theme.PreferenceKey, persisted))
	}
	return newHarnessWithPreferences(t, prefs, src)
}

func newHarnessWithPreferences(t *testing.T, prefs *preferences.FileStore, src catalog.ProductSource) *harness {
	t.Helper()

	if src == nil {
		src = staticSource{items: storeProducts()}
	}

	h := &harness{
		prefs:     prefs,
		themes:    theme.NewStore(prefs, logger.NewNoOp()),
		scheduler: &captureScheduler{},
	}
	h.catalog = catalog.New(src, logger.NewNoOp())
	h.model = NewModel(context.Background(), h.catalog, h.themes, Options{
		PageSize:  4,
		Scheduler: h.scheduler,
		Unicode:   true,
	})
	t.Cleanup(h.model.Close)

	h.send(tea.WindowSizeMsg{Width: 140, Height: 50})
	return h
}

// send runs msg through Update and keeps the resulting model.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

// run executes cmd synchronously and feeds its message back into Update.
func (h *harness) run(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return h.send(cmd())
}

func (h *harness) resolveTheme() {
	h.run(resolveThemeCmd(context.Background(), h.themes))
	h.drain()
}

func (h *harness) loadCatalog() {
	h.run(loadCatalogCmd(context.Background(), h.catalog))
}

func (h *harness) ready() {
	h.resolveTheme()
	h.loadCatalog()
}

// drain delivers every event queued on the bridge.
func (h *harness) drain() {
	for {
		select {
		case msg := <-h.model.bridge.ch:
			h.send(msg)
		default:
			return
		}
	}
}

func (h *harness) key(k string) tea.Cmd {
	return h.send(keyMsg(k))
}

func (h *harness) typeText(text string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}
