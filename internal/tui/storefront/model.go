package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeswitch/internal/catalog"
	"github.com/alexisbeaulieu97/themeswitch/internal/logger"
	"github.com/alexisbeaulieu97/themeswitch/internal/pagination"
	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
	"github.com/alexisbeaulieu97/themeswitch/internal/search"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

// Options configures a storefront Model.
type Options struct {
	PageSize  int
	Debounce  time.Duration
	Scheduler search.Scheduler
	Logger    ports.Logger
	Unicode   bool
}

// Model is the storefront Bubble Tea model
type Model struct {
	// Collaborators
	catalog   *catalog.Catalog
	themes    *theme.Store
	debouncer *search.Debouncer
	bridge    *bridge
	life      *lifecycle
	logger    ports.Logger
	ctx       context.Context

	// Theme state
	theme    theme.ID
	resolved bool
	layout   Layout
	styles   Styles

	// Navigation
	route        Route
	overlay      Overlay
	pickerCursor int
	focus        focusTarget

	// Products
	engine  pagination.Engine
	loading bool
	spinner spinner.Model
	search  textinput.Model

	// Contact
	contact contactForm
	notice  string

	// Error state
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	useUnicode bool
}

// lifecycle owns teardown state shared by every copy of the Model.
type lifecycle struct {
	once        sync.Once
	cancel      context.CancelFunc
	unsubscribe func()
	closed      bool
	mu          sync.Mutex
}

// NewModel creates a storefront wired to the catalog and theme store. The
// caller must call Close once the program exits.
func NewModel(ctx context.Context, cat *catalog.Catalog, themes *theme.Store, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOp()
	}
	ctx, cancel := context.WithCancel(ctx)
	log = log.With("component", "storefront")

	b := newBridge(log)

	var debounceOpts []search.Option
	if opts.Scheduler != nil {
		debounceOpts = append(debounceOpts, search.WithScheduler(opts.Scheduler))
	}
	debouncer := search.New(opts.Debounce, func(q string) {
		b.send(QuerySettledMsg{Query: q})
	}, debounceOpts...)

	unsubscribe := themes.Subscribe(func(id theme.ID) {
		b.send(ThemeChangedMsg{Theme: id})
	})

	s := spinner.New()
	s.Spinner = spinner.Dot

	input := textinput.New()
	input.Placeholder = "Search products..."
	input.Prompt = "⌕ "
	input.CharLimit = 120

	m := Model{
		catalog:    cat,
		themes:     themes,
		debouncer:  debouncer,
		bridge:     b,
		life:       &lifecycle{cancel: cancel, unsubscribe: unsubscribe},
		logger:     log,
		ctx:        ctx,
		theme:      themes.Get(),
		resolved:   themes.Resolved(),
		route:      RouteHome,
		engine:     pagination.NewEngine(opts.PageSize),
		loading:    cat.Snapshot().Loading,
		spinner:    s,
		search:     input,
		contact:    newContactForm(),
		useUnicode: opts.Unicode,
	}
	m.applyTheme(m.theme)
	if !m.useUnicode {
		m.search.Prompt = "> "
		m.spinner.Spinner = spinner.Line
	}
	return m
}

// Init resolves the theme, starts the catalog fetch and begins listening for
// background events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		resolveThemeCmd(m.ctx, m.themes),
		loadCatalogCmd(m.ctx, m.catalog),
		m.bridge.listen(),
	)
}

// Close tears down background work: the debounce timer, the theme
// subscription, the in-flight fetch and the event bridge. It is safe to call
// more than once and from any copy of the model.
func (m Model) Close() {
	m.life.once.Do(func() {
		m.life.mu.Lock()
		m.life.closed = true
		m.life.mu.Unlock()

		m.debouncer.Stop()
		if m.life.unsubscribe != nil {
			m.life.unsubscribe()
		}
		m.catalog.Dispose()
		m.life.cancel()
		m.bridge.close()
	})
}

func (m Model) isClosed() bool {
	m.life.mu.Lock()
	defer m.life.mu.Unlock()
	return m.life.closed
}

// applyTheme swaps layout and styles for id.
func (m *Model) applyTheme(id theme.ID) {
	m.theme = id
	m.layout = LayoutFor(id)
	m.styles = StylesFor(id)
	m.spinner.Style = m.styles.Spinner
	m.resize()
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	w := min(m.layout.contentWidth(m.width)-4, 60)
	m.search.Width = max(w, 10)
	m.contact.setWidth(w)
}

// Accessors used by the CLI and tests.

// Theme returns the active theme.
func (m Model) Theme() theme.ID { return m.theme }

// Route returns the current page.
func (m Model) Route() Route { return m.route }

// Engine returns a copy of the filter/pagination state.
func (m Model) Engine() pagination.Engine { return m.engine }

// Loading reports whether the catalog fetch is still running.
func (m Model) Loading() bool { return m.loading }
