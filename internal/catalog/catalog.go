package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
)

// State is a read-only snapshot of the catalog.
type State struct {
	Items   []Product
	Loading bool
}

// Catalog owns the fetched product list. It is loaded exactly once; a failed
// load leaves the catalog empty, which consumers treat as "zero products".
type Catalog struct {
	src    ProductSource
	logger ports.Logger

	mu       sync.RWMutex
	items    []Product
	loading  bool
	started  bool
	disposed bool
	cancel   context.CancelFunc
}

// New creates a catalog in the loading state.
func New(src ProductSource, logger ports.Logger) *Catalog {
	return &Catalog{
		src:     src,
		logger:  logger,
		loading: true,
	}
}

// Load fetches the product collection. Only the first call fetches; later
// calls log a warning and return the current snapshot. Results that arrive
// after Dispose are discarded.
func (c *Catalog) Load(ctx context.Context) State {
	c.mu.Lock()
	if c.started || c.disposed {
		state := c.snapshotLocked()
		c.mu.Unlock()
		c.logWarn(ctx, "catalog load already performed, ignoring")
		return state
	}
	c.started = true
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	started := time.Now()
	products, err := c.src.Fetch(fetchCtx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel = nil
	if c.disposed {
		return c.snapshotLocked()
	}

	c.loading = false
	if err != nil {
		c.items = nil
		c.logError(ctx, "error fetching products", "error", err)
		return c.snapshotLocked()
	}

	c.items = products
	c.logInfo(ctx, "catalog loaded", "count", len(products), "duration_ms", time.Since(started).Milliseconds())
	return c.snapshotLocked()
}

// Snapshot returns the current state.
func (c *Catalog) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Dispose cancels an in-flight fetch and freezes the catalog state.
func (c *Catalog) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disposed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Catalog) snapshotLocked() State {
	return State{Items: c.items, Loading: c.loading}
}

func (c *Catalog) logInfo(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Info(ctx, msg, fields...)
	}
}

func (c *Catalog) logWarn(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(ctx, msg, fields...)
	}
}

func (c *Catalog) logError(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Error(ctx, msg, fields...)
	}
}
