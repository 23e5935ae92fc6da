package theme

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
)

// PreferenceKey is the key under which the active theme is persisted.
const PreferenceKey = "theme"

// Listener receives the active theme after resolution and after every
// accepted Set.
type Listener func(ID)

// Store holds the active theme. The zero theme before resolution is Default,
// but consumers should render a neutral placeholder until Resolved is true.
type Store struct {
	prefs  ports.PreferenceStore
	logger ports.Logger

	mu        sync.RWMutex
	current   ID
	resolved  bool
	nextID    int
	listeners map[int]Listener
}

// NewStore creates a theme store backed by prefs.
func NewStore(prefs ports.PreferenceStore, logger ports.Logger) *Store {
	return &Store{
		prefs:     prefs,
		logger:    logger,
		current:   Default,
		listeners: make(map[int]Listener),
	}
}

// Get returns the active theme.
func (s *Store) Get() ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Resolved reports whether the persisted preference has been read.
func (s *Store) Resolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolved
}

// Resolve reads the persisted preference once and notifies listeners with
// the outcome. Unrecognized or missing values resolve to Default. Later calls
// return the current theme without touching storage or listeners.
func (s *Store) Resolve(ctx context.Context) ID {
	s.mu.Lock()
	if s.resolved {
		current := s.current
		s.mu.Unlock()
		return current
	}

	resolved := Default
	if s.prefs != nil {
		if raw, ok := s.prefs.Get(PreferenceKey); ok {
			if id, valid := Parse(raw); valid {
				resolved = id
			} else {
				s.logWarn(ctx, "ignoring unrecognized persisted theme", "value", raw)
			}
		}
	}
	s.current = resolved
	s.resolved = true
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.logDebug(ctx, "theme resolved", "theme", string(resolved))
	notify(listeners, resolved)
	return resolved
}

// Set activates value if it names a recognized theme, persists it and
// notifies listeners. Unrecognized values are ignored and Set returns false.
// A persistence failure is logged; the in-memory change stands.
func (s *Store) Set(value string) bool {
	id, ok := Parse(value)
	if !ok {
		return false
	}

	s.mu.Lock()
	s.current = id
	s.resolved = true
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(PreferenceKey, string(id)); err != nil {
			s.logWarn(context.Background(), "failed to persist theme", "theme", string(id), "error", err)
		}
	}

	notify(listeners, id)
	return true
}

// Subscribe registers fn for theme notifications. The returned function
// removes the registration and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) snapshotLocked() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.listeners[i]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []Listener, id ID) {
	for _, fn := range listeners {
		fn(id)
	}
}

func (s *Store) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(ctx, msg, fields...)
}

func (s *Store) logWarn(ctx context.Context, msg string, fields ...interface{}) {
	if s.logger == nil {
		return
	}
	s.logger.Warn(ctx, msg, fields...)
}
