package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
)

// sessionPreferences serves a fixed theme until the first explicit Set, then
// behaves like the wrapped store.
type sessionPreferences struct {
	next ports.PreferenceStore

	mu       sync.Mutex
	override ID
	active   bool
}

// WithSessionOverride wraps prefs so the initial resolution yields id without
// persisting it. Later selections are written through to prefs as usual.
func WithSessionOverride(prefs ports.PreferenceStore, id ID) ports.PreferenceStore {
	if !id.Valid() {
		return prefs
	}
	return &sessionPreferences{next: prefs, override: id, active: true}
}

func (s *sessionPreferences) Get(key string) (string, bool) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active && key == PreferenceKey {
		return string(s.override), true
	}
	if s.next == nil {
		return "", false
	}
	return s.next.Get(key)
}

func (s *sessionPreferences) Set(key, value string) error {
	if key == PreferenceKey {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
	}
	if s.next == nil {
		return nil
	}
	return s.next.Set(key, value)
}
