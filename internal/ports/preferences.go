package ports

// PreferenceStore persists small user preferences (currently only the theme)
// between sessions. Implementations must be safe for concurrent use and must
// make Set durable before returning.
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
