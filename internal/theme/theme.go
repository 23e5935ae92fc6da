package theme

// ID identifies one of the preset visual themes.
type ID string

const (
	Default  ID = "default"
	Dark     ID = "dark"
	Colorful ID = "colorful"
)

// Option describes a theme as offered in the theme picker.
type Option struct {
	ID          ID
	Label       string
	Description string
}

var options = []Option{
	{
		ID:          Default,
		Label:       "Minimalist",
		Description: "Clean, professional design with focus on content and readability.",
	},
	{
		ID:          Dark,
		Label:       "Dark Mode",
		Description: "Elegant dark interface with sidebar navigation and serif typography.",
	},
	{
		ID:          Colorful,
		Label:       "Colorful",
		Description: "Vibrant, playful design with gradients and rounded elements.",
	},
}

// All returns every recognized theme in picker order.
func All() []ID {
	ids := make([]ID, len(options))
	for i, opt := range options {
		ids[i] = opt.ID
	}
	return ids
}

// Options returns the picker entries in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Parse converts a raw identifier into an ID. Matching is exact.
func Parse(value string) (ID, bool) {
	for _, opt := range options {
		if string(opt.ID) == value {
			return opt.ID, true
		}
	}
	return "", false
}

// Valid reports whether id is one of the recognized themes.
func (id ID) Valid() bool {
	_, ok := Parse(string(id))
	return ok
}

// Label returns the display label, or the raw identifier when unknown.
func (id ID) Label() string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Label
		}
	}
	return string(id)
}

func (id ID) String() string {
	return string(id)
}
