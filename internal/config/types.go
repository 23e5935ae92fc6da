package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// EnvPrefix is prepended to every environment override.
	EnvPrefix = "THEMESWITCH_"

	// DirName is the per-user directory holding config, preferences and logs.
	DirName = ".themeswitch"

	DefaultEndpoint       = "https://fakestoreapi.com/products"
	DefaultPageSize       = 4
	DefaultDebounce       = time.Second
	DefaultRequestTimeout = 15 * time.Second
)

// Config represents the themeswitch configuration document.
type Config struct {
	Endpoint        string        `yaml:"endpoint" env:"ENDPOINT" validate:"required,http_url"`
	PageSize        int           `yaml:"page_size" env:"PAGE_SIZE" validate:"min=1,max=100"`
	Debounce        time.Duration `yaml:"debounce" env:"DEBOUNCE" validate:"gte=0"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" validate:"gt=0"`
	PreferencesPath string        `yaml:"preferences_path" env:"PREFERENCES_PATH" validate:"required"`
	Log             LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"loglevel"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=json console"`
	// File receives TUI logs. Non-interactive commands log to stderr.
	File string `yaml:"file" env:"FILE"`
}

// Default returns the built-in configuration rooted at the user's home
// directory.
func Default() Config {
	dir := Dir()
	return Config{
		Endpoint:        DefaultEndpoint,
		PageSize:        DefaultPageSize,
		Debounce:        DefaultDebounce,
		RequestTimeout:  DefaultRequestTimeout,
		PreferencesPath: filepath.Join(dir, "preferences.json"),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(dir, "themeswitch.log"),
		},
	}
}

// Dir returns ~/.themeswitch, or ./.themeswitch when no home is known.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DirName
	}
	return filepath.Join(home, DirName)
}

// DefaultPath is the location of the optional config file.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}
