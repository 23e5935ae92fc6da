package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tserrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultEndpoint, cfg.Endpoint)
	require.Equal(t, DefaultPageSize, cfg.PageSize)
	require.Equal(t, time.Second, cfg.Debounce)
	require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	require.Equal(t, filepath.Join(home, ".themeswitch", "preferences.json"), cfg.PreferencesPath)
	require.Equal(t, filepath.Join(home, ".themeswitch", "themeswitch.log"), cfg.Log.File)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadReadsDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".themeswitch")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("page_size: 8\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8, cfg.PageSize)
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `endpoint: "https://file.example/products"
page_size: 6
debounce: 250ms
preferences_path: "~/prefs.json"
log:
  level: debug
  format: json
`)
	t.Setenv("THEMESWITCH_PAGE_SIZE", "12")
	t.Setenv("THEMESWITCH_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://file.example/products", cfg.Endpoint)
	require.Equal(t, 12, cfg.PageSize, "environment overrides file")
	require.Equal(t, 250*time.Millisecond, cfg.Debounce)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "prefs.json"), cfg.PreferencesPath)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	var decodeErr *tserrors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultPageSize, cfg.PageSize)
}

func TestLoadInvalidEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("THEMESWITCH_DEBOUNCE", "soon")

	_, err := Load("")
	require.Error(t, err)
	var decodeErr *tserrors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "environment", decodeErr.Source)
}

func TestParseConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: "page_size: 3\nrequest_timeout: 2s\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 3, cfg.PageSize)
				require.Equal(t, 2*time.Second, cfg.RequestTimeout)
			},
		},
		{
			name:     "invalid yaml returns decode error with line",
			contents: "page_size: 4\ndebounce: [1, 2]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var decodeErr *tserrors.DecodeError
				require.ErrorAs(t, err, &decodeErr)
				require.Equal(t, 2, decodeErr.Line)
			},
		},
		{
			name:     "unknown field is rejected",
			contents: "colour: red\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var decodeErr *tserrors.DecodeError
				require.ErrorAs(t, err, &decodeErr)
				require.Contains(t, decodeErr.Message, "colour")
			},
		},
		{
			name:     "zero page size fails validation",
			contents: "page_size: 0\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *tserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "page_size", validationErr.Field)
			},
		},
		{
			name:     "unknown log level fails validation",
			contents: "log:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *tserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
				require.Contains(t, validationErr.Message, "loglevel")
			},
		},
		{
			name:     "non http endpoint fails validation",
			contents: "endpoint: ftp://example.com/products\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *tserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "endpoint", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestValidateNil(t *testing.T) {
	err := Validate(nil)
	var validationErr *tserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
