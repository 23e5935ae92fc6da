package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	tserrors "github.com/alexisbeaulieu97/themeswitch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load builds the effective configuration: defaults, then the YAML file at
// path, then THEMESWITCH_* environment overrides, then validation. An empty
// path selects DefaultPath and tolerates its absence; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if err := mergeFile(&cfg, path, explicit); err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, tserrors.NewDecodeError("environment", 0, err)
	}

	cfg.PreferencesPath = expandHome(cfg.PreferencesPath)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseConfig decodes a single YAML document on top of the defaults without
// consulting the environment.
func ParseConfig(path string) (*Config, error) {
	cfg := Default()
	if err := mergeFile(&cfg, path, true); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return tserrors.NewDecodeError(path, 0, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return tserrors.NewDecodeError(path, extractLine(err), err)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
