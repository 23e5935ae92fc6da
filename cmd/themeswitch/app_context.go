package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeswitch/internal/config"
	"github.com/alexisbeaulieu97/themeswitch/internal/logger"
	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger ports.Logger

	closers []io.Closer
}

// newAppContext loads configuration, applies flag overrides and builds the
// logger. Interactive sessions log to the configured file so the terminal UI
// is not disturbed; everything else logs to stderr.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", "reading settings", err, "Fix the config file or THEMESWITCH_* environment variables and try again.")
	}

	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError("load configuration", "applying command-line flags", err, "Use one of: trace, debug, info, warn, error.")
	}

	app := &AppContext{Config: cfg}

	var writer io.Writer = cmd.ErrOrStderr()
	human := cfg.Log.Format == "console"
	if interactive && cfg.Log.File != "" {
		file, err := openLogFile(cfg.Log.File)
		if err != nil {
			return nil, newCommandError("initialise logging", fmt.Sprintf("opening %s", cfg.Log.File), err, "Check permissions on the log directory or set log.file in the config.")
		}
		app.closers = append(app.closers, file)
		writer = file
		human = false
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: human,
		Writer:        writer,
	})
	if err != nil {
		return nil, newCommandError("initialise logging", "building logger", err, "Use one of: trace, debug, info, warn, error.")
	}
	app.Logger = log

	return app, nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
	return ctx, a.Logger.With("command", name)
}

// Close releases log files.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
