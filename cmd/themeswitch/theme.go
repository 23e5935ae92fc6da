package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeswitch/internal/preferences"
	"github.com/alexisbeaulieu97/themeswitch/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeStore(cmd, rootFlags, "command.theme.show", func(store *theme.Store, _ *preferences.FileStore) error {
				current := store.Get()
				fmt.Fprintf(cmd.OutOrStdout(), "Current theme: %s (%s)\n", current.Label(), current)
				return nil
			})
		},
	}

	cmd.AddCommand(newThemeListCmd(rootFlags))
	cmd.AddCommand(newThemeSetCmd(rootFlags))

	return cmd
}

func newThemeListCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeStore(cmd, rootFlags, "command.theme.list", func(store *theme.Store, _ *preferences.FileStore) error {
				current := store.Get()
				writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(writer, "\tID\tNAME\tDESCRIPTION")
				for _, opt := range theme.Options() {
					marker := ""
					if opt.ID == current {
						marker = "*"
					}
					fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", marker, opt.ID, opt.Label, opt.Description)
				}
				return writer.Flush()
			})
		},
	}
}

func newThemeSetCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <theme>",
		Short: "Persist the theme used by future sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeStore(cmd, rootFlags, "command.theme.set", func(store *theme.Store, prefs *preferences.FileStore) error {
				id, ok := theme.Parse(args[0])
				if !ok {
					return newCommandError("set theme", fmt.Sprintf("applying %q", args[0]), fmt.Errorf("unknown theme"), validThemesHint())
				}
				if err := prefs.Set(theme.PreferenceKey, string(id)); err != nil {
					return newCommandError("set theme", "saving preferences", err, "Check permissions on "+prefs.Path()+".")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s (%s)\n", id.Label(), id)
				return nil
			})
		},
	}
}

// withThemeStore opens the preferences file, resolves the persisted theme and
// hands both to fn. An unreadable file behaves like an empty one.
func withThemeStore(cmd *cobra.Command, rootFlags *rootFlags, name string, fn func(*theme.Store, *preferences.FileStore) error) error {
	app, err := newAppContext(cmd, rootFlags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, name)

	prefs := preferences.Open(app.Config.PreferencesPath, logger.With("component", "preferences"))

	store := theme.NewStore(prefs, logger.With("component", "theme"))
	store.Resolve(ctx)

	if err := fn(store, prefs); err != nil {
		logger.Error(ctx, "theme command failed", "error", err)
		return err
	}
	return nil
}

func validThemesHint() string {
	ids := make([]string, 0, 3)
	for _, id := range theme.All() {
		ids = append(ids, string(id))
	}
	return "Use one of: " + strings.Join(ids, ", ") + "."
}
