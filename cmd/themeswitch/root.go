package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themeswitch",
		Short:         "ThemeSwitch Pro is a themeable terminal storefront",
		Long:          "Browse, search and page through a product catalog in a terminal UI that can be re-skinned with three preset themes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, true)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "command.browse")
			logger.Info(ctx, "launching storefront")
			err = runStorefront(ctx, app, logger, flags)
			if err != nil {
				logger.Error(ctx, "storefront command failed", "error", err)
			}
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.themeswitch/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Theme for this session only (default, dark, colorful)")

	cmd.AddCommand(newProductsCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
