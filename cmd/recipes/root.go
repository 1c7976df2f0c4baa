package main

import (
	"github.com/spf13/cobra"
)

// globalFlags override the matching environment configuration when set
type globalFlags struct {
	endpoint string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "recipes",
		Short:         "Browse and serve a remote recipe collection",
		Long:          "Fetch a recipe collection, search it by name in a terminal UI, or expose it over HTTP",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Launch TUI by default
			return runBrowse(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.endpoint, "endpoint", "", "recipe collection URL (overrides RECIPES_ENDPOINT)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(
		newBrowseCmd(flags),
		newServeCmd(flags),
		newListCmd(flags),
		newStatusCmd(flags),
	)
	return root
}
