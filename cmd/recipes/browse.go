package main

import (
	"io"

	"recipes-app-api/app"

	"github.com/spf13/cobra"
)

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse recipes in a terminal UI",
		Long:  "Loads the collection and shows it as a searchable list. Press / to search, ctrl+r to refresh.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}
}

func runBrowse(cmd *cobra.Command, flags *globalFlags) error {
	// Log lines would tear the alternate screen; LOG_FILE still works
	rt, err := newRuntime(flags, wiringOptions{logOutput: io.Discard})
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.NewApp(rt.controller).Run(cmd.Context())
}
