package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"

	"github.com/spf13/cobra"
)

func newStatusCmd(flags *globalFlags) *cobra.Command {
	var clearRecord bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the last recorded load for the endpoint",
		Long:  "Reads the status journal. With the memory cache only loads made by this process are visible; use CACHE_TYPE=sqlite or redis to share it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags, wiringOptions{logOutput: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.recorder == nil {
				return errors.New("status journal is disabled (FEATURE_STATUS_JOURNAL)")
			}

			if clearRecord {
				if err := rt.recorder.Clear(cmd.Context(), rt.cfg.Recipes.Endpoint); err != nil {
					return fmt.Errorf("failed to clear status: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared load status for %s\n", rt.cfg.Recipes.Endpoint)
				return nil
			}

			rec, err := rt.recorder.Last(cmd.Context(), rt.cfg.Recipes.Endpoint)
			if coreerrors.IsNotFound(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "No load recorded for %s\n", rt.cfg.Recipes.Endpoint)
				return nil
			}
			if err != nil {
				return err
			}

			printStatus(cmd.OutOrStdout(), rec)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearRecord, "clear", false, "Remove the recorded load for the endpoint")
	return cmd
}

func printStatus(w io.Writer, rec domain.LoadRecord) {
	fmt.Fprintf(w, "Endpoint:   %s\n", rec.Endpoint)
	fmt.Fprintf(w, "Phase:      %s\n", rec.Phase)
	fmt.Fprintf(w, "Generation: %d\n", rec.Generation)
	fmt.Fprintf(w, "Finished:   %s (%s)\n", rec.FinishedAt.Format(time.RFC3339), rec.Duration().Round(time.Millisecond))
	if rec.ErrorKind != "" {
		fmt.Fprintf(w, "Error:      %s", rec.ErrorKind)
		if rec.StatusCode != 0 {
			fmt.Fprintf(w, " (%d)", rec.StatusCode)
		}
		fmt.Fprintf(w, ": %s\n", rec.Error)
		return
	}
	fmt.Fprintf(w, "Recipes:    %d\n", rec.RecipeCount)
}
