package main

import (
	"fmt"
	"io"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load the collection once and print the visible recipes",
		Long:  "Fetches the collection, applies the optional search and prints a table. Exits non-zero when the load fails.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags, wiringOptions{logOutput: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer rt.Close()

			rt.controller.SetSearchQuery(query)
			state := rt.controller.Load(cmd.Context())
			if state.Phase == domain.PhaseFailed {
				return fmt.Errorf("%s (%w)", coreerrors.UserMessage(state.Err), state.Err)
			}

			printRecipes(cmd.OutOrStdout(), rt.controller.VisibleList(), len(state.Recipes), query)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "case-insensitive name filter")
	return cmd
}

func printRecipes(w io.Writer, visible domain.RecipeCollection, total int, query string) {
	if len(visible) == 0 {
		if query != "" {
			fmt.Fprintf(w, "No results for %s\n", query)
			return
		}
		fmt.Fprintln(w, "No recipes available. Try after some time.")
		return
	}

	columns := []table.Column{
		{Title: "Name", Width: 36},
		{Title: "Cuisine", Width: 14},
		{Title: "Video", Width: 5},
		{Title: "Source", Width: 6},
	}

	rows := make([]table.Row, 0, len(visible))
	for _, r := range visible {
		rows = append(rows, table.Row{
			truncate(r.Name, 34),
			truncate(r.Cuisine, 12),
			yesNo(r.HasVideo()),
			yesNo(r.HasSource()),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		// height counts the header and its border
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// nothing is selectable in a printed table
	s.Selected = s.Cell
	t.SetStyles(s)

	if query != "" {
		fmt.Fprintf(w, "\n%d of %d recipes matching %q\n\n", len(visible), total, query)
	} else {
		fmt.Fprintf(w, "\n%d recipes\n\n", total)
	}
	fmt.Fprintln(w, t.View())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
