package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// formatHalfDay renders a date, marking a noon component as a half day.
func formatHalfDay(t time.Time) string {
	if t.Hour() != 0 {
		return t.Format("2006-01-02") + "+½"
	}
	return t.Format("2006-01-02")
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schedule items in row order",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Store.ListItems(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No schedule items.")
				return nil
			}

			fmt.Printf("%-4s %-36s %-9s %-12s %-12s %4s  %s\n",
				"ROW", "ID", "KIND", "START", "END", "PROG", "TITLE")
			for _, it := range items {
				fmt.Printf("%-4d %-36s %-9s %-12s %-12s %3d%%  %s\n",
					it.OrderIndex,
					it.ID,
					it.Kind,
					formatHalfDay(it.StartDate),
					formatHalfDay(it.EndDate),
					it.ProgressPercent,
					it.Title,
				)
				if len(it.Dependencies) > 0 {
					fmt.Printf("     depends on: %s\n", strings.Join(it.Dependencies, ", "))
				}
			}
			return nil
		},
	}
}
