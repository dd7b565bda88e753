// Package cli wires the timeline engine to an interactive terminal Gantt
// view and a handful of non-interactive commands.
package cli

import (
	"context"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/engine"
	"github.com/spf13/cobra"
)

// ItemStore is the persistence surface the CLI needs: the engine's ports
// plus direct item CRUD for the add/delete commands.
type ItemStore interface {
	engine.Store
	Create(ctx context.Context, item *domain.ScheduleItem) error
	Delete(ctx context.Context, id string) error
}

// App holds the dependencies shared by all CLI commands.
type App struct {
	Store ItemStore

	// IsInteractive reports whether stdin is a terminal; the bare root
	// command only opens the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chronos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronos",
		Short: "Interactive timeline scheduling for projects and tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runGantt(app)
		},
	}

	root.AddCommand(
		newListCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
