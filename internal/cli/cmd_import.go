package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/chronos/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import schedule items from a YAML project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			schema, err := importer.Parse(f)
			if err != nil {
				return err
			}
			if err := schema.Validate(); err != nil {
				return fmt.Errorf("invalid project file: %w", err)
			}

			items, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			base := 0
			if replace {
				existing, err := app.Store.ListItems(ctx)
				if err != nil {
					return err
				}
				for _, it := range existing {
					if err := app.Store.Delete(ctx, it.ID); err != nil {
						return err
					}
				}
			} else {
				existing, err := app.Store.ListItems(ctx)
				if err != nil {
					return err
				}
				base = len(existing)
			}

			for i := range items {
				items[i].OrderIndex += base
				if err := app.Store.Create(ctx, &items[i]); err != nil {
					return fmt.Errorf("creating %q: %w", items[i].Title, err)
				}
			}

			fmt.Printf("Imported %d items from %s\n", len(items), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Delete existing items before importing")

	return cmd
}
