package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/importer"
	"github.com/alexanderramin/chronos/internal/svgexport"
	"github.com/alexanderramin/chronos/internal/timeline"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format  string
		output  string
		name    string
		zoom    string
		refDate string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as a YAML project file or an SVG chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Store.ListItems(context.Background())
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "yaml":
				return importer.Write(out, importer.BuildSchema(name, items))

			case "svg":
				level, err := domain.ParseZoomLevel(zoom)
				if err != nil {
					return err
				}
				ref := time.Now().UTC()
				if refDate != "" {
					ref, err = time.ParseInLocation("2006-01-02", refDate, time.UTC)
					if err != nil {
						return fmt.Errorf("parsing --date: %w", err)
					}
				}
				win, err := timeline.ComputeWindow(level, 0, ref)
				if err != nil {
					return err
				}
				return svgexport.Render(out, name, items, win, svgexport.DefaultOptions(), time.Now().UTC())

			default:
				return fmt.Errorf("unknown format %q (yaml or svg)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&name, "name", "schedule", "Project name in the exported file")
	cmd.Flags().StringVar(&zoom, "zoom", "month", "SVG window zoom level: week, month, quarter, year")
	cmd.Flags().StringVar(&refDate, "date", "", "SVG window reference date (YYYY-MM-DD, default today)")

	return cmd
}
