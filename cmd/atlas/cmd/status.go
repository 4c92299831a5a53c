package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecuadata/atlas/internal/appcontext"
	"github.com/ecuadata/atlas/internal/cmd/output"
)

// NewStatusCommand creates the status command with app dependencies.
func NewStatusCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show record counts and last sync times per type",
		Example: `  atlas status
  atlas status -o yaml`,
		RunE: func(c *cobra.Command, _ []string) error {
			eng, err := app.Atlas()
			if err != nil {
				return err
			}

			stats, err := eng.Stats(c.Context())
			if err != nil {
				return err
			}

			data := output.Data{
				Headers: []string{"type", "count", "last sync"},
				Value:   stats,
			}
			for _, ts := range stats.Types {
				lastSync := "never"
				if ts.LastSync != nil {
					lastSync = ts.LastSync.Local().Format(time.RFC3339)
				}
				data.Rows = append(data.Rows, []string{
					string(ts.Type),
					strconv.FormatInt(ts.Count, 10),
					lastSync,
				})
			}

			return render(c, app, data)
		},
	}

	return cmd
}
