package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecuadata/atlas"
	"github.com/ecuadata/atlas/internal/appcontext"
	"github.com/ecuadata/atlas/internal/cmd/output"
	"github.com/ecuadata/atlas/pkg/entities"
)

// timePrecision rounds durations in human-facing output.
const timePrecision = 10 * time.Millisecond

// NewCleanCommand creates the clean command with app dependencies.
func NewCleanCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove invalid records from the database",
		Long: `Clean removes records that fail validation: entities without a display
name, provinces whose source key is outside the official 24-province
set, and located entities whose coordinates fall outside Ecuador.`,
		Example: `  atlas clean
  atlas clean -o json`,
		RunE: func(c *cobra.Command, _ []string) error {
			eng, err := app.Atlas()
			if err != nil {
				return err
			}
			return runClean(c, app, eng)
		},
	}

	return cmd
}

// runClean executes the cleanup pass and renders the removal counts.
// The sync command reuses it for --clean-only.
func runClean(c *cobra.Command, app appcontext.Interface, eng atlas.Atlas) error {
	result, err := eng.Cleanup(c.Context())
	if err != nil {
		return err
	}

	data := output.Data{
		Headers: []string{"type", "empty names", "foreign keys", "out of bounds"},
		Value:   result,
	}
	for _, t := range entities.AllTypes() {
		foreign := ""
		if t == entities.TypeProvinces {
			foreign = strconv.FormatInt(result.ForeignProvinces, 10)
		}
		data.Rows = append(data.Rows, []string{
			string(t),
			strconv.FormatInt(result.EmptyNames[t], 10),
			foreign,
			strconv.FormatInt(result.OutOfBounds[t], 10),
		})
	}

	return render(c, app, data)
}
