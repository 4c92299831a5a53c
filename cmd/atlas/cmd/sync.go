package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecuadata/atlas"
	"github.com/ecuadata/atlas/internal/appcontext"
	"github.com/ecuadata/atlas/internal/cmd/output"
	"github.com/ecuadata/atlas/pkg/entities"
)

// NewSyncCommand creates the sync command with app dependencies.
func NewSyncCommand(app appcontext.Interface) *cobra.Command {
	var (
		syncTypes []string
		syncForce bool
		cleanOnly bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch and reconcile entity data from SPARQL sources",
		Long: `Sync fetches Ecuadorian geographic and cultural entities from Wikidata
and DBpedia, reconciles the two sources, and upserts the results into
the local database.

Types that synced recently are skipped unless --force is given. A type
whose primary source fails is recorded as an error and the run moves on
to the next type.`,
		Example: `  atlas sync                          # sync every stale type
  atlas sync --type provinces         # sync one type
  atlas sync --type parks,plazas      # sync a subset
  atlas sync --force                  # ignore staleness checks
  atlas sync --clean-only             # run only the cleanup pass`,
		RunE: func(c *cobra.Command, _ []string) error {
			eng, err := app.Atlas()
			if err != nil {
				return err
			}

			if cleanOnly {
				return runClean(c, app, eng)
			}

			opts, err := buildSyncOptions(syncTypes, syncForce)
			if err != nil {
				return err
			}

			result, err := eng.Sync(c.Context(), opts...)
			if err != nil {
				return err
			}

			if err := render(c, app, syncResultData(result)); err != nil {
				return err
			}

			if result.HasErrors() {
				return fmt.Errorf("sync finished with errors")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&syncTypes, "type", "t", nil, "entity types to sync: provinces, parks, heritage, plazas (default all)")
	cmd.Flags().BoolVarP(&syncForce, "force", "f", false, "sync even when data is fresh")
	cmd.Flags().BoolVar(&cleanOnly, "clean-only", false, "skip fetching and run only the cleanup pass")

	return cmd
}

// buildSyncOptions converts --type and --force flags into engine options.
func buildSyncOptions(typeNames []string, force bool) ([]atlas.SyncOption, error) {
	var opts []atlas.SyncOption

	var types []entities.Type
	for _, name := range typeNames {
		name = strings.TrimSpace(name)
		if name == "" || name == "all" {
			types = nil
			break
		}
		t, err := entities.ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if len(types) > 0 {
		opts = append(opts, atlas.WithTypes(types...))
	}

	if force {
		opts = append(opts, atlas.WithForce())
	}

	return opts, nil
}

// syncResultData renders a run as one row per type.
func syncResultData(result *atlas.Result) output.Data {
	data := output.Data{
		Headers: []string{"type", "created", "updated", "degraded", "errors", "status", "duration"},
		Value:   result,
	}

	for _, tr := range result.Types {
		status := "ok"
		switch {
		case tr.Skipped:
			status = "skipped: " + tr.Reason
		case len(tr.Errors) > 0:
			status = "errors"
		}

		data.Rows = append(data.Rows, []string{
			string(tr.Type),
			strconv.Itoa(tr.Created),
			strconv.Itoa(tr.Updated),
			strconv.Itoa(len(tr.Degraded)),
			strconv.Itoa(len(tr.Errors)),
			status,
			tr.Duration.Round(timePrecision).String(),
		})
	}

	return data
}
