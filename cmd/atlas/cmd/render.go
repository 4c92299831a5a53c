// Package cmd contains the atlas CLI subcommands. Each command receives
// its dependencies through appcontext.Interface so it can be tested with
// a mock application.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ecuadata/atlas/internal/appcontext"
	"github.com/ecuadata/atlas/internal/cmd/output"
)

// render writes data to the command's stdout in the app's output format.
func render(c *cobra.Command, app appcontext.Interface, data output.Data) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.OutOrStdout(), data)
}
