// Package species provides the species reference list command.
package species

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/cmd/output"
	"github.com/agentstation/catchlog/internal/views"
)

// NewCommand creates the species command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "species",
		Aliases: []string{"especes"},
		GroupID: "catches",
		Short:   "List the species known to the catch service",
		Args:    cobra.NoArgs,
		RunE: application.RequireSession(app, func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session()
			if err != nil {
				return err
			}
			svc, err := app.Catches()
			if err != nil {
				return err
			}
			token, err := views.Guard{Session: sess}.Token()
			if err != nil {
				return err
			}

			list, err := svc.ListSpecies(cmd.Context(), token)
			if err != nil {
				return err
			}
			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, output.SpeciesTable(list), list)
		}),
	}
}
