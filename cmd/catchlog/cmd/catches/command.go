// Package catches provides the catch commands: list, show, add, edit, delete.
package catches

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/internal/views"
)

// NewCommand creates the catches command with its subcommands.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catches",
		Aliases: []string{"captures", "catch"},
		GroupID: "catches",
		Short:   "Manage recorded catches",
		Example: `  catchlog catches list --species "Doré jaune"
  catchlog catches show 64f1c2
  catchlog catches add --species "Truite brune" --length 38,5
  catchlog catches edit 64f1c2 --location "Lac Brome"
  catchlog catches delete 64f1c2`,
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))
	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newEditCommand(app))
	cmd.AddCommand(newDeleteCommand(app))

	return cmd
}

// deps resolves what every catch subcommand needs.
func deps(app application.Application) (views.CatchService, session.Handle, error) {
	sess, err := app.Session()
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.Catches()
	if err != nil {
		return nil, nil, err
	}
	return svc, sess, nil
}

// location is the zone dates are read and shown in.
var location = time.Local
