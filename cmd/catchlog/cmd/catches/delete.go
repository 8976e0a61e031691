package catches

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
)

func newDeleteCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a catch",
		Args:    cobra.ExactArgs(1),
		RunE: application.RequireSession(app, func(cmd *cobra.Command, args []string) error {
			svc, sess, err := deps(app)
			if err != nil {
				return err
			}

			v := views.NewListView(svc, sess, catches.Filter{Kind: catches.KindNone})
			if err := v.Delete(cmd.Context(), args[0]); err != nil {
				if msg := v.State().Error; msg != "" {
					return errors.New(msg)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Capture %s supprimée (%d restantes)\n", args[0], len(v.State().Catches))
			return nil
		}),
	}
}
