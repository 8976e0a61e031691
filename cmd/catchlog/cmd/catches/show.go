package catches

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/cmd/output"
	"github.com/agentstation/catchlog/internal/views"
)

func newShowCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one catch",
		Args:  cobra.ExactArgs(1),
		RunE: application.RequireSession(app, func(cmd *cobra.Command, args []string) error {
			svc, sess, err := deps(app)
			if err != nil {
				return err
			}
			token, err := views.Guard{Session: sess}.Token()
			if err != nil {
				return err
			}

			c, err := svc.GetCatch(cmd.Context(), token, args[0])
			if err != nil {
				return err
			}
			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, output.CatchDetail(views.Card(*c, location)), c)
		}),
	}
}
