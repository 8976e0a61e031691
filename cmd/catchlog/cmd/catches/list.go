package catches

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/cmd/output"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
)

func newListCommand(app application.Application) *cobra.Command {
	var species, before, after string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catches, optionally filtered",
		Example: `  catchlog catches list
  catchlog catches list --species "Brochet du Nord"
  catchlog catches list --before 2024-06-01 -o json`,
		Args: cobra.NoArgs,
		RunE: application.RequireSession(app, func(cmd *cobra.Command, _ []string) error {
			svc, sess, err := deps(app)
			if err != nil {
				return err
			}

			filter := catches.Filter{Kind: catches.KindNone}
			switch {
			case cmd.Flags().Changed("species"):
				filter = catches.Filter{Kind: catches.KindSpecies, Value: species}
			case cmd.Flags().Changed("before"):
				filter = catches.Filter{Kind: catches.KindBefore, Value: before}
			case cmd.Flags().Changed("after"):
				filter = catches.Filter{Kind: catches.KindAfter, Value: after}
			}
			app.Logger().Debug().Str("filter", filter.String()).Msg("Listing catches")

			v := views.NewListView(svc, sess, filter)
			if err := v.Mount(cmd.Context()); err != nil {
				if msg := v.State().Error; msg != "" {
					return errors.New(msg)
				}
				return err
			}

			list := v.State().Catches
			format := output.DetectFormat(app.OutputFormat())
			table := output.CatchesTable(views.Cards(list, location), format == output.FormatWide)
			return output.Write(cmd.OutOrStdout(), format, table, list)
		}),
	}

	cmd.Flags().StringVar(&species, "species", "", "only catches of this species (espece)")
	cmd.Flags().StringVar(&before, "before", "", "only catches before this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&after, "after", "", "only catches after this day (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("species", "before", "after")

	return cmd
}
