package catches

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/errors"
)

func newEditCommand(app application.Application) *cobra.Command {
	var f catchFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a recorded catch",
		Long: `Edit loads the catch, applies the given flags and saves the whole
record. Fields without a flag keep their value. --note replaces all notes.`,
		Example: `  catchlog catches edit 64f1c2 --weight 1,4 --released=false`,
		Args:    cobra.ExactArgs(1),
		RunE: application.RequireSession(app, func(cmd *cobra.Command, args []string) error {
			svc, sess, err := deps(app)
			if err != nil {
				return err
			}

			form := views.NewEditForm(svc, sess, views.WithLocation(location))
			if err := form.Load(cmd.Context(), args[0]); err != nil {
				if msg := form.State().LoadError; msg != "" {
					return errors.New(msg)
				}
				return err
			}

			in := form.State().Input
			changed := cmd.Flags().Changed
			if changed("species") {
				in.Species = f.species
			}
			if changed("length") {
				in.LengthCm = f.length
			}
			if changed("weight") {
				in.WeightKg = f.weight
			}
			if changed("at") {
				in.CapturedAt = f.at
			}
			if changed("released") {
				in.Released = f.released
			}
			if changed("technique") {
				in.Technique = f.technique
			}
			if changed("location") {
				in.Location = f.location
			}
			if changed("weather") {
				in.Weather = f.weather
			}
			if changed("water-temp") {
				in.WaterTempC = f.waterTemp
			}
			if changed("note") {
				in.NotesText = strings.Join(f.notes, "\n")
			}

			if err := form.Submit(cmd.Context(), in); err != nil {
				if msg := form.State().Error; msg != "" {
					return errors.Join(errors.New(msg), err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form.State().Message)
			return nil
		}),
	}

	f.register(cmd)

	return cmd
}
