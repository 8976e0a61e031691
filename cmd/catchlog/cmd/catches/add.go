package catches

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
)

// catchFlags are the record fields shared by add and edit.
type catchFlags struct {
	species   string
	length    string
	weight    string
	at        string
	released  bool
	technique string
	location  string
	weather   string
	waterTemp string
	notes     []string
}

func (f *catchFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.species, "species", "s", "", "species (espece)")
	flags.StringVar(&f.length, "length", "", "length in cm, comma or dot decimals")
	flags.StringVar(&f.weight, "weight", "", "weight in kg, comma or dot decimals")
	flags.StringVar(&f.at, "at", "", "capture time, YYYY-MM-DDTHH:MM in local time or RFC 3339")
	flags.BoolVar(&f.released, "released", true, "the fish was released (remisALeau)")
	flags.StringVar(&f.technique, "technique", "", "fishing technique")
	flags.StringVar(&f.location, "location", "", "place (lieu)")
	flags.StringVar(&f.weather, "weather", "", "weather: "+strings.Join(catches.WeatherOptions(), ", "))
	flags.StringVar(&f.waterTemp, "water-temp", "", "water temperature in °C")
	flags.StringArrayVar(&f.notes, "note", nil, "a note, repeatable")
}

func newAddCommand(app application.Application) *cobra.Command {
	var f catchFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new catch",
		Example: `  catchlog catches add --species "Truite brune" --length 38,5 --weight 0.9 \
      --location "Rivière Rouge" --weather Nuageux --note "mouche sèche"`,
		Args: cobra.NoArgs,
		RunE: application.RequireSession(app, func(cmd *cobra.Command, _ []string) error {
			svc, sess, err := deps(app)
			if err != nil {
				return err
			}

			form := views.NewCreateForm(svc, sess, views.WithLocation(location))
			if err := form.Load(cmd.Context()); err != nil {
				return errors.New(form.State().SpeciesError)
			}

			in := form.State().Input
			in.Species = f.species
			in.LengthCm = f.length
			in.WeightKg = f.weight
			if f.at != "" {
				in.CapturedAt = f.at
			}
			in.Released = f.released
			in.Technique = f.technique
			in.Location = f.location
			in.Weather = f.weather
			in.WaterTempC = f.waterTemp
			in.NoteList = f.notes

			if err := form.Submit(cmd.Context(), in); err != nil {
				if msg := form.State().Error; msg != "" {
					return errors.New(msg)
				}
				return err
			}

			st := form.State()
			fmt.Fprintln(cmd.OutOrStdout(), st.Message)
			if st.Created != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", st.Created.ID)
			}
			return nil
		}),
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("species")

	return cmd
}
