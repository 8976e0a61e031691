package auth

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/cmd/output"
)

// Status is what `catchlog status` reports.
type Status struct {
	LoggedIn bool   `json:"loggedIn" yaml:"loggedIn"`
	Version  string `json:"version" yaml:"version"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: "session",
		Short:   "Show whether a session is stored",
		Long: `Status reports whether a token is stored. The token is not checked
against the service; an expired one shows up on the next catch command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session()
			if err != nil {
				return err
			}
			st := Status{LoggedIn: sess.IsLoggedIn(), Version: app.Version()}

			loggedIn := "Non"
			if st.LoggedIn {
				loggedIn = "Oui"
			}
			table := output.Data{
				Headers: []string{"Propriété", "Valeur"},
				Rows: [][]string{
					{"Connecté", loggedIn},
					{"Version", st.Version},
				},
			}
			return output.Write(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), table, st)
		},
	}
}
