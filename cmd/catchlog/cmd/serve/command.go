// Package serve provides the command running the browser UI.
package serve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/server"
	"github.com/agentstation/catchlog/internal/web"
)

// NewCommand creates the serve command.
func NewCommand(app application.Application) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "servers",
		Short:   "Run the browser UI",
		Long: `Serve starts the browser UI on the local machine. It shares the
stored session with the other commands: logging in from the browser
logs in the CLI too.`,
		Example: `  catchlog serve
  catchlog serve --port 3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.Logger()

			sess, err := app.Session()
			if err != nil {
				return err
			}
			svc, err := app.Catches()
			if err != nil {
				return err
			}

			ui, err := web.New(svc, sess, web.WithLogger(logger))
			if err != nil {
				return err
			}

			cfg := app.WebConfig()
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			srv := server.New(cfg, ui.Handler())
			fmt.Fprintf(cmd.OutOrStdout(), "Interface disponible sur http://%s\n", cfg.Addr())
			return server.Run(cmd.Context(), srv, cfg, "web", logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "interface to bind")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on")

	return cmd
}
