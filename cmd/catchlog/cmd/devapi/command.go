// Package devapi provides the command running the local stand-in of the
// catch service.
package devapi

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/devapi"
	"github.com/agentstation/catchlog/internal/server"
	"github.com/agentstation/catchlog/pkg/errors"
)

// NewCommand creates the devapi command.
func NewCommand(app application.Application) *cobra.Command {
	var flags devapi.Config

	cmd := &cobra.Command{
		Use:     "devapi",
		GroupID: "servers",
		Short:   "Run a local stand-in of the catch service",
		Long: `Devapi serves the catch service API from a SQLite file so the CLI
and the browser UI can be used without the real backend. The account
given by --user/--password is created or updated at start.`,
		Example: `  catchlog devapi
  catchlog devapi --db :memory: --user moi@exemple.org --password secret
  catchlog --api-url http://localhost:8081/api login --email demo@catchlog.local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.Logger()

			cfg := app.DevAPIConfig()
			changed := cmd.Flags().Changed
			if changed("addr") {
				cfg.Addr = flags.Addr
			}
			if changed("db") {
				cfg.Database = flags.Database
			}
			if changed("user") {
				cfg.User = flags.User
			}
			if changed("password") {
				cfg.Password = flags.Password
			}
			if changed("token-ttl") {
				cfg.TokenTTL = flags.TokenTTL
			}

			srvCfg, err := listenConfig(cfg.Addr)
			if err != nil {
				return err
			}

			api, closeStore, err := devapi.Open(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeStore(); err != nil {
					logger.Warn().Err(err).Msg("Closing the database failed")
				}
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "Service de développement sur http://%s%s (compte %s)\n",
				srvCfg.Addr(), devapi.PathPrefix, cfg.User)
			return server.Run(cmd.Context(), server.New(srvCfg, api.Handler()), srvCfg, "devapi", logger)
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", "", "listen address (host:port)")
	cmd.Flags().StringVar(&flags.Database, "db", "", "SQLite file, or :memory:")
	cmd.Flags().StringVar(&flags.User, "user", "", "email of the seeded account")
	cmd.Flags().StringVar(&flags.Password, "password", "", "password of the seeded account")
	cmd.Flags().DurationVar(&flags.TokenTTL, "token-ttl", 0, "lifetime of issued tokens")

	return cmd
}

func listenConfig(addr string) (server.Config, error) {
	cfg := server.DefaultConfig()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return cfg, errors.NewValidationError("addr", addr, err.Error())
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return cfg, errors.NewValidationError("addr", addr, "port must be a number")
	}
	cfg.Host = host
	cfg.Port = port
	return cfg, nil
}
