package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/cmd/catchlog/cmd/auth"
	"github.com/agentstation/catchlog/cmd/catchlog/cmd/catches"
	"github.com/agentstation/catchlog/cmd/catchlog/cmd/devapi"
	"github.com/agentstation/catchlog/cmd/catchlog/cmd/serve"
	"github.com/agentstation/catchlog/cmd/catchlog/cmd/species"
	"github.com/agentstation/catchlog/cmd/catchlog/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catch commands
	rootCmd.AddCommand(catches.NewCommand(a))
	rootCmd.AddCommand(species.NewCommand(a))

	// Session commands
	rootCmd.AddCommand(auth.NewLoginCommand(a))
	rootCmd.AddCommand(auth.NewLogoutCommand(a))
	rootCmd.AddCommand(auth.NewStatusCommand(a))

	// Server commands
	rootCmd.AddCommand(serve.NewCommand(a))
	rootCmd.AddCommand(devapi.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
