package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/internal/cmd/output"
)

// Execute runs the catchlog CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "catchlog",
		Short:   "Fishing catch log client",
		Version: a.version,
		Long: `catchlog records fishing catches in a remote catch service.

It can be used from the terminal or through a small browser UI
(catchlog serve). catchlog devapi starts a local stand-in of the
catch service for offline use.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: "catches", Title: "Catch Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "session", Title: "Session Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "servers", Title: "Server Commands:"})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.catchlog.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("api-url", "", "base URL of the catch service (default "+a.config.APIURL+")")
	flags.Bool("ephemeral", false, "keep the session in memory only")

	rootCmd.SetVersionTemplate("catchlog {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		if err := os.Setenv("CATCHLOG_CONFIG", path); err != nil {
			return err
		}
		config, err := LoadConfig()
		if err != nil {
			return err
		}
		*a.config = *config
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
		mustGetString(cmd, "format"),
		mustGetString(cmd, "log-level"),
	)
	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	a.config.Format = string(format)
	if url := mustGetString(cmd, "api-url"); url != "" {
		a.config.APIURL = url
	}
	if cmd.Flags().Changed("ephemeral") {
		a.config.Ephemeral = mustGetBool(cmd, "ephemeral")
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
