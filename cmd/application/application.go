// Package application provides the application interface for catchlog commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, so commands can be tested against a mock.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: application.RequireSession(app, func(cmd *cobra.Command, args []string) error {
//	            svc, err := app.Catches()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use svc with app.Session()
//	            return nil
//	        }),
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/catchlog/internal/devapi"
	"github.com/agentstation/catchlog/internal/server"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/errors"
)

// Application provides what commands need from the app.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Session returns the session store shared by every command of the run.
	Session() (session.Handle, error)

	// Catches returns the remote catch service client.
	Catches() (views.CatchService, error)

	// WebConfig returns the listener settings of the browser UI.
	WebConfig() server.Config

	// DevAPIConfig returns the settings of the local stand-in service.
	DevAPIConfig() devapi.Config

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}

// ErrLoginRequired is returned by guarded commands run without a session.
var ErrLoginRequired = errors.New("not logged in, run `catchlog login` first")

// RequireSession wraps a command's RunE so it only runs with a session.
func RequireSession(app Application, run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := app.Session()
		if err != nil {
			return err
		}
		if !sess.IsLoggedIn() {
			return errors.Join(ErrLoginRequired, errors.ErrNotLoggedIn)
		}
		return run(cmd, args)
	}
}
