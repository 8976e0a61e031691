// Package app provides the application context and dependency management
// for the catchlog CLI. It centralizes configuration, logging, the remote
// client and the session store, and hands them to commands through the
// application.Application interface.
package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/devapi"
	"github.com/agentstation/catchlog/internal/remote"
	"github.com/agentstation/catchlog/internal/server"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/internal/transport"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/errors"
)

var _ application.Application = (*App)(nil)

// App represents the catchlog application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Lazily created, shared by every command of the run
	mu      sync.Mutex
	client  *remote.Client
	session session.Handle
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Catches returns the remote catch service client.
func (a *App) Catches() (views.CatchService, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.clientLocked()
}

func (a *App) clientLocked() (*remote.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if a.config.APIURL == "" {
		return nil, errors.NewConfigError("api_url", "the catch service URL is empty", nil)
	}
	a.client = remote.New(a.config.APIURL,
		transport.AuthenticatorFor(a.config.AuthHeader),
		transport.WithTimeout(a.config.HTTPTimeout))
	return a.client, nil
}

// Session returns the session store, restoring the persisted token on first
// use.
func (a *App) Session() (session.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		return a.session, nil
	}

	client, err := a.clientLocked()
	if err != nil {
		return nil, err
	}

	var tokens session.TokenStore
	switch {
	case a.config.Ephemeral:
		tokens = session.NewMemoryStore("")
	case a.config.TokenFile != "":
		tokens = session.NewFileStore(a.config.TokenFile)
	default:
		path, err := session.DefaultTokenPath()
		if err != nil {
			return nil, errors.NewConfigError("token_file", "no user config directory, set token_file", err)
		}
		tokens = session.NewFileStore(path)
	}

	a.session = session.New(client, tokens, session.WithLogger(a.logger))
	return a.session, nil
}

// WebConfig returns the listener settings of the browser UI.
func (a *App) WebConfig() server.Config {
	cfg := server.DefaultConfig()
	if a.config.WebHost != "" {
		cfg.Host = a.config.WebHost
	}
	if a.config.WebPort != 0 {
		cfg.Port = a.config.WebPort
	}
	return cfg
}

// DevAPIConfig returns the settings of the development catch service.
func (a *App) DevAPIConfig() devapi.Config {
	cfg := devapi.DefaultConfig()
	if a.config.DevAPIAddr != "" {
		cfg.Addr = a.config.DevAPIAddr
	}
	if a.config.DevAPIDatabase != "" {
		cfg.Database = a.config.DevAPIDatabase
	}
	if a.config.DevAPIUser != "" {
		cfg.User = a.config.DevAPIUser
	}
	if a.config.DevAPIPassword != "" {
		cfg.Password = a.config.DevAPIPassword
	}
	if a.config.DevAPITokenTTL > 0 {
		cfg.TokenTTL = a.config.DevAPITokenTTL
	}
	return cfg
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSession sets a custom session (useful for testing).
func WithSession(sess session.Handle) Option {
	return func(a *App) error {
		a.session = sess
		return nil
	}
}

// WithHTTPTimeout overrides the request timeout to the catch service.
func WithHTTPTimeout(d time.Duration) Option {
	return func(a *App) error {
		if d <= 0 {
			return errors.NewValidationError("http_timeout", d, "must be positive")
		}
		a.config.HTTPTimeout = d
		return nil
	}
}
