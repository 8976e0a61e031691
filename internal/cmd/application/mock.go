// Package application provides a mock Application for command tests.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/catchlog/cmd/application"
	"github.com/agentstation/catchlog/internal/devapi"
	"github.com/agentstation/catchlog/internal/server"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/internal/views"
)

var _ application.Application = (*Mock)(nil)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    SessionFunc: func() (session.Handle, error) {
//	        return session.New(nil, session.NewMemoryStore("T")), nil
//	    },
//	}
//	cmd := catches.NewCommand(mock)
type Mock struct {
	SessionFunc      func() (session.Handle, error)
	CatchesFunc      func() (views.CatchService, error)
	WebConfigFunc    func() server.Config
	DevAPIConfigFunc func() devapi.Config
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Session returns a session using the mock function or a logged out one.
func (m *Mock) Session() (session.Handle, error) {
	if m.SessionFunc != nil {
		return m.SessionFunc()
	}
	return session.New(nil, session.NewMemoryStore("")), nil
}

// Catches returns a service using the mock function or nil.
func (m *Mock) Catches() (views.CatchService, error) {
	if m.CatchesFunc != nil {
		return m.CatchesFunc()
	}
	return nil, nil
}

// WebConfig returns the mock function's config or the defaults.
func (m *Mock) WebConfig() server.Config {
	if m.WebConfigFunc != nil {
		return m.WebConfigFunc()
	}
	return server.DefaultConfig()
}

// DevAPIConfig returns the mock function's config or the defaults.
func (m *Mock) DevAPIConfig() devapi.Config {
	if m.DevAPIConfigFunc != nil {
		return m.DevAPIConfigFunc()
	}
	return devapi.DefaultConfig()
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
