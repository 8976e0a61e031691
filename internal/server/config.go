package server

import (
	"net"
	"strconv"
	"time"

	"github.com/agentstation/catchlog/pkg/constants"
)

// Config holds the listener settings shared by the catchlog servers.
type Config struct {
	Host string
	Port int

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ShutdownTimeout bounds the graceful drain once the run context ends.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            constants.DefaultWebHost,
		Port:            constants.DefaultWebPort,
		ReadTimeout:     constants.ReadTimeout,
		WriteTimeout:    constants.WriteTimeout,
		IdleTimeout:     constants.IdleTimeout,
		ShutdownTimeout: constants.ShutdownTimeout,
	}
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
