// Package constants provides shared constants used throughout catchlog.
// This includes timeouts, file permissions, defaults for the remote service
// and the local servers.
package constants

import "time"

// Timeout constants
const (
	// DefaultHTTPTimeout is the standard timeout for requests to the catch service
	DefaultHTTPTimeout = 30 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the local HTTP servers
	ShutdownTimeout = 10 * time.Second

	// ReadTimeout is the read timeout of the local HTTP servers
	ReadTimeout = 10 * time.Second

	// WriteTimeout is the write timeout of the local HTTP servers
	WriteTimeout = 30 * time.Second

	// IdleTimeout is the keep-alive idle timeout of the local HTTP servers
	IdleTimeout = 2 * time.Minute

	// TokenTTL is how long the development service honours an issued token
	TokenTTL = 24 * time.Hour

	// TokenCleanupInterval is how often expired development tokens are purged
	TokenCleanupInterval = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureDirPermissions is for directories holding credentials (rwx------)
	SecureDirPermissions = 0700

	// SecureFilePermissions is for sensitive files like the bearer token (rw-------)
	SecureFilePermissions = 0600
)

// Remote service defaults
const (
	// DefaultAPIURL is the base URL of the catch service, including the /api prefix
	DefaultAPIURL = "http://localhost:8081/api"

	// TokenKey is the single key under which the bearer token is persisted
	TokenKey = "authToken"

	// TokenFileName is the file name of the persisted token under the config directory
	TokenFileName = "token.yaml"

	// AppDirName is the per-user configuration directory name
	AppDirName = "catchlog"
)

// Local server defaults
const (
	// DefaultWebHost is the interface the browser UI binds to
	DefaultWebHost = "localhost"

	// DefaultWebPort is the port the browser UI listens on
	DefaultWebPort = 8080

	// DefaultDevAPIAddr is the listen address of the development catch service
	DefaultDevAPIAddr = "localhost:8081"

	// DefaultDevAPIDatabase is the SQLite file of the development catch service
	DefaultDevAPIDatabase = "catchlog-dev.db"

	// MaxRequestBodyBytes caps JSON and form bodies accepted by the local servers
	MaxRequestBodyBytes = 1 << 20
)
