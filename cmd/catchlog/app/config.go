package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/catchlog/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Remote catch service
	APIURL      string
	AuthHeader  string
	HTTPTimeout time.Duration

	// Session persistence
	TokenFile string
	Ephemeral bool

	// Browser UI
	WebHost string
	WebPort int

	// Development catch service
	DevAPIAddr     string
	DevAPIDatabase string
	DevAPIUser     string
	DevAPIPassword string
	DevAPITokenTTL time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (CATCHLOG_API_URL, CATCHLOG_WEB_PORT, ...)
// 3. .env files
// 4. Config file (~/.catchlog.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v.SetEnvPrefix("catchlog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile := os.Getenv("CATCHLOG_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".catchlog")
	}

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		APIURL:      v.GetString("api_url"),
		AuthHeader:  v.GetString("auth_header"),
		HTTPTimeout: v.GetDuration("http_timeout"),

		TokenFile: v.GetString("token_file"),
		Ephemeral: v.GetBool("ephemeral"),

		WebHost: v.GetString("web.host"),
		WebPort: v.GetInt("web.port"),

		DevAPIAddr:     v.GetString("devapi.addr"),
		DevAPIDatabase: v.GetString("devapi.db"),
		DevAPIUser:     v.GetString("devapi.user"),
		DevAPIPassword: v.GetString("devapi.password"),
		DevAPITokenTTL: v.GetDuration("devapi.token_ttl"),

		// An unset LOG_LEVEL leaves room for -v/-q
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", constants.DefaultAPIURL)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("web.host", constants.DefaultWebHost)
	v.SetDefault("web.port", constants.DefaultWebPort)
	v.SetDefault("devapi.addr", constants.DefaultDevAPIAddr)
	v.SetDefault("devapi.db", constants.DefaultDevAPIDatabase)
	v.SetDefault("devapi.user", "demo@catchlog.local")
	v.SetDefault("devapi.password", "demo")
	v.SetDefault("devapi.token_ttl", constants.TokenTTL)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		// godotenv.Load never overrides a variable that is already set
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
