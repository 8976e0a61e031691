package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentstation/catchlog/pkg/constants"
)

// TestLoadConfig verifies the defaults.
func TestLoadConfig(t *testing.T) {
	t.Setenv("CATCHLOG_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.APIURL != constants.DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", config.APIURL, constants.DefaultAPIURL)
	}
	if config.HTTPTimeout != constants.DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", config.HTTPTimeout, constants.DefaultHTTPTimeout)
	}
	if config.WebPort != constants.DefaultWebPort {
		t.Errorf("WebPort = %d, want %d", config.WebPort, constants.DefaultWebPort)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies CATCHLOG_* variables are read.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("CATCHLOG_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("CATCHLOG_API_URL", "https://peche.example.org/api")
	t.Setenv("CATCHLOG_WEB_PORT", "9090")
	t.Setenv("CATCHLOG_EPHEMERAL", "true")
	t.Setenv("CATCHLOG_DEVAPI_TOKEN_TTL", "90m")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.APIURL != "https://peche.example.org/api" {
		t.Errorf("APIURL = %q", config.APIURL)
	}
	if config.WebPort != 9090 {
		t.Errorf("WebPort = %d, want 9090", config.WebPort)
	}
	if !config.Ephemeral {
		t.Error("CATCHLOG_EPHEMERAL not loaded")
	}
	if config.DevAPITokenTTL != 90*time.Minute {
		t.Errorf("DevAPITokenTTL = %v, want 1h30m", config.DevAPITokenTTL)
	}
}

// TestConfig_File verifies a YAML config file is read and env still wins.
func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catchlog.yaml")
	content := `api_url: http://fichier.local/api
auth_header: X-Auth-Token
web:
  host: 0.0.0.0
  port: 7000
devapi:
  user: moi@exemple.org
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CATCHLOG_CONFIG", path)
	t.Setenv("CATCHLOG_WEB_PORT", "7001")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, path)
	}
	if config.APIURL != "http://fichier.local/api" {
		t.Errorf("APIURL = %q", config.APIURL)
	}
	if config.AuthHeader != "X-Auth-Token" {
		t.Errorf("AuthHeader = %q, want X-Auth-Token", config.AuthHeader)
	}
	if config.WebHost != "0.0.0.0" {
		t.Errorf("WebHost = %q", config.WebHost)
	}
	if config.WebPort != 7001 {
		t.Errorf("WebPort = %d, want the env value 7001", config.WebPort)
	}
	if config.DevAPIUser != "moi@exemple.org" {
		t.Errorf("DevAPIUser = %q", config.DevAPIUser)
	}
}

// TestConfig_UpdateFromFlags verifies flags override loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "json", "")
	if !config.Verbose || config.Quiet || !config.NoColor {
		t.Errorf("bool flags not applied: %+v", config)
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.LogLevel != "info" {
		t.Errorf("empty --log-level must keep %q, got %q", "info", config.LogLevel)
	}

	config.UpdateFromFlags(false, false, false, "", "trace")
	if config.Format != "json" {
		t.Errorf("empty --format must keep json, got %q", config.Format)
	}
	if config.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", config.LogLevel)
	}
}
