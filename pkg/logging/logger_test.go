package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/catchlog/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithCatch(ctx, "64f1c2")
	ctx = logging.WithFilter(ctx, "espece", "Truite")
	ctx = logging.WithOperation(ctx, "delete")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"catch_id":"64f1c2"`)
	testLogger.AssertContains(t, `"filter":"espece"`)
	testLogger.AssertContains(t, `"filter_value":"Truite"`)
	testLogger.AssertContains(t, `"operation":"delete"`)
	testLogger.AssertContains(t, "test message")
}

func TestRequestID(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithRequestID(ctx, "req-1")

	assert.Equal(t, "req-1", logging.RequestID(ctx))
	assert.Empty(t, logging.RequestID(context.Background()))

	logging.Ctx(ctx).Info().Msg("handled")
	testLogger.AssertContains(t, `"request_id":"req-1"`)
}

func TestWithError(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	assert.Equal(t, ctx, logging.WithError(ctx, nil))

	ctx = logging.WithError(ctx, assert.AnError)
	logging.FromContext(ctx).Warn().Msg("failed")
	testLogger.AssertContains(t, assert.AnError.Error())
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestConfiguration(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	configs := []struct {
		name   string
		config *logging.Config
		check  func(t *testing.T, output string)
	}{
		{
			name:   "debug level",
			config: &logging.Config{Level: "debug", Format: "json"},
			check: func(t *testing.T, output string) {
				if !strings.Contains(output, `"level":"debug"`) {
					t.Errorf("Expected debug level in output")
				}
			},
		},
		{
			name:   "error level only",
			config: &logging.Config{Level: "error", Format: "json"},
			check: func(t *testing.T, output string) {
				if strings.Contains(output, `"level":"info"`) {
					t.Errorf("Should not contain info level when set to error")
				}
			},
		},
		{
			name:   "default fields",
			config: &logging.Config{Level: "info", Format: "json", Fields: map[string]any{"app": "catchlog"}},
			check: func(t *testing.T, output string) {
				if !strings.Contains(output, `"app":"catchlog"`) {
					t.Errorf("Expected default field in output: %s", output)
				}
			},
		},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tc.config).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			tc.check(t, buf.String())
		})
	}
}

func TestConfigureWritesToFile(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	path := filepath.Join(t.TempDir(), "catchlog.log")
	logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: path})

	logging.Info().Msg("info message")
	logging.Warn().Msg("warn message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
	assert.NotNil(t, cfg.Fields)
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	logging.Info().Msg("message 1")
	logging.Error().Msg("message 2")

	tl.AssertContains(t, "message 1")
	tl.AssertContains(t, "message 2")
	tl.AssertNotContains(t, "message 3")
	assert.Len(t, tl.Lines(), 2)
}
