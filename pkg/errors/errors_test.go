package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgerrors "github.com/agentstation/catchlog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "catch",
			ID:       "64f1",
		}
		assert.Equal(t, "catch with ID 64f1 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("catch", "x")
		wrapped := fmt.Errorf("loading: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("tailleCm", -1, "must not be negative")
		assert.Equal(t, "validation failed for field tailleCm: must not be negative", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "empty form"}
		assert.Equal(t, "validation failed: empty form", err.Error())
	})
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
		want   bool
	}{
		{"401 is unauthorized", http.StatusUnauthorized, pkgerrors.ErrUnauthorized, true},
		{"403 is unauthorized", http.StatusForbidden, pkgerrors.ErrUnauthorized, true},
		{"404 is not found", http.StatusNotFound, pkgerrors.ErrNotFound, true},
		{"502 is unavailable", http.StatusBadGateway, pkgerrors.ErrUnavailable, true},
		{"400 is none of them", http.StatusBadRequest, pkgerrors.ErrUnauthorized, false},
		{"500 is not unauthorized", http.StatusInternalServerError, pkgerrors.ErrUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgerrors.NewAPIError("/captures/all", tt.status, "boom")
			assert.Equal(t, tt.want, errors.Is(err, tt.target))
		})
	}

	t.Run("message format", func(t *testing.T) {
		err := pkgerrors.NewAPIError("/captures/add", 400, "espece requise")
		assert.Contains(t, err.Error(), "/captures/add")
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "espece requise")
	})

	t.Run("wrap helper", func(t *testing.T) {
		base := errors.New("connection refused")
		err := pkgerrors.WrapAPI("/captures/all", 0, base)
		var apiErr *pkgerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, base, apiErr.Unwrap())
		assert.Nil(t, pkgerrors.WrapAPI("/x", 0, nil))
	})
}

func TestAuthenticationError(t *testing.T) {
	err := pkgerrors.NewAuthenticationError("password", "empty token", nil)
	assert.Equal(t, "authentication error (password): empty token", err.Error())
	assert.True(t, pkgerrors.IsUnauthorized(err))
}

func TestIOError(t *testing.T) {
	baseErr := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "/tmp/token.yaml", baseErr)
	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Operation)
	assert.Contains(t, err.Error(), "/tmp/token.yaml")
	assert.ErrorIs(t, err, baseErr)
	assert.Nil(t, pkgerrors.WrapIO("write", "/x", nil))
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("delete", "catch", "abc", pkgerrors.NewAPIError("/captures/delete/abc", 404, "introuvable"))
	assert.Equal(t, "failed to delete catch abc: API error from /captures/delete/abc (status 404): introuvable", err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestParseAndConfigErrors(t *testing.T) {
	perr := pkgerrors.WrapParse("yaml", "token.yaml", errors.New("bad indent"))
	assert.Equal(t, "parse error in yaml file token.yaml: bad indent", perr.Error())

	cerr := pkgerrors.NewConfigError("api", "api_url is required", nil)
	assert.Equal(t, "configuration error in api: api_url is required", cerr.Error())
	assert.Nil(t, cerr.Unwrap())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"api error", fmt.Errorf("create: %w", pkgerrors.NewAPIError("/captures/add", 400, "Espèce inconnue")), "Espèce inconnue"},
		{"validation", pkgerrors.NewValidationError("espece", "", "species is required"), "species is required"},
		{"plain", errors.New("dial tcp: refused"), "dial tcp: refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.Message(tt.err))
		})
	}
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, pkgerrors.IsNotLoggedIn(fmt.Errorf("list: %w", pkgerrors.ErrNotLoggedIn)))
	assert.True(t, pkgerrors.IsUnavailable(pkgerrors.NewAPIError("/x", 503, "down")))
	assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	assert.False(t, pkgerrors.IsUnauthorized(errors.New("other")))
}
