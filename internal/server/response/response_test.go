package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentstation/catchlog/pkg/errors"
)

// TestJSON tests the JSON helper function.
func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]string{"token": "abc"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["token"] != "abc" {
		t.Errorf("expected token=abc, got %s", body["token"])
	}
}

// TestErrorFromType tests mapping of typed errors to status codes.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         errors.NewNotFoundError("catch", "42"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "catch with ID 42 not found",
		},
		{
			name:        "validation",
			err:         errors.NewValidationError("espece", "", "espèce requise"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "espèce requise",
		},
		{
			name:        "wrapped validation",
			err:         fmt.Errorf("decode: %w", errors.NewValidationError("", nil, "corps invalide")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "corps invalide",
		},
		{
			name:        "unauthorized",
			err:         errors.NewAuthenticationError("password", "bad", nil),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "authentication error (password): bad",
		},
		{
			name:        "other",
			err:         errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Erreur interne du serveur",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body Message
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, body.Message)
			}
		})
	}
}
