package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgerrors "github.com/agentstation/catchlog/pkg/errors"
)

// TestNoAuth tests that NoAuth applies no authentication.
func TestNoAuth(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}
	(&NoAuth{}).Apply(req, "tok")
	if len(req.Header) != 0 {
		t.Errorf("Expected no headers, got %d", len(req.Header))
	}
}

// TestBearerAuth tests Bearer token authentication.
func TestBearerAuth(t *testing.T) {
	req := &http.Request{Header: make(http.Header)}
	(&BearerAuth{}).Apply(req, "tok")
	if got := req.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("Expected Authorization header 'Bearer tok', got '%s'", got)
	}
}

// TestAuthenticatorFor tests the header-name based selection.
func TestAuthenticatorFor(t *testing.T) {
	if _, ok := AuthenticatorFor("").(*BearerAuth); !ok {
		t.Error("empty header should select BearerAuth")
	}
	if _, ok := AuthenticatorFor("authorization").(*BearerAuth); !ok {
		t.Error("authorization header should select BearerAuth")
	}

	auth := AuthenticatorFor("x-access-token")
	req := &http.Request{Header: make(http.Header)}
	auth.Apply(req, "tok")
	if got := req.Header.Get("X-Access-Token"); got != "tok" {
		t.Errorf("Expected x-access-token 'tok', got '%s'", got)
	}
	if req.Header.Get("Authorization") != "" {
		t.Error("Should not have Authorization header")
	}
}

// TestClientSend tests URL joining, headers and token application.
func TestClientSend(t *testing.T) {
	var gotPath, gotAuth, gotContentType, gotRawPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(server.URL+"/api/", &BearerAuth{})
	if c.BaseURL() != server.URL+"/api" {
		t.Errorf("Expected trailing slash trimmed, got %s", c.BaseURL())
	}

	resp, err := c.Send(context.Background(), http.MethodPost, "/captures/espece/Truite%20arc-en-ciel", "tok", map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	_ = DecodeResponse(resp, nil)

	if gotPath != "/api/captures/espece/Truite arc-en-ciel" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if gotRawPath != "/api/captures/espece/Truite%20arc-en-ciel" {
		t.Errorf("Unexpected escaped path %q", gotRawPath)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Unexpected auth %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Unexpected content type %q", gotContentType)
	}

	resp, err = c.Get(context.Background(), "captures/all", "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	_ = DecodeResponse(resp, nil)
	if gotAuth != "" {
		t.Errorf("Empty token must not set Authorization, got %q", gotAuth)
	}
}

// TestClientTimeout tests that WithTimeout is honoured.
func TestClientTimeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-done
	}))
	defer server.Close()
	defer close(done)

	c := New(server.URL, nil, WithTimeout(50*time.Millisecond))
	_, err := c.Get(context.Background(), "/slow", "")
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	var apiErr *pkgerrors.APIError
	if !errors.As(err, &apiErr) {
		t.Errorf("Expected APIError, got %T", err)
	}
}

// TestDecodeResponse tests status handling and message extraction.
func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantMessage string
	}{
		{"ok", http.StatusOK, `{"token":"abc"}`, false, ""},
		{"created", http.StatusCreated, `{"token":"abc"}`, false, ""},
		{"empty body", http.StatusNoContent, ``, false, ""},
		{"message field", http.StatusBadRequest, `{"message":"Espèce inconnue"}`, true, "Espèce inconnue"},
		{"error field", http.StatusUnauthorized, `{"error":"token expiré"}`, true, "token expiré"},
		{"status text fallback", http.StatusInternalServerError, `<html>oops</html>`, true, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := New(server.URL, nil).Get(context.Background(), "/x", "")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			var out struct {
				Token string `json:"token"`
			}
			err = DecodeResponse(resp, &out)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if tt.body != "" && out.Token != "abc" {
					t.Errorf("Expected token abc, got %q", out.Token)
				}
				return
			}

			var apiErr *pkgerrors.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
			if apiErr.Endpoint != "/x" {
				t.Errorf("Expected endpoint /x, got %q", apiErr.Endpoint)
			}
		})
	}
}

// TestDecodeResponseBadJSON tests that malformed success bodies are parse errors.
func TestDecodeResponseBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	resp, err := New(server.URL, nil).Get(context.Background(), "/x", "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	var out map[string]any
	err = DecodeResponse(resp, &out)
	var parseErr *pkgerrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Expected ParseError, got %v", err)
	}
}
