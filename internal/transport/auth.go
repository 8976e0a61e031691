package transport

import (
	"net/http"
)

// Authenticator applies a session token to outgoing requests.
type Authenticator interface {
	Apply(req *http.Request, token string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {}

// BearerAuth sends the token as "Authorization: Bearer <token>".
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// HeaderAuth sends the raw token in a custom header, for deployments of the
// catch service that read e.g. x-access-token.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, token string) {
	req.Header.Set(a.Header, token)
}

// AuthenticatorFor returns BearerAuth for an empty or "Authorization" header
// name and HeaderAuth otherwise.
func AuthenticatorFor(header string) Authenticator {
	if header == "" || http.CanonicalHeaderKey(header) == "Authorization" {
		return &BearerAuth{}
	}
	return &HeaderAuth{Header: header}
}
