// Package session owns the bearer token of the signed-in user: it restores it
// at startup, obtains a new one on login and forgets it on logout.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/catchlog/pkg/logging"
)

// Handle is the view of the session handed to screens and commands.
type Handle interface {
	Token() string
	IsLoggedIn() bool
	Login(ctx context.Context, identifier, secret string) bool
	Logout()
}

// TokenIssuer exchanges credentials for a token.
type TokenIssuer interface {
	IssueToken(ctx context.Context, identifier, secret string) (string, error)
}

// TokenStore persists the token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Store is the session store. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	token  string
	issuer TokenIssuer
	tokens TokenStore
	logger *zerolog.Logger
}

var _ Handle = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for login and persistence events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store and restores the persisted token, if any. The restored
// token is trusted as is: an expired one surfaces on the first rejected call.
func New(issuer TokenIssuer, tokens TokenStore, opts ...Option) *Store {
	if tokens == nil {
		tokens = NewMemoryStore("")
	}
	s := &Store{
		issuer: issuer,
		tokens: tokens,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	token, err := tokens.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Could not restore session token, starting logged out")
		token = ""
	}
	s.token = token
	if token != "" {
		s.logger.Debug().Msg("Restored session token")
	}
	return s
}

// Token returns the current token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn reports whether a token is held.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// Login asks the issuer for a token. On success the token is kept and
// persisted and Login returns true. Any failure, including an empty token,
// logs the session out and returns false.
func (s *Store) Login(ctx context.Context, identifier, secret string) bool {
	logger := logging.FromContext(ctx)

	if s.issuer == nil {
		logger.Error().Msg("Login attempted without a token issuer")
		s.Logout()
		return false
	}

	token, err := s.issuer.IssueToken(ctx, identifier, secret)
	if err != nil || token == "" {
		logger.Warn().Err(err).Str("identifier", identifier).Msg("Login failed")
		s.Logout()
		return false
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.tokens.Save(token); err != nil {
		logger.Warn().Err(err).Msg("Logged in but could not persist the token")
	}
	logger.Info().Str("identifier", identifier).Msg("Logged in")
	return true
}

// Logout forgets the token in memory and in storage. It never calls the
// remote service and may be called any number of times.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("Could not erase the persisted token")
	}
}
