// Package cache keeps the bearer tokens issued by the development catch
// service. Tokens expire after a fixed TTL and are swept periodically.
package cache

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Tokens maps issued tokens to the account they were issued for.
type Tokens struct {
	store *gocache.Cache
}

// New creates a token registry. ttl is how long an issued token stays valid;
// cleanupInterval is how often expired tokens are removed from memory.
func New(ttl, cleanupInterval time.Duration) *Tokens {
	return &Tokens{
		store: gocache.New(ttl, cleanupInterval),
	}
}

// Issue creates a new token for subject.
func (t *Tokens) Issue(subject string) string {
	token := uuid.NewString()
	t.store.Set(token, subject, gocache.DefaultExpiration)
	return token
}

// Subject returns the account a token was issued for.
func (t *Tokens) Subject(token string) (string, bool) {
	v, ok := t.store.Get(token)
	if !ok {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

// Valid reports whether token was issued and has not expired.
func (t *Tokens) Valid(token string) bool {
	_, ok := t.Subject(token)
	return ok
}

// Count returns the number of tokens held, including expired ones not yet
// swept.
func (t *Tokens) Count() int {
	return t.store.ItemCount()
}
