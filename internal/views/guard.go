package views

import (
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/pkg/errors"
)

// Guard is the single route guard every screen goes through before an
// authenticated call.
type Guard struct {
	Session session.Handle
}

// Check returns errors.ErrNotLoggedIn when there is no session.
func (g Guard) Check() error {
	_, err := g.Token()
	return err
}

// Token returns the current token, or errors.ErrNotLoggedIn when there is none.
func (g Guard) Token() (string, error) {
	if g.Session == nil {
		return "", errors.ErrNotLoggedIn
	}
	token := g.Session.Token()
	if token == "" {
		return "", errors.ErrNotLoggedIn
	}
	return token, nil
}
