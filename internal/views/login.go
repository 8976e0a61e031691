package views

import (
	"context"
	"strings"
	"sync"

	"github.com/agentstation/catchlog/internal/session"
)

// LoginView drives the login screen.
type LoginView struct {
	sess session.Handle

	mu    sync.Mutex
	email string
	err   string
}

// NewLoginView returns the login screen controller.
func NewLoginView(sess session.Handle) *LoginView {
	return &LoginView{sess: sess}
}

// ShouldRedirect reports whether the screen should send the user home
// because a session already exists.
func (v *LoginView) ShouldRedirect() bool {
	return v.sess.IsLoggedIn()
}

// Submit attempts a login. On failure the error message is set and false
// is returned.
func (v *LoginView) Submit(ctx context.Context, email, password string) bool {
	email = strings.TrimSpace(email)
	ok := v.sess.Login(ctx, email, password)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.email = email
	if ok {
		v.err = ""
	} else {
		v.err = MsgLoginFailed
	}
	return ok
}

// Email returns the last submitted address, to refill the field.
func (v *LoginView) Email() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.email
}

// Error returns the current error message.
func (v *LoginView) Error() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
