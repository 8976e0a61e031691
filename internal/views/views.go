// Package views holds the screen controllers of catchlog. Each controller
// keeps the local state one screen renders (loading flags, records, messages)
// and performs its network calls through a CatchService with the token of an
// injected session handle. The browser UI and the CLI both drive them.
package views

import (
	"context"
	"time"

	"github.com/agentstation/catchlog/internal/remote"
	"github.com/agentstation/catchlog/pkg/catches"
)

// CatchService is the part of the remote API the screens use.
type CatchService interface {
	ListCatches(ctx context.Context, token string, f catches.Filter) ([]catches.Catch, error)
	GetCatch(ctx context.Context, token, id string) (*catches.Catch, error)
	CreateCatch(ctx context.Context, token string, c catches.Catch) (*remote.CreateResult, error)
	UpdateCatch(ctx context.Context, token string, c catches.Catch) (*catches.Catch, error)
	DeleteCatch(ctx context.Context, token, id string) error
	ListSpecies(ctx context.Context, token string) ([]catches.Species, error)
}

var _ CatchService = (*remote.Client)(nil)

// User-facing messages.
const (
	MsgLoginFailed     = "Login incorrect"
	MsgListFailed      = "Erreur lors du chargement ou du filtrage: "
	MsgDeleteFailed    = "Erreur lors de la suppression: "
	MsgSpeciesFailed   = "Échec du chargement des espèces: "
	MsgCreateFailed    = "Erreur lors de l'ajout: "
	MsgCreated         = "Capture ajoutée avec succès!"
	MsgEditLoadFailed  = "Erreur lors du chargement de la capture. L'ID est-il correct ?"
	MsgUpdated         = "Capture modifiée avec succès !"
	MsgUpdateFailed    = "Échec de la modification. Veuillez vérifier vos données."
	MsgFormUnavailable = "Le formulaire n'est pas prêt."
)

// FormOption configures the clock and time zone of the entry forms.
type FormOption func(*formClock)

type formClock struct {
	now func() time.Time
	loc *time.Location
}

func newFormClock(opts []FormOption) formClock {
	c := formClock{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) FormOption {
	return func(c *formClock) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the zone datetime-local values are read in.
func WithLocation(loc *time.Location) FormOption {
	return func(c *formClock) {
		if loc != nil {
			c.loc = loc
		}
	}
}
