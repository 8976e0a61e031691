package views_test

import (
	"context"
	"sync"
	"testing"

	"github.com/agentstation/catchlog/internal/remote"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
)

// fakeService records calls and answers from configurable functions.
type fakeService struct {
	mu sync.Mutex

	listFn    func(ctx context.Context, f catches.Filter) ([]catches.Catch, error)
	listCalls []catches.Filter

	deleteErr   error
	deleteCalls []string

	getFn func(id string) (*catches.Catch, error)

	createRes *remote.CreateResult
	createErr error
	created   []catches.Catch

	updateErr error
	updated   []catches.Catch

	species    []catches.Species
	speciesErr error

	tokens []string
}

func (f *fakeService) record(token string) {
	f.tokens = append(f.tokens, token)
}

func (f *fakeService) ListCatches(ctx context.Context, token string, filter catches.Filter) ([]catches.Catch, error) {
	f.mu.Lock()
	f.record(token)
	f.listCalls = append(f.listCalls, filter)
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return []catches.Catch{}, nil
	}
	return fn(ctx, filter)
}

func (f *fakeService) GetCatch(_ context.Context, token, id string) (*catches.Catch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	if f.getFn == nil {
		return nil, errors.NewNotFoundError("catch", id)
	}
	return f.getFn(id)
}

func (f *fakeService) CreateCatch(_ context.Context, token string, c catches.Catch) (*remote.CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	f.created = append(f.created, c)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createRes != nil {
		return f.createRes, nil
	}
	return &remote.CreateResult{StatusCode: 201}, nil
}

func (f *fakeService) UpdateCatch(_ context.Context, token string, c catches.Catch) (*catches.Catch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	f.updated = append(f.updated, c)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &c, nil
}

func (f *fakeService) DeleteCatch(_ context.Context, token, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func (f *fakeService) ListSpecies(_ context.Context, token string) ([]catches.Species, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	return f.species, f.speciesErr
}

func (f *fakeService) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tokens)
}

func loggedIn(t *testing.T) *session.Store {
	t.Helper()
	return session.New(nil, session.NewMemoryStore("T"))
}

func loggedOut(t *testing.T) *session.Store {
	t.Helper()
	return session.New(nil, session.NewMemoryStore(""))
}
