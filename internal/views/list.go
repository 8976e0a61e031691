package views

import (
	"context"
	"slices"
	"sync"

	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// ListState is what the list screen renders.
type ListState struct {
	Filter  catches.Filter
	Catches []catches.Catch
	Loading bool
	Error   string
}

// ListView drives the catch list and its filter.
//
// Every fetch takes a generation number; a response is applied only if no
// newer fetch was issued meanwhile, so a slow answer for an old filter never
// overwrites the current one.
type ListView struct {
	guard Guard
	svc   CatchService

	mu    sync.Mutex
	state ListState
	gen   uint64
}

// NewListView creates the controller with an initial filter.
func NewListView(svc CatchService, sess session.Handle, initial catches.Filter) *ListView {
	if initial.Kind == "" {
		initial.Kind = catches.KindNone
	}
	return &ListView{
		guard: Guard{Session: sess},
		svc:   svc,
		state: ListState{Filter: initial, Catches: []catches.Catch{}},
	}
}

// State returns a copy of the current state.
func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Catches = slices.Clone(v.state.Catches)
	return s
}

// Mount performs the first fetch.
func (v *ListView) Mount(ctx context.Context) error {
	return v.fetch(ctx)
}

// SetKind changes the filter kind, clears its value and fetches. Switching
// to none lists every catch.
func (v *ListView) SetKind(ctx context.Context, kind catches.Kind) error {
	v.mu.Lock()
	v.state.Filter = catches.Filter{Kind: kind}
	v.mu.Unlock()

	return v.fetch(ctx)
}

// SetValue changes the filter value and fetches unless the kind is none.
func (v *ListView) SetValue(ctx context.Context, value string) error {
	v.mu.Lock()
	v.state.Filter.Value = value
	kind := v.state.Filter.Kind
	v.mu.Unlock()

	if kind == catches.KindNone {
		return nil
	}
	return v.fetch(ctx)
}

// Apply is the explicit apply action. Only the none kind needs it; the
// others already fetched on value change.
func (v *ListView) Apply(ctx context.Context) error {
	v.mu.Lock()
	kind := v.state.Filter.Kind
	v.mu.Unlock()

	if kind != catches.KindNone {
		return nil
	}
	return v.fetch(ctx)
}

// Refresh re-runs the fetch for the current filter.
func (v *ListView) Refresh(ctx context.Context) error {
	return v.fetch(ctx)
}

// Delete removes one catch and then re-runs the current filtered fetch.
func (v *ListView) Delete(ctx context.Context, id string) error {
	token, err := v.guard.Token()
	if err != nil {
		return err
	}

	ctx = logging.WithOperation(logging.WithCatch(ctx, id), "delete")
	if err := v.svc.DeleteCatch(ctx, token, id); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Delete failed")
		v.mu.Lock()
		v.state.Error = MsgDeleteFailed + errors.Message(err)
		v.mu.Unlock()
		return errors.WrapResource("delete", "catch", id, err)
	}
	logging.FromContext(ctx).Info().Msg("Catch deleted")

	return v.fetch(ctx)
}

func (v *ListView) fetch(ctx context.Context) error {
	token, err := v.guard.Token()
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.gen++
	gen := v.gen
	filter := v.state.Filter
	v.state.Loading = true
	v.state.Error = ""
	v.mu.Unlock()

	ctx = logging.WithFilter(ctx, string(filter.Kind), filter.Value)

	var list []catches.Catch
	err = filter.Validate()
	if err == nil {
		list, err = v.svc.ListCatches(ctx, token, filter)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		logging.FromContext(ctx).Debug().Uint64("generation", gen).Msg("Discarding stale list response")
		return nil
	}
	v.state.Loading = false
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Listing catches failed")
		v.state.Catches = []catches.Catch{}
		v.state.Error = MsgListFailed + errors.Message(err)
		return err
	}
	if list == nil {
		list = []catches.Catch{}
	}
	v.state.Catches = list
	return nil
}
