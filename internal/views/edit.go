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

// EditInput is the raw content of the edit form. Notes are one per line.
type EditInput struct {
	Species    string
	LengthCm   string
	WeightKg   string
	CapturedAt string
	Released   bool
	Technique  string
	Location   string
	Weather    string
	WaterTempC string
	NotesText  string
}

// EditState is what the edit screen renders.
type EditState struct {
	ID         string
	Input      EditInput
	Notes      []string
	Loading    bool
	Loaded     bool
	LoadError  string
	Submitting bool
	Message    string
	Error      string
}

// EditForm drives the edit screen of one catch.
type EditForm struct {
	guard Guard
	svc   CatchService
	clock formClock

	mu    sync.Mutex
	state EditState
}

// NewEditForm returns an empty form; call Load before rendering it.
func NewEditForm(svc CatchService, sess session.Handle, opts ...FormOption) *EditForm {
	return &EditForm{
		guard: Guard{Session: sess},
		svc:   svc,
		clock: newFormClock(opts),
		state: EditState{Notes: []string{}},
	}
}

// State returns a copy of the current state.
func (f *EditForm) State() EditState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Notes = slices.Clone(f.state.Notes)
	return s
}

// Load fetches the catch and fills the form with it.
func (f *EditForm) Load(ctx context.Context, id string) error {
	token, err := f.guard.Token()
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.state = EditState{ID: id, Loading: true, Notes: []string{}}
	f.mu.Unlock()

	ctx = logging.WithCatch(ctx, id)
	c, err := f.svc.GetCatch(ctx, token, id)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Loading catch failed")
		f.state.LoadError = MsgEditLoadFailed
		return err
	}
	f.state.Loaded = true
	f.state.Input = f.inputFrom(c)
	f.state.Notes = slices.Clone(c.Notes)
	if f.state.Notes == nil {
		f.state.Notes = []string{}
	}
	return nil
}

func (f *EditForm) inputFrom(c *catches.Catch) EditInput {
	at := c.CapturedAt
	if t, err := catches.ParseTimestamp(at, f.clock.loc); err == nil {
		at = catches.LocalInputValue(t, f.clock.loc)
	}
	return EditInput{
		Species:    c.Species,
		LengthCm:   catches.FormatDecimal(c.LengthCm),
		WeightKg:   catches.FormatDecimal(c.WeightKg),
		CapturedAt: at,
		Released:   c.Released,
		Technique:  c.Technique,
		Location:   c.Location,
		Weather:    c.Weather,
		WaterTempC: catches.FormatDecimal(c.WaterTempC),
		NotesText:  catches.JoinLineNotes(c.Notes),
	}
}

// SetNotesText updates the notes textarea and the derived note list.
func (f *EditForm) SetNotesText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Input.NotesText = text
	f.state.Notes = catches.SplitLineNotes(text)
}

// CanSubmit reports whether the submit button is enabled.
func (f *EditForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Loaded && !f.state.Submitting
}

// Submit replaces the stored catch with in. Unparsable numbers become zero.
// The form is neither reset nor left on success.
func (f *EditForm) Submit(ctx context.Context, in EditInput) error {
	token, err := f.guard.Token()
	if err != nil {
		return err
	}
	ctx = logging.WithOperation(ctx, "update")

	f.mu.Lock()
	if !f.state.Loaded || f.state.Submitting {
		f.mu.Unlock()
		return errors.NewValidationError("", nil, MsgFormUnavailable)
	}
	id := f.state.ID
	f.state.Input = in
	f.state.Notes = catches.SplitLineNotes(in.NotesText)
	f.state.Submitting = true
	f.state.Message = ""
	f.state.Error = ""
	f.mu.Unlock()

	ctx = logging.WithCatch(ctx, id)
	record, err := in.toCatch(id, f.clock)
	if err == nil {
		_, err = f.svc.UpdateCatch(ctx, token, record)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Submitting = false
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Updating catch failed")
		f.state.Error = MsgUpdateFailed
		return err
	}
	logging.FromContext(ctx).Info().Msg("Catch updated")
	f.state.Message = MsgUpdated
	return nil
}

func (in EditInput) toCatch(id string, clock formClock) (catches.Catch, error) {
	at, err := catches.NormalizeTimestamp(in.CapturedAt, clock.loc)
	if err != nil {
		return catches.Catch{}, err
	}
	return catches.Catch{
		ID:         id,
		Species:    in.Species,
		LengthCm:   catches.ParseDecimalOrZero(in.LengthCm),
		WeightKg:   catches.ParseDecimalOrZero(in.WeightKg),
		CapturedAt: at,
		Released:   in.Released,
		Technique:  in.Technique,
		Location:   in.Location,
		Weather:    in.Weather,
		WaterTempC: catches.ParseDecimalOrZero(in.WaterTempC),
		Notes:      catches.SplitLineNotes(in.NotesText),
	}, nil
}
