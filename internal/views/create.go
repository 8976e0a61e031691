package views

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/agentstation/catchlog/internal/remote"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// CreateInput is the raw content of the creation form. Numbers and the
// timestamp are kept as typed; notes are comma separated unless NoteList is
// set.
type CreateInput struct {
	Species    string
	LengthCm   string
	WeightKg   string
	CapturedAt string
	Released   bool
	Technique  string
	Location   string
	Weather    string
	WaterTempC string
	Notes      string

	// NoteList holds notes given one by one. When non-nil it replaces Notes.
	NoteList []string
}

// CreateState is what the creation screen renders.
type CreateState struct {
	Input          CreateInput
	Species        []string
	SpeciesLoading bool
	SpeciesError   string
	Submitting     bool
	Message        string
	Error          string
	Created        *catches.Catch
}

// CreateForm drives the creation screen.
type CreateForm struct {
	guard Guard
	svc   CatchService
	clock formClock

	mu    sync.Mutex
	state CreateState
}

// NewCreateForm returns a form holding the defaults. Species are not loaded
// until Load, so the form cannot be submitted before that.
func NewCreateForm(svc CatchService, sess session.Handle, opts ...FormOption) *CreateForm {
	f := &CreateForm{
		guard: Guard{Session: sess},
		svc:   svc,
		clock: newFormClock(opts),
	}
	f.state = CreateState{Input: f.defaults(), SpeciesLoading: true}
	return f
}

func (f *CreateForm) defaults() CreateInput {
	return CreateInput{
		CapturedAt: catches.LocalInputValue(f.clock.now(), f.clock.loc),
		Released:   true,
	}
}

// State returns a copy of the current state.
func (f *CreateForm) State() CreateState {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Species = slices.Clone(f.state.Species)
	return s
}

// Load fetches the species reference list.
func (f *CreateForm) Load(ctx context.Context) error {
	token, err := f.guard.Token()
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.state.SpeciesLoading = true
	f.state.SpeciesError = ""
	f.mu.Unlock()

	list, err := f.svc.ListSpecies(ctx, token)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SpeciesLoading = false
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Loading species failed")
		f.state.Species = nil
		f.state.SpeciesError = MsgSpeciesFailed + errors.Message(err)
		return err
	}
	f.state.Species = catches.SpeciesNames(list)
	return nil
}

// SetInput replaces the form content without submitting it.
func (f *CreateForm) SetInput(in CreateInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Input = in
}

// CanSubmit reports whether the submit button is enabled.
func (f *CreateForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

func (f *CreateForm) canSubmitLocked() bool {
	return !f.state.Submitting &&
		!f.state.SpeciesLoading &&
		f.state.SpeciesError == "" &&
		strings.TrimSpace(f.state.Input.Species) != ""
}

// Submit sends in as a new catch. On success the form is reset to its
// defaults; on failure the input is kept for correction.
func (f *CreateForm) Submit(ctx context.Context, in CreateInput) error {
	token, err := f.guard.Token()
	if err != nil {
		return err
	}
	ctx = logging.WithOperation(ctx, "create")

	f.mu.Lock()
	f.state.Input = in
	if !f.canSubmitLocked() {
		f.mu.Unlock()
		return errors.NewValidationError("", nil, MsgFormUnavailable)
	}
	species := slices.Clone(f.state.Species)
	f.state.Submitting = true
	f.state.Message = ""
	f.state.Error = ""
	f.state.Created = nil
	f.mu.Unlock()

	record, err := in.toCatch(species, f.clock)
	var res *remote.CreateResult
	if err == nil {
		res, err = f.svc.CreateCatch(ctx, token, record)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Submitting = false
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Creating catch failed")
		f.state.Error = MsgCreateFailed + errors.Message(err)
		return err
	}
	logging.FromContext(ctx).Info().Int("status", res.StatusCode).Str("espece", record.Species).Msg("Catch created")
	f.state.Message = MsgCreated
	f.state.Input = f.defaults()
	f.state.Created = res.Catch
	return nil
}

func (in CreateInput) toCatch(species []string, clock formClock) (catches.Catch, error) {
	var c catches.Catch
	var err error

	c.Species = strings.TrimSpace(in.Species)
	if len(species) > 0 && !slices.Contains(species, c.Species) {
		return c, errors.NewValidationError("espece", c.Species, "unknown species")
	}
	if c.LengthCm, err = catches.ParseDecimal("tailleCm", in.LengthCm); err != nil {
		return c, err
	}
	if c.WeightKg, err = catches.ParseDecimal("poidsKg", in.WeightKg); err != nil {
		return c, err
	}
	if c.WaterTempC, err = catches.ParseDecimal("temperatureEau", in.WaterTempC); err != nil {
		return c, err
	}
	if c.CapturedAt, err = catches.NormalizeTimestamp(in.CapturedAt, clock.loc); err != nil {
		return c, err
	}
	if in.Weather != "" && !catches.IsWeather(in.Weather) {
		return c, errors.NewValidationError("conditionsMeteo", in.Weather, "unknown weather condition")
	}

	c.Released = in.Released
	c.Technique = in.Technique
	c.Location = in.Location
	c.Weather = in.Weather
	if in.NoteList != nil {
		c.Notes = catches.CleanNotes(in.NoteList)
	} else {
		c.Notes = catches.SplitCommaNotes(in.Notes)
	}

	return c, c.Validate()
}
