// Package devapi is a local stand-in for the remote catch service. It speaks
// the same JSON over HTTP so the CLI and the browser UI can be used without
// the real backend.
package devapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/agentstation/catchlog/internal/server/cache"
	"github.com/agentstation/catchlog/internal/server/middleware"
	"github.com/agentstation/catchlog/internal/server/response"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/constants"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// PathPrefix is where the API is mounted.
const PathPrefix = "/api"

// Config holds the stand-in's settings.
type Config struct {
	Addr     string
	Database string
	User     string
	Password string
	TokenTTL time.Duration
}

// DefaultConfig returns the settings used by `catchlog devapi` without flags.
func DefaultConfig() Config {
	return Config{
		Addr:     constants.DefaultDevAPIAddr,
		Database: constants.DefaultDevAPIDatabase,
		User:     "demo@catchlog.local",
		Password: "demo",
		TokenTTL: constants.TokenTTL,
	}
}

// API serves the catch service endpoints.
type API struct {
	store  *Store
	tokens *cache.Tokens
	logger *zerolog.Logger
}

// New creates the API over store. Tokens live for ttl.
func New(store *Store, ttl time.Duration, logger *zerolog.Logger) *API {
	if ttl <= 0 {
		ttl = constants.TokenTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &API{
		store:  store,
		tokens: cache.New(ttl, constants.TokenCleanupInterval),
		logger: logger,
	}
}

// Handler returns the routes wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	// Match on the escaped path so a species name holding "/" stays one segment.
	r := mux.NewRouter().UseEncodedPath()
	api := r.PathPrefix(PathPrefix).Subrouter()

	api.HandleFunc("/generatetoken", a.handleToken).Methods(http.MethodPost)
	api.HandleFunc("/generatetoken/", a.handleToken).Methods(http.MethodPost)

	api.HandleFunc("/captures/all", a.handleList(catches.KindNone)).Methods(http.MethodGet)
	api.HandleFunc("/captures/espece/{value}", a.handleList(catches.KindSpecies)).Methods(http.MethodGet)
	api.HandleFunc("/captures/avant/{value}", a.handleList(catches.KindBefore)).Methods(http.MethodGet)
	api.HandleFunc("/captures/apres/{value}", a.handleList(catches.KindAfter)).Methods(http.MethodGet)
	api.HandleFunc("/captures/add", a.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/captures/delete/{id}", a.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/captures/{id}", a.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/captures/{id}", a.handleUpdate).Methods(http.MethodPut)

	api.HandleFunc("/espece-poisson/all", a.handleSpecies).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route introuvable")
	})

	return middleware.Chain(
		middleware.Recovery(a.logger),
		middleware.RequestID(),
		middleware.Logger(a.logger),
		middleware.Bearer(middleware.BearerConfig{
			Validate:    a.tokens.Valid,
			PublicPaths: []string{PathPrefix + "/generatetoken", PathPrefix + "/generatetoken/"},
		}, a.logger),
	)(r)
}

type tokenRequest struct {
	User struct {
		Email    string `json:"courriel"`
		Password string `json:"motPasse"`
	} `json:"utilisateur"`
}

func (a *API) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeBody(r, &req); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if err := a.store.Authenticate(r.Context(), req.User.Email, req.User.Password); err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Str("courriel", req.User.Email).Msg("Token refused")
		if errors.IsUnauthorized(err) {
			response.Unauthorized(w, "Courriel ou mot de passe invalide")
			return
		}
		response.InternalError(w, err)
		return
	}
	token := a.tokens.Issue(req.User.Email)
	logging.FromContext(r.Context()).Info().
		Str("courriel", req.User.Email).
		Int("tokens", a.tokens.Count()).
		Msg("Token issued")
	response.OK(w, map[string]string{"token": token})
}

func (a *API) handleList(kind catches.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := pathVar(r, "value")
		if err != nil {
			response.ErrorFromType(w, err)
			return
		}
		list, err := a.store.List(r.Context(), catches.Filter{Kind: kind, Value: value})
		if err != nil {
			a.fail(w, r, err)
			return
		}
		response.OK(w, map[string][]catches.Catch{"captures": list})
	}
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathVar(r, "id")
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	c, err := a.store.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	response.OK(w, c)
}

type createRequest struct {
	Capture *catches.Catch `json:"capture"`
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if req.Capture == nil {
		response.BadRequest(w, "Champ capture manquant")
		return
	}
	c, err := a.store.Insert(r.Context(), *req.Capture)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	logging.FromContext(r.Context()).Info().Str("catch_id", c.ID).Msg("Catch created")
	response.Created(w, c)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var c catches.Catch
	if err := decodeBody(r, &c); err != nil {
		response.ErrorFromType(w, err)
		return
	}
	id, err := pathVar(r, "id")
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	c.ID = id
	updated, err := a.store.Update(r.Context(), c)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	response.OK(w, updated)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathVar(r, "id")
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	if err := a.store.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err)
		return
	}
	response.OK(w, response.Message{Message: "Capture supprimée"})
}

func (a *API) handleSpecies(w http.ResponseWriter, r *http.Request) {
	list, err := a.store.Species(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	response.OK(w, map[string][]catches.Species{"especes": list})
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.IsNotFound(err) {
		response.NotFound(w, "Capture introuvable")
		return
	}
	if !errors.IsValidationError(err) {
		logging.FromContext(r.Context()).Error().Err(err).Msg("Request failed")
	}
	response.ErrorFromType(w, err)
}

// pathVar returns the decoded route variable name. The router matches on
// the escaped path, so variables arrive percent-encoded.
func pathVar(r *http.Request, name string) (string, error) {
	v, err := url.PathUnescape(mux.Vars(r)[name])
	if err != nil {
		return "", errors.NewValidationError(name, mux.Vars(r)[name], "Paramètre de chemin invalide")
	}
	return v, nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, constants.MaxRequestBodyBytes))
	if err != nil {
		return errors.WrapIO("read", "request body", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.NewValidationError("", nil, "Corps de requête JSON invalide")
	}
	return nil
}

// Open opens the database named in cfg, seeds it and returns the API with
// the store's close function.
func Open(ctx context.Context, cfg Config, logger *zerolog.Logger) (*API, func() error, error) {
	store, err := OpenStore(cfg.Database)
	if err != nil {
		return nil, nil, errors.WrapResource("open", "database", cfg.Database, err)
	}
	if err := store.Seed(ctx, cfg.User, cfg.Password); err != nil {
		_ = store.Close()
		return nil, nil, errors.WrapResource("seed", "database", cfg.Database, err)
	}
	return New(store, cfg.TokenTTL, logger), store.Close, nil
}
