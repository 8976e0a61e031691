// Package web serves the catchlog browser UI. Every page is rendered on the
// server from the state of a views controller built for the request.
package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/agentstation/catchlog/internal/server/middleware"
	"github.com/agentstation/catchlog/internal/session"
	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/logging"
)

// Paths of the browser UI.
const (
	PathHome   = "/"
	PathList   = "/liste"
	PathLogin  = "/login"
	PathLogout = "/logout"
	PathCreate = "/ajouter"
)

// Server holds the dependencies of the browser UI.
type Server struct {
	svc     views.CatchService
	sess    session.Handle
	pages   *pages
	logger  *zerolog.Logger
	loc     *time.Location
	nowFunc func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLocation sets the zone dates are shown and read in.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now for the create form defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.nowFunc = now
		}
	}
}

// New creates the browser UI server.
func New(svc views.CatchService, sess session.Handle, opts ...Option) (*Server, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	s := &Server{
		svc:     svc,
		sess:    sess,
		pages:   p,
		logger:  logging.Default(),
		loc:     time.Local,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the router wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc(PathLogin, s.handleLoginPage).Methods(http.MethodGet)
	r.HandleFunc(PathLogin, s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc(PathLogout, s.handleLogout).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.RequireSession(s.sess, PathLogin))
	protected.HandleFunc(PathHome, s.handleHome).Methods(http.MethodGet)
	protected.HandleFunc(PathList, s.handleList).Methods(http.MethodGet)
	protected.HandleFunc("/captures/{id}/supprimer", s.handleDelete).Methods(http.MethodPost)
	protected.HandleFunc(PathCreate, s.handleCreatePage).Methods(http.MethodGet)
	protected.HandleFunc(PathCreate, s.handleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/modifier/{id}", s.handleEditPage).Methods(http.MethodGet)
	protected.HandleFunc("/modifier/{id}", s.handleEdit).Methods(http.MethodPost)

	return middleware.Chain(
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logger(s.logger),
	)(r)
}

func (s *Server) formOptions() []views.FormOption {
	return []views.FormOption{views.WithClock(s.nowFunc), views.WithLocation(s.loc)}
}
