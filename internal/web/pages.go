package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "login", "list", "create", "edit"}

type pages struct {
	byName map[string]*template.Template
}

func loadPages() (*pages, error) {
	funcs := template.FuncMap{
		"kindLabel": func(k catches.Kind) string { return k.Label() },
	}
	p := &pages{byName: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.WrapParse("template", name+".html", err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// page is the data every template receives.
type page struct {
	Title    string
	LoggedIn bool
	Data     any
}

// render executes a page into a buffer first so a template failure still
// yields a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	t, ok := s.pages.byName[name]
	if !ok {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", page{Title: title, LoggedIn: s.sess.IsLoggedIn(), Data: data})
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("page", name).Msg("Rendering failed")
		http.Error(w, "Erreur interne du serveur", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
