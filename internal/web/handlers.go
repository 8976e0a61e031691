package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agentstation/catchlog/internal/views"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// Query and form keys of the list filter.
const (
	keyFilterKind  = "filtre"
	keyFilterValue = "valeur"
)

type loginData struct {
	Email string
	Error string
}

type listData struct {
	Kinds  []catches.Kind
	Filter catches.Filter
	Cards  []views.CardView
	Error  string
}

type formData struct {
	Weathers  []string
	CanSubmit bool
}

type createData struct {
	formData
	State views.CreateState
}

type editData struct {
	formData
	State views.EditState
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", "Accueil", nil)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	v := views.NewLoginView(s.sess)
	if v.ShouldRedirect() {
		http.Redirect(w, r, PathHome, http.StatusFound)
		return
	}
	s.render(w, r, http.StatusOK, "login", "Connexion", loginData{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulaire invalide", http.StatusBadRequest)
		return
	}
	v := views.NewLoginView(s.sess)
	if v.Submit(r.Context(), r.PostFormValue("courriel"), r.PostFormValue("motPasse")) {
		http.Redirect(w, r, PathHome, http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusUnauthorized, "login", "Connexion", loginData{Email: v.Email(), Error: v.Error()})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sess.Logout()
	logging.FromContext(r.Context()).Info().Msg("Logged out")
	http.Redirect(w, r, PathLogin, http.StatusSeeOther)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := views.NewListView(s.svc, s.sess, s.filterFrom(r, q.Get(keyFilterKind), q.Get(keyFilterValue)))
	if err := v.Mount(r.Context()); errors.IsNotLoggedIn(err) {
		http.Redirect(w, r, PathLogin, http.StatusFound)
		return
	}
	s.renderList(w, r, v.State())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulaire invalide", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	v := views.NewListView(s.svc, s.sess, s.filterFrom(r, r.PostFormValue(keyFilterKind), r.PostFormValue(keyFilterValue)))
	if err := v.Delete(r.Context(), id); errors.IsNotLoggedIn(err) {
		http.Redirect(w, r, PathLogin, http.StatusFound)
		return
	}
	s.renderList(w, r, v.State())
}

func (s *Server) filterFrom(r *http.Request, kind, value string) catches.Filter {
	k, err := catches.ParseKind(kind)
	if err != nil {
		logging.FromContext(r.Context()).Debug().Str("filter", kind).Msg("Ignoring unknown filter kind")
	}
	return catches.Filter{Kind: k, Value: value}
}

func (s *Server) renderList(w http.ResponseWriter, r *http.Request, st views.ListState) {
	s.render(w, r, http.StatusOK, "list", "Mes captures", listData{
		Kinds:  catches.Kinds(),
		Filter: st.Filter,
		Cards:  views.Cards(st.Catches, s.loc),
		Error:  st.Error,
	})
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	f := views.NewCreateForm(s.svc, s.sess, s.formOptions()...)
	if err := f.Load(r.Context()); errors.IsNotLoggedIn(err) {
		http.Redirect(w, r, PathLogin, http.StatusFound)
		return
	}
	s.renderCreate(w, r, http.StatusOK, f)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulaire invalide", http.StatusBadRequest)
		return
	}
	f := views.NewCreateForm(s.svc, s.sess, s.formOptions()...)
	if err := f.Load(r.Context()); errors.IsNotLoggedIn(err) {
		http.Redirect(w, r, PathLogin, http.StatusFound)
		return
	}

	status := http.StatusOK
	if err := f.Submit(r.Context(), createInputFrom(r)); err != nil {
		if errors.IsNotLoggedIn(err) {
			http.Redirect(w, r, PathLogin, http.StatusFound)
			return
		}
		status = http.StatusUnprocessableEntity
	}
	s.renderCreate(w, r, status, f)
}

func (s *Server) renderCreate(w http.ResponseWriter, r *http.Request, status int, f *views.CreateForm) {
	st := f.State()
	// The species select is required in the page, so only the species load
	// state decides whether the button is enabled.
	s.render(w, r, status, "create", "Ajouter une capture", createData{
		formData: formData{Weathers: catches.WeatherOptions(), CanSubmit: st.SpeciesError == "" && !st.SpeciesLoading},
		State:    st,
	})
}

func (s *Server) handleEditPage(w http.ResponseWriter, r *http.Request) {
	f := views.NewEditForm(s.svc, s.sess, s.formOptions()...)
	err := f.Load(r.Context(), mux.Vars(r)["id"])
	if errors.IsNotLoggedIn(err) {
		http.Redirect(w, r, PathLogin, http.StatusFound)
		return
	}
	status := http.StatusOK
	if errors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	s.renderEdit(w, r, status, f)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulaire invalide", http.StatusBadRequest)
		return
	}
	f := views.NewEditForm(s.svc, s.sess, s.formOptions()...)
	err := f.Load(r.Context(), mux.Vars(r)["id"])
	if errors.IsNotLoggedIn(err) {
		http.Redirect(w, r, PathLogin, http.StatusFound)
		return
	}
	if err != nil {
		status := http.StatusOK
		if errors.IsNotFound(err) {
			status = http.StatusNotFound
		}
		s.renderEdit(w, r, status, f)
		return
	}

	status := http.StatusOK
	if err := f.Submit(r.Context(), editInputFrom(r)); err != nil {
		status = http.StatusUnprocessableEntity
	}
	s.renderEdit(w, r, status, f)
}

func (s *Server) renderEdit(w http.ResponseWriter, r *http.Request, status int, f *views.EditForm) {
	st := f.State()
	s.render(w, r, status, "edit", "Modifier une capture", editData{
		formData: formData{Weathers: catches.WeatherOptions(), CanSubmit: f.CanSubmit()},
		State:    st,
	})
}

func createInputFrom(r *http.Request) views.CreateInput {
	return views.CreateInput{
		Species:    r.PostFormValue("espece"),
		LengthCm:   r.PostFormValue("tailleCm"),
		WeightKg:   r.PostFormValue("poidsKg"),
		CapturedAt: r.PostFormValue("dateCapture"),
		Released:   r.PostFormValue("remisALeau") != "",
		Technique:  r.PostFormValue("technique"),
		Location:   r.PostFormValue("lieu"),
		Weather:    r.PostFormValue("conditionsMeteo"),
		WaterTempC: r.PostFormValue("temperatureEau"),
		Notes:      r.PostFormValue("notes"),
	}
}

func editInputFrom(r *http.Request) views.EditInput {
	return views.EditInput{
		Species:    r.PostFormValue("espece"),
		LengthCm:   r.PostFormValue("tailleCm"),
		WeightKg:   r.PostFormValue("poidsKg"),
		CapturedAt: r.PostFormValue("dateCapture"),
		Released:   r.PostFormValue("remisALeau") != "",
		Technique:  r.PostFormValue("technique"),
		Location:   r.PostFormValue("lieu"),
		Weather:    r.PostFormValue("conditionsMeteo"),
		WaterTempC: r.PostFormValue("temperatureEau"),
		NotesText:  r.PostFormValue("notes"),
	}
}
