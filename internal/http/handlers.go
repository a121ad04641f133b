package http

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"healthai/internal/core"
	"healthai/pkg"
)

//go:embed templates/*.html
var templateFS embed.FS

// SessionCookie identifies a browser for the consultation history.
const SessionCookie = "healthai_session"

// HistoryStore persists consultations.  *db.Repository implements it.
type HistoryStore interface {
	SaveConsultation(ctx context.Context, c *pkg.Consultation) error
	ListConsultations(ctx context.Context, sessionID string, limit int) ([]pkg.Consultation, error)
}

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.Server.
type Server struct {
	Responder    *core.Responder
	History      HistoryStore
	Templates    *template.Template
	HistoryLimit int
	router       chi.Router
}

// NewServer constructs a Server.  history may be nil, in which case nothing
// is recorded and the history endpoints return an empty list.
func NewServer(responder *core.Responder, history HistoryStore, historyLimit int) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s := &Server{
		Responder:    responder,
		History:      history,
		Templates:    tmpl,
		HistoryLimit: historyLimit,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	r.Route("/ui", func(r chi.Router) {
		r.Post("/bmi", s.handleBMIFragment)
		r.Get("/history", s.handleHistoryFragment)
		r.Post("/{mode}", s.handleRespondFragment)
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/bmi", s.handleBMI)
		r.Get("/history", s.handleHistory)
		r.Post("/{mode}", s.handleRespond)
	})
	return r
}

// ServeHTTP dispatches to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type tab struct {
	ID    string
	Label string
}

var tabLabels = map[core.Mode]string{
	core.ModeChat:            "💬 Patient Chat",
	core.ModeSymptomAnalysis: "🔍 Disease Prediction",
	core.ModeTreatmentPlan:   "📋 Treatment Plans",
}

// handleIndex renders the four-tab form page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.sessionID(w, r)
	tabs := lo.Map(core.Modes, func(m core.Mode, _ int) tab {
		return tab{ID: string(m), Label: tabLabels[m]}
	})
	tabs = append(tabs, tab{ID: "analytics", Label: "📊 Health Analytics"})
	data := struct {
		Tabs           []tab
		Genders        []string
		HistoryEnabled bool
	}{tabs, core.Genders, s.History != nil}
	if err := s.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// handleRespond is the JSON API for the three modes.  It accepts either a
// JSON body or an urlencoded form.
func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	mode, err := core.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	req, err := decodeRequest(r, mode)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sessionID := s.sessionID(w, r)
	text, err := s.Responder.Respond(r.Context(), req)
	if err != nil {
		log.Printf("respond %s failed: %v", mode, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp := pkg.RespondResponse{
		RequestID: uuid.NewString(),
		Mode:      string(mode),
		Response:  text,
	}
	if !req.Empty() {
		resp.Guidance = core.Guidance[mode]
		s.record(r.Context(), sessionID, req, text)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRespondFragment serves the HTMX form posts and returns the read-only
// result area.
func (s *Server) handleRespondFragment(w http.ResponseWriter, r *http.Request) {
	mode, err := core.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := requestFromForm(r, mode)
	sessionID := s.sessionID(w, r)
	data := struct {
		Mode     string
		Text     string
		Error    string
		Guidance []string
	}{Mode: string(mode)}
	text, err := s.Responder.Respond(r.Context(), req)
	switch {
	case err != nil:
		// htmx only swaps 2xx responses, so the failure is rendered as a
		// result with a 200
		log.Printf("respond %s failed: %v", mode, err)
		data.Error = err.Error()
	case !req.Empty():
		data.Guidance = core.Guidance[mode]
		s.record(r.Context(), sessionID, req, text)
	}
	data.Text = text
	if err := s.Templates.ExecuteTemplate(w, "response.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleBMI computes the body mass index from a JSON body.
func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	var in pkg.BMIRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	res, err := core.CalculateBMI(in.HeightCm, in.WeightKg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, pkg.BMIResponse{BMI: round1(res.Value), Category: res.Category})
}

func (s *Server) handleBMIFragment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	height, _ := strconv.ParseFloat(r.FormValue("height"), 64)
	weight, _ := strconv.ParseFloat(r.FormValue("weight"), 64)
	data := struct {
		Error    string
		BMI      string
		Category string
	}{}
	res, err := core.CalculateBMI(height, weight)
	if err != nil {
		data.Error = "Please enter valid height and weight values."
	} else {
		data.BMI = strconv.FormatFloat(res.Value, 'f', 1, 64)
		data.Category = res.Category
	}
	if err := s.Templates.ExecuteTemplate(w, "bmi.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleHistory returns the caller's recent consultations as JSON.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	list, err := s.listHistory(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, pkg.HistoryResponse{Enabled: s.History != nil, Consultations: list})
}

type historyRow struct {
	Mode     string
	Input    string
	Response string
	When     string
}

func (s *Server) handleHistoryFragment(w http.ResponseWriter, r *http.Request) {
	list, err := s.listHistory(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rows := lo.Map(list, func(c pkg.Consultation, _ int) historyRow {
		label := c.Mode
		if m, err := core.ParseMode(c.Mode); err == nil {
			label = tabLabels[m]
		}
		return historyRow{
			Mode:     label,
			Input:    c.Input,
			Response: c.Response,
			When:     c.CreatedAt.Format(time.RFC822),
		}
	})
	data := struct {
		Enabled bool
		Rows    []historyRow
	}{s.History != nil, rows}
	if err := s.Templates.ExecuteTemplate(w, "history.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) ([]pkg.Consultation, error) {
	if s.History == nil {
		return []pkg.Consultation{}, nil
	}
	list, err := s.History.ListConsultations(r.Context(), s.sessionID(w, r), s.HistoryLimit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []pkg.Consultation{}
	}
	return list, nil
}

// record stores a successful round trip.  Failures are logged and never
// reach the user.
func (s *Server) record(ctx context.Context, sessionID string, req core.Request, text string) {
	if s.History == nil {
		return
	}
	c := &pkg.Consultation{
		SessionID: sessionID,
		Mode:      string(req.Mode),
		Input:     req.Summary(),
		Response:  text,
	}
	if err := s.History.SaveConsultation(ctx, c); err != nil {
		log.Println("failed to save consultation:", err)
	}
}

// sessionID returns the browser's session id, issuing a new cookie when the
// request has none or an invalid one.  It must run before the body is
// written.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// later handlers in the same request see the new id
	r.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	return id
}

func decodeRequest(r *http.Request, mode core.Mode) (core.Request, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var in pkg.RespondRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return core.Request{}, err
		}
		return core.Request{
			Mode:      mode,
			Question:  in.Question,
			Symptoms:  in.Symptoms,
			Condition: in.Condition,
			Age:       in.Age,
			Gender:    in.Gender,
			History:   in.History,
		}, nil
	}
	if err := r.ParseForm(); err != nil {
		return core.Request{}, err
	}
	return requestFromForm(r, mode), nil
}

// Bounds of the age input on the treatment form.
const (
	minAge = 1
	maxAge = 120
)

// requestFromForm reads the form fields of all modes.  Age is accepted as a
// decimal number, rounded and clamped to [minAge, maxAge]; an unparsable age
// becomes 0.
func requestFromForm(r *http.Request, mode core.Mode) core.Request {
	age, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("age")), 64)
	if err != nil || math.IsNaN(age) {
		age = 0
	} else {
		age = math.Min(math.Max(age, minAge), maxAge)
	}
	return core.Request{
		Mode:      mode,
		Question:  r.FormValue("question"),
		Symptoms:  r.FormValue("symptoms"),
		Condition: r.FormValue("condition"),
		Age:       int(math.Round(age)),
		Gender:    r.FormValue("gender"),
		History:   r.FormValue("medical_history"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
