// Package server renders the dashboard over HTTP: an HTML page per session
// and the same view model as JSON.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/ohcr-dashboard/clients"
	"github.com/maastricht-university/ohcr-dashboard/coach"
	"github.com/maastricht-university/ohcr-dashboard/config"
	"github.com/maastricht-university/ohcr-dashboard/dashboard"
)

type Server struct {
	cfg   *config.Root
	api   *clients.HTTP
	rules []coach.Rule
	log   *logrus.Logger
}

func New(cfg *config.Root, log *logrus.Logger) (*Server, error) {
	rules, err := coach.LoadRules(cfg.Coach.Rules)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:   cfg,
		api:   clients.New(cfg.API.Base),
		rules: rules,
		log:   log,
	}, nil
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Server.Listen, s.Handler())
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/dashboard/", s.withRequestID(s.handleDashboard))
	mux.HandleFunc("/api/view/", s.withRequestID(s.handleView))
	return mux
}

// withRequestID tags every request with a correlation id in the logs.
func (s *Server) withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.log.WithFields(logrus.Fields{
			"req":  uuid.NewString(),
			"path": r.URL.Path,
		}).Info("request")
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true}`))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimPrefix(r.URL.Path, "/dashboard/")
	vm := s.view(r, sessionID)

	w.Header().Set("Content-Type", "text/html")
	if err := getDashboardTemplate().Execute(w, vm); err != nil {
		s.log.WithFields(logrus.Fields{"session": sessionID, "err": err}).
			Error("render dashboard")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimPrefix(r.URL.Path, "/api/view/")
	vm := s.view(r, sessionID)

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vm); err != nil {
		s.log.WithFields(logrus.Fields{"session": sessionID, "err": err}).
			Error("encode view")
	}
}

// view builds the render-ready model for one session. A fresh controller per
// request keeps sessions fully independent. When the upstream summary carries
// no feedback cards the coach rules fill in, so the page still coaches.
func (s *Server) view(r *http.Request, sessionID string) dashboard.ViewModel {
	ctl := dashboard.NewController(s.api, s.log)
	defer ctl.Dispose()
	ctl.Init(r.Context(), sessionID)

	vm := ctl.View()
	if sum := ctl.Summary(); sum != nil && len(sum.Feedback) == 0 {
		if cards := coach.Prescribe(s.rules, sum.Metrics); len(cards) > 0 {
			vm.Feedback = cards
			vm.Affirmation = ""
		}
	}
	return vm
}
