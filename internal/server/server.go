// Package server exposes the badge handlers over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	githubadapter "github.com/guswynn/shields/pkg/adapters/github"
	"github.com/guswynn/shields/pkg/badge"
	"github.com/guswynn/shields/pkg/pipenv"
	"github.com/guswynn/shields/pkg/service/dependencyversion"
	"github.com/guswynn/shields/pkg/service/pythonversion"
)

// Server routes badge requests to their handlers.
type Server struct {
	router     *chi.Mux
	python     *pythonversion.Handler
	dependency *dependencyversion.Handler
}

// New builds the server and its routes.
func New(python *pythonversion.Handler, dependency *dependencyversion.Handler) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		python:     python,
		dependency: dependency,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(requestLogger)

	s.router.Route("/github/pipenv/locked", func(r chi.Router) {
		r.Get("/python-version/{user}/{repo}", s.handlePythonVersion)
		r.Get("/python-version/{user}/{repo}/{branch}", s.handlePythonVersion)

		// The literal "dev" segment selects the dev-dependency section;
		// it is matched before the packageName param.
		r.Get("/dependency-version/{user}/{repo}/dev/{packageName}", s.handleDependencyVersion(pipenv.KindDev))
		r.Get("/dependency-version/{user}/{repo}/dev/{packageName}/{branch}", s.handleDependencyVersion(pipenv.KindDev))
		r.Get("/dependency-version/{user}/{repo}/{packageName}", s.handleDependencyVersion(pipenv.KindDefault))
		r.Get("/dependency-version/{user}/{repo}/{packageName}/{branch}", s.handleDependencyVersion(pipenv.KindDefault))
	})
}

func (s *Server) handlePythonVersion(w http.ResponseWriter, r *http.Request) {
	b, err := s.python.Handle(r.Context(), pythonversion.Params{
		User:   chi.URLParam(r, "user"),
		Repo:   chi.URLParam(r, "repo"),
		Branch: chi.URLParam(r, "branch"),
	})
	if err != nil {
		writeError(w, pythonversion.DefaultLabel, err)
		return
	}
	writeBadge(w, http.StatusOK, b)
}

func (s *Server) handleDependencyVersion(kind pipenv.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := s.dependency.Handle(r.Context(), dependencyversion.Params{
			User:        chi.URLParam(r, "user"),
			Repo:        chi.URLParam(r, "repo"),
			Branch:      chi.URLParam(r, "branch"),
			Kind:        kind,
			PackageName: chi.URLParam(r, "packageName"),
		})
		if err != nil {
			writeError(w, dependencyversion.DefaultLabel, err)
			return
		}
		writeBadge(w, http.StatusOK, b)
	}
}

// writeError maps failures onto error badges. Locally-synthesized not-found
// conditions keep their message; upstream fetch failures collapse to a
// generic reason.
func writeError(w http.ResponseWriter, label string, err error) {
	switch {
	case pipenv.IsNotFound(err):
		writeBadge(w, http.StatusNotFound, badge.Badge{
			Label:   label,
			Message: err.Error(),
			Color:   badge.ColorRed,
		})
	case githubadapter.IsNotFound(err):
		writeBadge(w, http.StatusBadGateway, badge.Badge{
			Label:   label,
			Message: "repo or file not found",
			Color:   badge.ColorLightGrey,
		})
	default:
		writeBadge(w, http.StatusBadGateway, badge.Badge{
			Label:   label,
			Message: "inaccessible",
			Color:   badge.ColorLightGrey,
		})
	}
}

func writeBadge(w http.ResponseWriter, status int, b badge.Badge) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(b)
}
