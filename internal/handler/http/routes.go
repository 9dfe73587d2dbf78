package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.listTeams)
		r.Post("/", h.createTeam)
		r.Get("/{slug}", h.getTeam)
		r.Patch("/{slug}", h.updateTeam)
		r.With(h.withAdminToken).Delete("/{slug}", h.deleteTeam)
	})

	router.Route("/games", func(r chi.Router) {
		r.Get("/", h.listGames)
		r.Post("/", h.createGame)
		r.Get("/{id}", h.getGame)
		r.Patch("/{id}", h.updateGame)
		r.With(h.withAdminToken).Delete("/{id}", h.deleteGame)
	})

	// unknown routes and unsupported methods both answer 404, so the
	// surface never reveals which paths exist
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
