package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/utils"
	"github.com/arnarb/leikir-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	teams, err := h.services.TeamService.ListTeams(ctx)
	if err != nil {
		log.Err(err).Msg("listing teams failed")
		h.respondError(w, r, err)
		return
	}

	if len(teams) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Message: "no teams registered"}, http.StatusOK)
		return
	}

	items := make([]models.TeamListItem, 0, len(teams))
	for _, team := range teams {
		items = append(items, models.NewTeamListItem(team))
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	team, err := h.services.TeamService.GetTeamBySlug(ctx, slug)
	if err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("team lookup failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTeamResponse(team), http.StatusOK)
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.TeamPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Debug().Err(err).Msg("invalid json in team create")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid json"}, http.StatusBadRequest)
		return
	}

	team, err := h.services.TeamService.CreateTeam(ctx, payload)
	if err != nil {
		log.Debug().Err(err).Msg("team create rejected")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTeamResponse(team), http.StatusCreated)
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	var payload models.TeamPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("invalid json in team update")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid json"}, http.StatusBadRequest)
		return
	}

	team, err := h.services.TeamService.UpdateTeam(ctx, slug, payload)
	if err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("team update rejected")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTeamResponse(team), http.StatusOK)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	if err := h.services.TeamService.DeleteTeam(ctx, slug); err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("team delete failed")
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondError maps a pipeline error to its response body: a validation
// batch answers with the full set of field failures, everything else with a
// single sanitized error message.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.WriteJSON(w, models.ValidationResponse{Errors: validationErrs}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with internal error")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
}
