package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/utils"
	"github.com/arnarb/leikir-api/models"
	"github.com/go-chi/chi/v5"
)

// gameID parses the {id} route parameter. A non-numeric id can never match
// a stored game, so it reports false and the caller answers 404.
func gameID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	games, err := h.services.GameService.ListGames(ctx)
	if err != nil {
		log.Err(err).Msg("listing games failed")
		h.respondError(w, r, err)
		return
	}

	if len(games) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Message: "no games registered"}, http.StatusOK)
		return
	}

	responses := make([]models.GameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, models.NewGameResponse(game))
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := gameID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	game, err := h.services.GameService.GetGameByID(ctx, id)
	if err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("game lookup failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewGameResponse(game), http.StatusOK)
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.GamePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Debug().Err(err).Msg("invalid json in game create")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid json"}, http.StatusBadRequest)
		return
	}

	game, err := h.services.GameService.CreateGame(ctx, payload)
	if err != nil {
		log.Debug().Err(err).Msg("game create rejected")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewGameResponse(game), http.StatusCreated)
}

func (h *Handler) updateGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := gameID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	var payload models.GamePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("invalid json in game update")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid json"}, http.StatusBadRequest)
		return
	}

	game, err := h.services.GameService.UpdateGame(ctx, id, payload)
	if err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("game update rejected")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewGameResponse(game), http.StatusOK)
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := gameID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.services.GameService.DeleteGame(ctx, id); err != nil {
		log.Debug().Err(err).Int64("id", id).Msg("game delete failed")
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
