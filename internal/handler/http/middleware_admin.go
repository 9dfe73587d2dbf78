package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/arnarb/leikir-api/internal/logger"
	"github.com/arnarb/leikir-api/internal/utils"
	"github.com/arnarb/leikir-api/models"
)

const adminTokenHeader = "Authorization"

// withAdminToken guards destructive routes behind the shared admin secret.
// The header value is compared in constant time so the token length and
// prefix cannot be probed through response timing.
func (h *Handler) withAdminToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		supplied := r.Header.Get(adminTokenHeader)
		if supplied == "" {
			log.Debug().Msg("admin route called without token")
			utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.adminToken)) != 1 {
			log.Debug().Msg("admin route called with wrong token")
			utils.WriteJSON(w, models.ErrorResponse{Error: "unauthorized"}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
