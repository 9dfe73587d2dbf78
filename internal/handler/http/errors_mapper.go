package http

import (
	"errors"
	"net/http"

	"github.com/arnarb/leikir-api/internal/service"
	"github.com/arnarb/leikir-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrTeamNotResolved: http.StatusBadRequest,

	store.ErrTeamAlreadyExists:     http.StatusConflict,
	store.ErrTeamNotFound:          http.StatusNotFound,
	store.ErrGameNotFound:          http.StatusNotFound,
	store.ErrReferencedTeamMissing: http.StatusBadRequest,

	store.ErrFieldsValuesMismatch: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the user-visible text per sentinel. Raw store error
// text never leaks into a response body.
var errorMessageMap = map[error]string{
	service.ErrTeamNotResolved: "referenced team not found",

	store.ErrTeamAlreadyExists:     "team already exists",
	store.ErrTeamNotFound:          "team not found",
	store.ErrGameNotFound:          "game not found",
	store.ErrReferencedTeamMissing: "referenced team not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "internal server error"
}
