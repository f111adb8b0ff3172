package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeServiceError maps the domain error kinds onto status codes.
// Anything unrecognized is a storage failure and stays opaque to the
// client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadInput):
		writeError(w, http.StatusBadRequest, errDetail(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, errDetail(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, errDetail(err))
	default:
		logger.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func errDetail(err error) string {
	return err.Error()
}
