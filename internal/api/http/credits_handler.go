package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sonik2001www/Credit-API/internal/service"
)

type CreditsHandler struct {
	credits service.CreditsService
}

func NewCreditsHandler(credits service.CreditsService) *CreditsHandler {
	return &CreditsHandler{credits: credits}
}

// UserCredits handles GET /v1/user_credits/{user_id}.
func (h *CreditsHandler) UserCredits(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := h.credits.GetUserCredits(r.Context(), int32(userID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
