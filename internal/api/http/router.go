package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sonik2001www/Credit-API/internal/service"
)

// NewRouter wires the API routes. Everything under /v1 requires the
// X-API-Key header; /health does not.
func NewRouter(apiKey string, credits service.CreditsService, plans service.PlansReporting) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, accessLogMiddleware)

	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(apiKeyMiddleware(apiKey))

	creditsHandler := NewCreditsHandler(credits)
	v1.HandleFunc("/user_credits/{user_id}", creditsHandler.UserCredits).Methods(http.MethodGet)

	plansHandler := NewPlansHandler(plans)
	v1.HandleFunc("/plans/insert", plansHandler.InsertPlans).Methods(http.MethodPost)
	v1.HandleFunc("/plans/performance", plansHandler.PlansPerformance).Methods(http.MethodGet)
	v1.HandleFunc("/plans/year_performance", plansHandler.YearPerformance).Methods(http.MethodGet)

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
