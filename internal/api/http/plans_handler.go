package http

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/service"
)

// maxImportSize caps plan upload payloads at 10 MiB.
const maxImportSize = 10 << 20

type PlansHandler struct {
	plans service.PlansReporting
}

func NewPlansHandler(plans service.PlansReporting) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// InsertPlans handles POST /v1/plans/insert with a multipart "file" field.
func (h *PlansHandler) InsertPlans(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with a file field")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "cannot read uploaded file")
		return
	}

	resp, err := h.plans.InsertPlans(r.Context(), content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PlansPerformance handles GET /v1/plans/performance?report_date=YYYY-MM-DD.
func (h *PlansHandler) PlansPerformance(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("report_date")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "report_date query parameter is required")
		return
	}
	reportDate, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "report_date must be YYYY-MM-DD")
		return
	}

	resp, err := h.plans.PlansPerformance(r.Context(), reportDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// YearPerformance handles GET /v1/plans/year_performance?year=N.
func (h *PlansHandler) YearPerformance(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	if year < 1900 || year > 2100 {
		writeError(w, http.StatusBadRequest, "year must be between 1900 and 2100")
		return
	}

	resp, err := h.plans.YearPerformance(r.Context(), year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
