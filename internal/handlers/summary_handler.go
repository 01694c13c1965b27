package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/quickbite/order-api/internal/period"
	"github.com/quickbite/order-api/internal/service"
)

// SummaryHandler handles sales-summary HTTP requests
type SummaryHandler struct {
	summaryService *service.SummaryService
	log            *slog.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *service.SummaryService, log *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		log:            log,
	}
}

// SalesSummary handles GET /api/sales-summary
// Query params: from/to (YYYY-MM-DD, together) or period (day|week|month).
// With neither, the summary covers all orders ever created.
func (h *SummaryHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	name := query.Get("period")

	summary, err := h.summaryService.SalesSummary(r.Context(), time.Now(), from, to, name)
	if err != nil {
		switch {
		case errors.Is(err, period.ErrInvalidPeriod):
			writeError(w, http.StatusBadRequest, "Invalid period", h.log)
		case errors.Is(err, period.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.", h.log)
		default:
			h.log.Error("failed to compute sales summary", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	writeJSON(w, http.StatusOK, summary, h.log)
}
