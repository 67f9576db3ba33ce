package get_day_status

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidUnitID = "некорректный ID юнита"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Date   string `json:"date"`
	UnitID *int64 `json:"unitId,omitempty"`
	Status string `json:"status"`
}

type Handler struct {
	resolver StatusResolver
	logger   Logger
}

func NewHandler(resolver StatusResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/days/{date}/status
// Query params: unitId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.ParseInLocation(domain.DateFormat, vars["date"], time.UTC)
	if err != nil {
		h.logger.Warn("GET /days/{date}/status - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var unitID *int64
	if raw := r.URL.Query().Get("unitId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /days/{date}/status - Invalid unit ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidUnitID)
			return
		}
		unitID = &parsed
	}

	status, err := h.resolver.ResolveDayStatus(r.Context(), date, unitID)
	if err != nil {
		h.logger.Error("GET /days/{date}/status - Failed to resolve: date=%s, error=%v",
			vars["date"], err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /days/{date}/status - Resolved: date=%s, status=%s", vars["date"], status)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		Date:   date.Format(domain.DateFormat),
		UnitID: unitID,
		Status: string(status),
	})
}
