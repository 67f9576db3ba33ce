package get_unit_breakdown

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/days/{date}/breakdown
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.ParseInLocation(domain.DateFormat, vars["date"], time.UTC)
	if err != nil {
		h.logger.Warn("GET /days/{date}/breakdown - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.resolver.ResolveUnitBreakdown(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /days/{date}/breakdown - Failed to resolve: date=%s, error=%v",
			vars["date"], err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /days/{date}/breakdown - Resolved: date=%s, total=%d, available=%d",
		vars["date"], result.Total, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBreakdown(result))
}
