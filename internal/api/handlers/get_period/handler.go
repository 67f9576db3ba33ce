package get_period

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	periodSvc "github.com/m04kA/SMC-CalendarService/internal/service/period"
)

const (
	msgInvalidPeriodType = "некорректный тип периода, ожидается month | quarter | custom"
	msgInvalidOffset     = "некорректный offset"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeTooLarge     = "слишком большой диапазон дат"
)

type Handler struct {
	periods PeriodGenerator
	logger  Logger
}

func NewHandler(periods PeriodGenerator, logger Logger) *Handler {
	return &Handler{
		periods: periods,
		logger:  logger,
	}
}

// Handle GET /api/v1/periods
// Query params: periodType (month|quarter|custom, default month),
// offset (int), from / to (YYYY-MM-DD, только для custom)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	periodType := query.Get("periodType")
	if periodType == "" {
		periodType = string(domain.PeriodMonth)
	}

	offset := 0
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /periods - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		offset = parsed
	}

	result, err := h.periods.Generate(periodSvc.Request{
		Type:       domain.PeriodType(periodType),
		Offset:     offset,
		CustomFrom: query.Get("from"),
		CustomTo:   query.Get("to"),
		Today:      time.Now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, periodSvc.ErrInvalidPeriodType):
			h.logger.Warn("GET /periods - Invalid period type: %s", periodType)
			handlers.RespondBadRequest(w, msgInvalidPeriodType)

		case errors.Is(err, periodSvc.ErrInvalidDate):
			h.logger.Warn("GET /periods - Invalid custom dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, periodSvc.ErrRangeTooLarge):
			h.logger.Warn("GET /periods - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		default:
			h.logger.Error("GET /periods - Failed to generate period: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /periods - Period generated: type=%s, offset=%d, days=%d",
		periodType, offset, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromDomainPeriod(result))
}
