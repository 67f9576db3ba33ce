package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
)

const (
	msgInvalidPeriodType = "некорректный тип периода, ожидается month | quarter | custom"
	msgInvalidOffset     = "некорректный offset"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeTooLarge     = "слишком большой диапазон дат"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: periodType (month|quarter|custom, default month),
// offset (int), from / to (YYYY-MM-DD, только для custom)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	periodType := query.Get("periodType")
	if periodType == "" {
		periodType = "month"
	}

	offset := 0
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		offset = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		PeriodType: periodType,
		Offset:     offset,
		From:       query.Get("from"),
		To:         query.Get("to"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidPeriodType):
			h.logger.Warn("GET /calendar - Invalid period type: %s", periodType)
			handlers.RespondBadRequest(w, msgInvalidPeriodType)

		case errors.Is(err, getCalendar.ErrInvalidDate):
			h.logger.Warn("GET /calendar - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getCalendar.ErrRangeTooLarge):
			h.logger.Warn("GET /calendar - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: type=%s, offset=%d, days=%d",
		periodType, offset, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
