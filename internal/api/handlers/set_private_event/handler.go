package set_private_event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBody   = "некорректное тело запроса"
	msgEmptyPayload  = "событие должно иметь имя, флаг приватности или положительную цену"
	msgNameTooLong   = "слишком длинное имя события"
	msgNegativePrice = "цена не может быть отрицательной"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/days/{date}/event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.ParseInLocation(domain.DateFormat, vars["date"], time.UTC)
	if err != nil {
		h.logger.Warn("PUT /days/{date}/event - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /days/{date}/event - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	result, err := h.service.SetPrivateEvent(r.Context(), req.ToServiceRequest(date, userID))
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEmptyPayload):
			h.logger.Warn("PUT /days/{date}/event - Empty payload: date=%s", vars["date"])
			handlers.RespondBadRequest(w, msgEmptyPayload)

		case errors.Is(err, events.ErrNameTooLong):
			h.logger.Warn("PUT /days/{date}/event - Name too long: date=%s", vars["date"])
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, events.ErrNegativePrice):
			h.logger.Warn("PUT /days/{date}/event - Negative price: date=%s", vars["date"])
			handlers.RespondBadRequest(w, msgNegativePrice)

		default:
			h.logger.Error("PUT /days/{date}/event - Failed: date=%s, error=%v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /days/{date}/event - Event set: date=%s, private=%t, special=%t, user=%d",
		vars["date"], result.IsPrivateEvent, result.IsSpecialPricing, userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainOverlay(result))
}
