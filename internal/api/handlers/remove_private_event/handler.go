package remove_private_event

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOverlayNotFound = "событие на эту дату не найдено"
)

// RemoveResponse HTTP response model
type RemoveResponse struct {
	Date    string `json:"date"`
	Removed bool   `json:"removed"`
}

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

// Handle DELETE /api/v1/days/{date}/event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.ParseInLocation(domain.DateFormat, vars["date"], time.UTC)
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/event - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemovePrivateEvent(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, events.ErrOverlayNotFound):
			h.logger.Warn("DELETE /days/{date}/event - Not found: date=%s", vars["date"])
			handlers.RespondNotFound(w, msgOverlayNotFound)

		default:
			h.logger.Error("DELETE /days/{date}/event - Failed: date=%s, error=%v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /days/{date}/event - Event removed: date=%s", vars["date"])
	handlers.RespondJSON(w, http.StatusOK, RemoveResponse{
		Date:    date.Format(domain.DateFormat),
		Removed: true,
	})
}
