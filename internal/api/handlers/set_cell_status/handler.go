package set_cell_status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	setCellStatus "github.com/m04kA/SMC-CalendarService/internal/usecase/set_cell_status"
)

const (
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput  = "некорректные входные данные"
	msgInvalidStatus = "неизвестный статус ячейки"
	msgUnitNotFound  = "юнит не найден"
	msgPartialApply  = "групповая запись применена частично"
)

type Handler struct {
	useCase SetCellStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetCellStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/cells/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /cells/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /cells/status - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, setCellStatus.ErrInvalidStatus):
			h.logger.Warn("PUT /cells/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, setCellStatus.ErrInvalidInput):
			h.logger.Warn("PUT /cells/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, setCellStatus.ErrUnitNotFound):
			h.logger.Warn("PUT /cells/status - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, setCellStatus.ErrPartialApply):
			h.logger.Error("PUT /cells/status - Partial apply: unit_id=%d, date=%s, error=%v",
				req.UnitID, req.Date, err)
			handlers.RespondConflict(w, msgPartialApply)

		default:
			h.logger.Error("PUT /cells/status - Failed: unit_id=%d, date=%s, error=%v",
				req.UnitID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /cells/status - Status set: unit_id=%d, date=%s, status=%s, applied=%d",
		result.UnitID, result.Date, result.Status, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
