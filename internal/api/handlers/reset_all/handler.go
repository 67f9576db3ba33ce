package reset_all

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
)

// ResetResponse HTTP response model
type ResetResponse struct {
	Removed int64 `json:"removed"`
}

type Handler struct {
	useCase ResetUseCase
	logger  Logger
}

func NewHandler(useCase ResetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cells/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	removed, err := h.useCase.Reset(r.Context())
	if err != nil {
		h.logger.Error("POST /cells/reset - Failed: user=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cells/reset - Reset complete: removed=%d, user=%d", removed, userID)
	handlers.RespondJSON(w, http.StatusOK, ResetResponse{Removed: removed})
}
