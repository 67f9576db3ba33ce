package set_cell_status

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UnitID < 0 {
		return fmt.Errorf("%w: unitID must not be negative", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.Part != "" && !req.Part.IsValid() {
		return fmt.Errorf("%w: unknown day part %q", ErrInvalidInput, req.Part)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

// validateUnitExists проверяет, что юнит присутствует в составе
func validateUnitExists(units []domain.Unit, unitID int64) error {
	for _, unit := range units {
		if unit.ID == unitID {
			return nil
		}
	}
	return fmt.Errorf("%w: unit %d", ErrUnitNotFound, unitID)
}
