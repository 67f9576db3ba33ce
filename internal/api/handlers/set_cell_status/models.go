package set_cell_status

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	setCellStatus "github.com/m04kA/SMC-CalendarService/internal/usecase/set_cell_status"
)

// SetStatusRequest HTTP request model.
// unitId = 0 применяет статус ко всем юнитам даты.
type SetStatusRequest struct {
	UnitID int64    `json:"unitId"`
	Date   string   `json:"date"`
	Part   string   `json:"part,omitempty"`
	Status string   `json:"status"`
	Price  *float64 `json:"price,omitempty"`
	Reason *string  `json:"reason,omitempty"`
}

// SetStatusResponse HTTP response model
type SetStatusResponse struct {
	UnitID  int64  `json:"unitId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Applied int    `json:"applied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case (с парсингом даты)
func (r *SetStatusRequest) ToUseCaseRequest() (*setCellStatus.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.UTC)
	if err != nil {
		return nil, err
	}

	return &setCellStatus.Request{
		UnitID: r.UnitID,
		Date:   date,
		Part:   domain.DayPart(r.Part),
		Status: domain.CellStatus(r.Status),
		Price:  r.Price,
		Reason: r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setCellStatus.Response) *SetStatusResponse {
	return &SetStatusResponse{
		UnitID:  resp.UnitID,
		Date:    resp.Date.Format(domain.DateFormat),
		Status:  string(resp.Status),
		Applied: resp.Applied,
	}
}
