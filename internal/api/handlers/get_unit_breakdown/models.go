package get_unit_breakdown

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BreakdownResponse HTTP response model
type BreakdownResponse struct {
	Date         string         `json:"date"`
	Total        int            `json:"total"`
	Available    int            `json:"available"`
	StatusCounts map[string]int `json:"statusCounts"`
	Units        []UnitDetail   `json:"units"`
}

// UnitDetail строка распределения по одному юниту
type UnitDetail struct {
	UnitID int64    `json:"unitId"`
	Label  string   `json:"label"`
	Type   string   `json:"type"`
	Status string   `json:"status"`
	Price  *float64 `json:"price,omitempty"`
	Reason *string  `json:"reason,omitempty"`
}

// FromDomainBreakdown конвертирует domain.Breakdown в HTTP response
func FromDomainBreakdown(b *domain.Breakdown) *BreakdownResponse {
	counts := make(map[string]int, len(b.StatusCounts))
	for status, count := range b.StatusCounts {
		counts[string(status)] = count
	}

	units := make([]UnitDetail, len(b.Units))
	for i, detail := range b.Units {
		units[i] = UnitDetail{
			UnitID: detail.Unit.ID,
			Label:  detail.Unit.DisplayLabel,
			Type:   detail.Unit.Type,
			Status: string(detail.Status),
			Price:  detail.Price,
			Reason: detail.Reason,
		}
	}

	return &BreakdownResponse{
		Date:         b.Date.Format(domain.DateFormat),
		Total:        b.Total,
		Available:    b.Available,
		StatusCounts: counts,
		Units:        units,
	}
}
