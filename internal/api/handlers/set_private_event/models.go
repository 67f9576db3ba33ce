package set_private_event

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

// SetEventRequest HTTP request model
type SetEventRequest struct {
	Name      *string  `json:"name,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	IsPrivate bool     `json:"isPrivate"`
	IsSpecial bool     `json:"isSpecial"`
}

// EventResponse HTTP response model
type EventResponse struct {
	Date      string   `json:"date"`
	Name      *string  `json:"name,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	IsPrivate bool     `json:"isPrivate"`
	IsSpecial bool     `json:"isSpecial"`
	CreatedBy int64    `json:"createdBy"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *SetEventRequest) ToServiceRequest(date time.Time, userID int64) *events.SetEventRequest {
	return &events.SetEventRequest{
		Date:             date,
		Name:             r.Name,
		Price:            r.Price,
		IsPrivateEvent:   r.IsPrivate,
		IsSpecialPricing: r.IsSpecial,
		CreatedBy:        userID,
	}
}

// FromDomainOverlay конвертирует domain.EventOverlay в HTTP response
func FromDomainOverlay(o *domain.EventOverlay) *EventResponse {
	return &EventResponse{
		Date:      o.Date.Format(domain.DateFormat),
		Name:      o.Name,
		Price:     o.Price,
		IsPrivate: o.IsPrivateEvent,
		IsSpecial: o.IsSpecialPricing,
		CreatedBy: o.CreatedBy,
	}
}
