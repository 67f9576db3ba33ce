package get_calendar

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Period   PeriodInfo `json:"period"`
	Currency string     `json:"currency"`
	Days     []Day      `json:"days"`
}

// PeriodInfo метаданные окна и навигации
type PeriodInfo struct {
	Type       string `json:"type"`
	Offset     int    `json:"offset"`
	From       string `json:"from"`
	To         string `json:"to"`
	Label      string `json:"label"`
	PrevOffset int    `json:"prevOffset,omitempty"`
	NextOffset int    `json:"nextOffset,omitempty"`
	PrevFrom   string `json:"prevFrom,omitempty"`
	PrevTo     string `json:"prevTo,omitempty"`
	NextFrom   string `json:"nextFrom,omitempty"`
	NextTo     string `json:"nextTo,omitempty"`
}

// Day ячейка календаря на уровне дня
type Day struct {
	Date           string     `json:"date"`
	Status         string     `json:"status"`
	Color          string     `json:"color"`
	Total          int        `json:"total"`
	Available      int        `json:"available"`
	EarlyBirdPrice float64    `json:"earlyBirdPrice,omitempty"`
	Event          *EventInfo `json:"event,omitempty"`
}

// EventInfo аннотация даты
type EventInfo struct {
	Name             *string  `json:"name,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	IsPrivateEvent   bool     `json:"isPrivateEvent"`
	IsSpecialPricing bool     `json:"isSpecialPricing"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		var event *EventInfo
		if day.Event != nil {
			event = &EventInfo{
				Name:             day.Event.Name,
				Price:            day.Event.Price,
				IsPrivateEvent:   day.Event.IsPrivateEvent,
				IsSpecialPricing: day.Event.IsSpecialPricing,
			}
		}

		days[i] = Day{
			Date:           day.Date.Format(domain.DateFormat),
			Status:         string(day.Status),
			Color:          day.Color,
			Total:          day.Total,
			Available:      day.Available,
			EarlyBirdPrice: day.EarlyBirdPrice,
			Event:          event,
		}
	}

	info := PeriodInfo{
		Type:   string(resp.Period.Type),
		Offset: resp.Period.Offset,
		From:   resp.Period.From.Format(domain.DateFormat),
		To:     resp.Period.To.Format(domain.DateFormat),
		Label:  resp.Period.Label,
	}
	if resp.Period.Type == domain.PeriodCustom {
		info.PrevFrom = resp.Period.PrevFrom.Format(domain.DateFormat)
		info.PrevTo = resp.Period.PrevTo.Format(domain.DateFormat)
		info.NextFrom = resp.Period.NextFrom.Format(domain.DateFormat)
		info.NextTo = resp.Period.NextTo.Format(domain.DateFormat)
	} else {
		info.PrevOffset = resp.Period.PrevOffset
		info.NextOffset = resp.Period.NextOffset
	}

	return &CalendarResponse{
		Period:   info,
		Currency: resp.Currency,
		Days:     days,
	}
}
