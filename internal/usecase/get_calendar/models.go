package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса календарного окна
type Request struct {
	PeriodType string // month | quarter | custom
	Offset     int
	From       string // YYYY-MM-DD, только для custom
	To         string // YYYY-MM-DD, только для custom
}

// Response календарное окно с разрешёнными статусами дней
type Response struct {
	Period   PeriodInfo
	Currency string
	Days     []Day
}

// PeriodInfo метаданные окна и навигации
type PeriodInfo struct {
	Type       domain.PeriodType
	Offset     int
	From       time.Time
	To         time.Time
	Label      string
	PrevOffset int
	NextOffset int
	PrevFrom   time.Time
	PrevTo     time.Time
	NextFrom   time.Time
	NextTo     time.Time
}

// Day одна ячейка календаря на уровне дня
type Day struct {
	Date           time.Time
	Status         domain.CellStatus
	Color          string
	Total          int
	Available      int
	EarlyBirdPrice float64
	Event          *EventInfo
}

// EventInfo аннотация даты, если она есть
type EventInfo struct {
	Name             *string
	Price            *float64
	IsPrivateEvent   bool
	IsSpecialPricing bool
}
