package resolver

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// CellStatusRepository интерфейс Cell Status Store
type CellStatusRepository interface {
	GetOverride(ctx context.Context, unitID int64, date time.Time, part domain.DayPart) (*domain.CellStatusRecord, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.CellStatusRecord, error)
}

// OverlayRepository интерфейс Event Overlay Store
type OverlayRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.EventOverlay, error)
}

// RosterProvider поставщик состава юнитов
type RosterProvider interface {
	Units(ctx context.Context) ([]domain.Unit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
