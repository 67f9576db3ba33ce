package get_unit_breakdown

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// StatusResolver разрешение распределения статусов по юнитам
type StatusResolver interface {
	ResolveUnitBreakdown(ctx context.Context, date time.Time) (*domain.Breakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
