package get_day_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// StatusResolver разрешение статуса даты или юнита
type StatusResolver interface {
	ResolveDayStatus(ctx context.Context, date time.Time, unitID *int64) (domain.CellStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
