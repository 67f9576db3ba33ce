package get_period

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/period"
)

// PeriodGenerator генератор окон дат
type PeriodGenerator interface {
	Generate(req period.Request) (*domain.Period, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
