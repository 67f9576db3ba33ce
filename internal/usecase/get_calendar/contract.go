package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/period"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules"
)

// PeriodGenerator генератор окон дат
type PeriodGenerator interface {
	Generate(req period.Request) (*domain.Period, error)
}

// StatusResolver разрешение статусов дат и юнитов
type StatusResolver interface {
	ResolveDayStatus(ctx context.Context, date time.Time, unitID *int64) (domain.CellStatus, error)
	ResolveUnitBreakdown(ctx context.Context, date time.Time) (*domain.Breakdown, error)
}

// RulePipeline конвейер правил пост-обработки статуса
type RulePipeline interface {
	Apply(ctx context.Context, ruleContext string, status domain.CellStatus, data *rules.ContextData) domain.CellStatus
}

// OverlayRepository интерфейс Event Overlay Store
type OverlayRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.EventOverlay, error)
}

// Settings settings-коллаборатор: валюта, early-bird параметры, палитра
type Settings interface {
	EarlyBirdSettings() (enabled bool, windowDays int, defaultPrice float64)
	CurrencyCode() string
	StatusColor(status domain.CellStatus) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
