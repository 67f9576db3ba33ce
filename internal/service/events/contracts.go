package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// OverlayRepository интерфейс Event Overlay Store
type OverlayRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.EventOverlay, error)
	Set(ctx context.Context, o *domain.EventOverlay) error
	Remove(ctx context.Context, date time.Time) error
}

// CacheInvalidator инвалидация снапшот-кэша resolver-а.
// Каждая мутация обязана инвалидировать кэш синхронно.
type CacheInvalidator interface {
	InvalidateDate(date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
