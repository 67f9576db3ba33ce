package set_private_event

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/events"
)

// EventsService сервис аннотаций дат
type EventsService interface {
	SetPrivateEvent(ctx context.Context, req *events.SetEventRequest) (*domain.EventOverlay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
