package remove_private_event

import (
	"context"
	"time"
)

// EventsService сервис аннотаций дат
type EventsService interface {
	RemovePrivateEvent(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
