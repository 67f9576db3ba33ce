package reset_all

import "context"

// ResetUseCase сброс всех override статусов
type ResetUseCase interface {
	Reset(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
