package set_cell_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// CellStatusRepository интерфейс Cell Status Store
type CellStatusRepository interface {
	SetOverride(ctx context.Context, rec *domain.CellStatusRecord) error
	SetOverrideAll(ctx context.Context, rec *domain.CellStatusRecord, unitIDs []int64) (int, error)
	ClearAll(ctx context.Context) (int64, error)
}

// RosterProvider поставщик состава юнитов
type RosterProvider interface {
	Units(ctx context.Context) ([]domain.Unit, error)
}

// TransactionManager интерфейс для управления транзакциями.
// Групповые записи выполняются в транзакции там, где платформа её даёт
// (atomic batch write); контракт ошибок при этом не меняется.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheInvalidator синхронная инвалидация снапшот-кэша resolver-а
type CacheInvalidator interface {
	InvalidateDate(date time.Time)
	InvalidateAll()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
