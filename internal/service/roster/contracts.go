package roster

import "context"

// UnitScanner резервный источник состава юнитов: восстановление
// приблизительного списка по ключам существующих override
type UnitScanner interface {
	ScanUnitIDs(ctx context.Context) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
