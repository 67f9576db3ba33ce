package set_cell_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid cell status")

	// ErrUnitNotFound возвращается, когда юнит отсутствует в составе
	ErrUnitNotFound = errors.New("unit not found")

	// ErrPartialApply возвращается, когда групповая запись применилась
	// не ко всем юнитам (частичный результат, отката нет)
	ErrPartialApply = errors.New("bulk status write partially applied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
