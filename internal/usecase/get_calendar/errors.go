package get_calendar

import "errors"

var (
	// ErrInvalidPeriodType возвращается при неизвестном типе периода
	ErrInvalidPeriodType = errors.New("invalid period type")

	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrRangeTooLarge возвращается при слишком большом custom-диапазоне
	ErrRangeTooLarge = errors.New("date range too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
