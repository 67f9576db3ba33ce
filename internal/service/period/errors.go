package period

import "errors"

var (
	// ErrInvalidPeriodType возвращается при неизвестном типе периода
	ErrInvalidPeriodType = errors.New("period: invalid period type")

	// ErrInvalidDate возвращается при некорректной строке даты custom-периода
	ErrInvalidDate = errors.New("period: invalid date format")

	// ErrRangeTooLarge возвращается, когда custom-диапазон превышает допустимый размер
	ErrRangeTooLarge = errors.New("period: date range too large")
)
