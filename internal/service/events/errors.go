package events

import "errors"

var (
	// ErrEmptyPayload возвращается, когда событие не несет ни имени,
	// ни флага приватности, ни положительной цены
	ErrEmptyPayload = errors.New("events: empty private event payload")

	// ErrNameTooLong возвращается при превышении максимальной длины имени события
	ErrNameTooLong = errors.New("events: event name too long")

	// ErrNegativePrice возвращается при отрицательной цене события
	ErrNegativePrice = errors.New("events: price must not be negative")

	// ErrOverlayNotFound возвращается, когда на дату нет события
	ErrOverlayNotFound = errors.New("events: overlay not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("events: internal error")
)
