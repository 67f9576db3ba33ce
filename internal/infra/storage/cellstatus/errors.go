package cellstatus

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда override для ячейки не найден
	ErrOverrideNotFound = errors.New("cellstatus.repository: override not found")

	// ErrInvalidStatus возвращается при попытке записать неизвестный статус
	ErrInvalidStatus = errors.New("cellstatus.repository: invalid cell status")

	// ErrInvalidPart возвращается при неизвестной части дня
	ErrInvalidPart = errors.New("cellstatus.repository: invalid day part")

	// ErrPartialApply возвращается, когда групповая запись применилась не ко всем юнитам.
	// Отката нет: часть записей обновлена, часть нет (см. модель согласованности).
	ErrPartialApply = errors.New("cellstatus.repository: bulk write partially applied")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("cellstatus.repository: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("cellstatus.repository: failed to decode record")

	// ErrStore возвращается при ошибке key/value хранилища
	ErrStore = errors.New("cellstatus.repository: kv store error")
)
