package overlay

import "errors"

var (
	// ErrOverlayNotFound возвращается, когда на дату нет аннотации события
	ErrOverlayNotFound = errors.New("overlay.repository: overlay not found")

	// ErrEncode возвращается при ошибке сериализации аннотации
	ErrEncode = errors.New("overlay.repository: failed to encode overlay")

	// ErrDecode возвращается при ошибке десериализации аннотации
	ErrDecode = errors.New("overlay.repository: failed to decode overlay")

	// ErrStore возвращается при ошибке key/value хранилища
	ErrStore = errors.New("overlay.repository: kv store error")
)
