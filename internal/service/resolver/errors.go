package resolver

import "errors"

var (
	// ErrInternal возвращается при ошибках нижележащих хранилищ
	ErrInternal = errors.New("resolver: internal error")
)
