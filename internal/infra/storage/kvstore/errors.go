package kvstore

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kvstore.repository: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kvstore.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("kvstore.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kvstore.repository: failed to scan row")
)
