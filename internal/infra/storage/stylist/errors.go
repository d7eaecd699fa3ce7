package stylist

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден
	ErrStylistNotFound = errors.New("stylist.repository: stylist not found")

	// ErrAccountAlreadyLinked возвращается, когда у мастера уже есть учётная запись
	// или учётная запись привязана к другому мастеру
	ErrAccountAlreadyLinked = errors.New("stylist.repository: account already linked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stylist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stylist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stylist.repository: failed to scan row")
)
