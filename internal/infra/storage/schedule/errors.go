package schedule

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер интервала не существует
	ErrStylistNotFound = errors.New("schedule.repository: stylist not found")

	// ErrInvalidRange возвращается, когда начало интервала не раньше конца
	ErrInvalidRange = errors.New("schedule.repository: start_time must be before end_time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
