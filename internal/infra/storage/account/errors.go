package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда учётная запись не найдена
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("account.repository: email already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
