package appointments

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет доступа к данным мастера
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")

	// ErrInternalTimeout возвращается, когда хранилище не ответило вовремя (можно повторить)
	ErrInternalTimeout = fmt.Errorf("%w: timeout", ErrInternal)
)

// internalError классифицирует ошибку хранилища с учётом дедлайна контекста
func internalError(ctx context.Context, what string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrInternalTimeout, what, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, what, err)
}
