package get_available_slots

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("get_available_slots: store error")

	// ErrStoreTimeout возвращается, когда хранилище не ответило за отведённое время (можно повторить)
	ErrStoreTimeout = fmt.Errorf("%w: timeout", ErrStore)
)

// storeError классифицирует ошибку хранилища с учётом дедлайна контекста
func storeError(ctx context.Context, what string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, what, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStore, what, err)
}
