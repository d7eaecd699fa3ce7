package create_schedule

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrUnknownStylist возвращается, когда мастер не существует
	ErrUnknownStylist = fmt.Errorf("%w: stylist not found", ErrInvalidInput)

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("create_schedule: store error")

	// ErrStoreTimeout возвращается, когда хранилище не ответило за отведённое время (можно повторить)
	ErrStoreTimeout = fmt.Errorf("%w: timeout", ErrStore)
)

func storeError(ctx context.Context, what string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, what, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStore, what, err)
}
