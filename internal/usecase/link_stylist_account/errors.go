package link_stylist_account

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("link_stylist_account: invalid input data")

	// ErrStylistNotFound возвращается, когда мастер не найден
	ErrStylistNotFound = errors.New("link_stylist_account: stylist not found")

	// ErrAlreadyLinked возвращается, когда у мастера уже есть учётная запись
	ErrAlreadyLinked = errors.New("link_stylist_account: stylist already has an account")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("link_stylist_account: email already taken")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("link_stylist_account: store error")

	// ErrStoreTimeout возвращается, когда хранилище не ответило за отведённое время (можно повторить)
	ErrStoreTimeout = fmt.Errorf("%w: timeout", ErrStore)
)

func storeError(ctx context.Context, what string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrStoreTimeout, what, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStore, what, err)
}
