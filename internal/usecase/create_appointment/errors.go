package create_appointment

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidPhone возвращается, когда телефон не соответствует формату 09XXXXXXXX
	ErrInvalidPhone = fmt.Errorf("%w: phone must be 10 digits starting with 09", ErrInvalidInput)

	// ErrMisalignedStart возвращается, когда время начала не кратно 30 минутам
	ErrMisalignedStart = fmt.Errorf("%w: start time must be on a 30-minute boundary", ErrInvalidInput)

	// ErrUnknownStylist возвращается, когда указанный мастер не существует
	ErrUnknownStylist = fmt.Errorf("%w: stylist not found", ErrInvalidInput)

	// ErrNoCoverage возвращается, когда ни один мастер не работает в этот слот
	ErrNoCoverage = errors.New("create_appointment: no stylist works at this time")

	// ErrFullyBooked возвращается, когда все работающие мастера уже заняты
	ErrFullyBooked = errors.New("create_appointment: all stylists are booked at this time")

	// ErrDuplicateSlot возвращается, когда у мастера уже есть запись на это время
	ErrDuplicateSlot = errors.New("create_appointment: stylist already booked at this time")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("create_appointment: store error")

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
