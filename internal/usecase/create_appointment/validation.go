package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// normalizeRequest возвращает копию запроса с обрезанными пробелами и проверяет её
// Исходный запрос не меняется.
func normalizeRequest(req *Request, loc *time.Location) (Request, error) {
	in := *req
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)

	if err := validateRequest(&in, loc); err != nil {
		return Request{}, err
	}
	return in, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, loc *time.Location) error {
	if req.CustomerName == "" {
		return domain.InvalidField("customerName", fmt.Errorf("%w: customer name is required", ErrInvalidInput))
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return domain.InvalidField("customerName",
			fmt.Errorf("%w: customer name is longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLength))
	}

	if req.CustomerPhone == "" {
		return domain.InvalidField("customerPhone", fmt.Errorf("%w: customer phone is required", ErrInvalidInput))
	}
	if !domain.IsValidPhone(req.CustomerPhone) {
		return domain.InvalidField("customerPhone", ErrInvalidPhone)
	}

	if req.StartTime.IsZero() {
		return domain.InvalidField("startTime", fmt.Errorf("%w: start time is required", ErrInvalidInput))
	}
	if !domain.IsSlotAligned(req.StartTime, loc) {
		return domain.InvalidField("startTime", ErrMisalignedStart)
	}

	return nil
}
