package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует запрос и возвращает окно дня
func validateRequest(req *Request, loc *time.Location) (domain.DayWindow, error) {
	if req.Date == "" {
		return domain.DayWindow{}, domain.InvalidField("date", fmt.Errorf("%w: date is required", ErrInvalidInput))
	}

	window, err := domain.ParseDayWindow(req.Date, loc)
	if err != nil {
		return domain.DayWindow{}, domain.InvalidField("date", fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	return window, nil
}
