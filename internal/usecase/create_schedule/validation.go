package create_schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, loc *time.Location) error {
	if req.StylistID == uuid.Nil {
		return domain.InvalidField("stylistId", fmt.Errorf("%w: stylist id is required", ErrInvalidInput))
	}

	if req.StartTime.IsZero() {
		return domain.InvalidField("startTime", fmt.Errorf("%w: start time is required", ErrInvalidInput))
	}
	if req.EndTime.IsZero() {
		return domain.InvalidField("endTime", fmt.Errorf("%w: end time is required", ErrInvalidInput))
	}

	if !domain.IsSlotAligned(req.StartTime, loc) {
		return domain.InvalidField("startTime", fmt.Errorf("%w: start time must be on a 30-minute boundary", ErrInvalidInput))
	}
	if !domain.IsSlotAligned(req.EndTime, loc) {
		return domain.InvalidField("endTime", fmt.Errorf("%w: end time must be on a 30-minute boundary", ErrInvalidInput))
	}

	if !req.StartTime.Before(req.EndTime) {
		return domain.InvalidField("endTime", fmt.Errorf("%w: end time must be after start time", ErrInvalidInput))
	}

	return nil
}
