package link_stylist_account

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.StylistID == uuid.Nil {
		return domain.InvalidField("stylistId", fmt.Errorf("%w: stylist id is required", ErrInvalidInput))
	}

	if req.Email == "" {
		return domain.InvalidField("email", fmt.Errorf("%w: email is required", ErrInvalidInput))
	}
	if len(req.Email) > domain.MaxEmailLength {
		return domain.InvalidField("email", fmt.Errorf("%w: email is too long", ErrInvalidInput))
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return domain.InvalidField("email", fmt.Errorf("%w: email is malformed", ErrInvalidInput))
	}

	if len(req.Password) < domain.MinPasswordLength {
		return domain.InvalidField("password",
			fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength))
	}

	return nil
}
