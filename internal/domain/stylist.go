package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stylist represents a bookable salon employee
type Stylist struct {
	ID        uuid.UUID
	Name      string
	AccountID *uuid.UUID // Логин сотрудника; задаётся не более одного раза
	CreatedAt time.Time
}

// HasAccount returns true if a login account is already linked
func (s *Stylist) HasAccount() bool {
	return s.AccountID != nil
}
