package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role of a back-office caller
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Account is a login record read by the external identity provider
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Identity is the authenticated caller as reported by the identity provider
type Identity struct {
	UserID    string
	Role      Role
	StylistID *uuid.UUID // Только для STAFF
}

// IsAdmin returns true for administrators
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanView returns true if the caller may see data of the given stylist
// Администратор видит всех, сотрудник только себя.
func (i Identity) CanView(stylistID uuid.UUID) bool {
	if i.IsAdmin() {
		return true
	}
	return i.Role == RoleStaff && i.StylistID != nil && *i.StylistID == stylistID
}

// ViewScope returns the stylist restriction for listings: nil for admins, own id for staff
func (i Identity) ViewScope() *uuid.UUID {
	if i.IsAdmin() {
		return nil
	}
	return i.StylistID
}
