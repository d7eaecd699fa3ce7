package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a customer booking of one slot with one stylist
// Пара (StylistID, StartTime) уникальна на уровне БД.
type Appointment struct {
	ID            uuid.UUID
	StylistID     uuid.UUID
	CustomerName  string
	CustomerPhone string
	StartTime     time.Time
	CreatedAt     time.Time

	// Denormalized for the booking board, filled by joins only
	StylistName string
}

// EndTime returns the implicit end of the appointment
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(SlotDuration)
}

// BelongsTo returns true if the appointment is bound to the stylist
func (a *Appointment) BelongsTo(stylistID uuid.UUID) bool {
	return a.StylistID == stylistID
}

// AppointmentFilter фильтр записей
type AppointmentFilter struct {
	Window    DayWindow  // Обязательный параметр
	StylistID *uuid.UUID // Фильтр по мастеру (опционально)
}
