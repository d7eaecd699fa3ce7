package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkInterval is a half-open block [StartTime, EndTime) during which a stylist can be booked
type WorkInterval struct {
	ID        uuid.UUID
	StylistID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time

	// Denormalized for the booking board, filled by joins only
	StylistName string
}

// IsValid returns true if the interval is non-empty
func (w *WorkInterval) IsValid() bool {
	return w.StartTime.Before(w.EndTime)
}

// Covers returns true if the whole slot [start, start+SlotDuration) is inside the interval
func (w *WorkInterval) Covers(start time.Time) bool {
	return !w.StartTime.After(start) && !w.EndTime.Before(start.Add(SlotDuration))
}

// Intersects returns true if the interval overlaps the day window
func (w *WorkInterval) Intersects(window DayWindow) bool {
	return w.StartTime.Before(window.End) && w.EndTime.After(window.Start)
}

// ScheduleFilter фильтр интервалов работы
type ScheduleFilter struct {
	Window    DayWindow  // Обязательный параметр
	StylistID *uuid.UUID // Фильтр по мастеру (опционально)
}
