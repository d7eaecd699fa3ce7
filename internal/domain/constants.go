package domain

import (
	"regexp"
	"time"
)

// Slot configuration
// Длительность слота и записи фиксированы.
const (
	SlotDurationMinutes = 30
	SlotDuration        = SlotDurationMinutes * time.Minute
	DayDuration         = 24 * time.Hour
)

// Business validation constants
const (
	MaxCustomerNameLength = 100
	MaxStylistNameLength  = 100
	MaxEmailLength        = 254
	MinPasswordLength     = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PhonePattern местный мобильный номер: 09 и ещё 8 цифр
var PhonePattern = regexp.MustCompile(`^09\d{8}$`)

// IsValidPhone проверяет номер телефона клиента
func IsValidPhone(phone string) bool {
	return PhonePattern.MatchString(phone)
}

// IsSlotAligned returns true if t (in loc wall-clock) starts exactly on a slot boundary
func IsSlotAligned(t time.Time, loc *time.Location) bool {
	local := t.In(loc)
	return local.Second() == 0 && local.Nanosecond() == 0 && local.Minute()%SlotDurationMinutes == 0
}
