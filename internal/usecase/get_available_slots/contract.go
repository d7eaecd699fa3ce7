package get_available_slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория интервалов работы
type ScheduleRepository interface {
	GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.WorkInterval, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	Enabled() bool
	Get(ctx context.Context, date string, stylistID *uuid.UUID) ([]string, int64, error)
	Set(ctx context.Context, date string, stylistID *uuid.UUID, version int64, slots []string) error
}

// MetricsRecorder интерфейс для метрик
type MetricsRecorder interface {
	IncAvailabilityQuery(mode, cache string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
