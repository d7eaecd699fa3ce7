package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetBookedStylistIDs(ctx context.Context, startTime time.Time) ([]uuid.UUID, error)
}

// ScheduleRepository интерфейс репозитория интервалов работы
type ScheduleRepository interface {
	GetCoveringStylistIDs(ctx context.Context, slotStart time.Time) ([]uuid.UUID, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date string) error
}

// MetricsRecorder интерфейс для метрик
type MetricsRecorder interface {
	IncAppointment(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
