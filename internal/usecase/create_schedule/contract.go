package create_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ScheduleRepository интерфейс репозитория интервалов работы
type ScheduleRepository interface {
	Create(ctx context.Context, interval *domain.WorkInterval) (*domain.WorkInterval, error)
}

// AvailabilityCache интерфейс кэша доступных слотов
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
