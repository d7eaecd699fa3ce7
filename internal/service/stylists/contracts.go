package stylists

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// StylistRepository интерфейс репозитория мастеров
type StylistRepository interface {
	Create(ctx context.Context, stylist *domain.Stylist) (*domain.Stylist, error)
	List(ctx context.Context) ([]*domain.Stylist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
