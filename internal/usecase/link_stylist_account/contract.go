package link_stylist_account

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// StylistRepository интерфейс репозитория мастеров
type StylistRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Stylist, error)
	LinkAccount(ctx context.Context, stylistID, accountID uuid.UUID) error
}

// AccountRepository интерфейс репозитория учётных записей
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// PasswordHasher интерфейс хеширования паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
