package accounts

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AccountRepository интерфейс репозитория учётных записей
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// PasswordHasher интерфейс хеширования паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
