package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/account"
	"github.com/m04kA/SMC-SalonBooking/pkg/password"
)

// Service сервис учётных записей
type Service struct {
	accountRepo  AccountRepository
	hasher       PasswordHasher
	storeTimeout time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса учётных записей
func NewService(accountRepo AccountRepository, hasher PasswordHasher, storeTimeout time.Duration, logger Logger) *Service {
	return &Service{
		accountRepo:  accountRepo,
		hasher:       hasher,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// EnsureAdmin создает учётную запись администратора, если её ещё нет
// Возвращает true, если запись была создана.
func (s *Service) EnsureAdmin(ctx context.Context, email, plain string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(plain) < domain.MinPasswordLength {
		return false, fmt.Errorf("%w: admin email and a password of at least %d characters are required",
			ErrInvalidInput, domain.MinPasswordLength)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	existing, err := s.accountRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			s.logger.Warn("EnsureAdmin: account %s exists with role %s", email, existing.Role)
		} else if cmpErr := s.hasher.Compare(existing.PasswordHash, plain); errors.Is(cmpErr, password.ErrMismatch) {
			s.logger.Warn("EnsureAdmin: configured password differs from stored one for %s", email)
		}
		return false, nil
	case !errors.Is(err, accountRepo.ErrAccountNotFound):
		s.logger.Error("EnsureAdmin: repository error: %v", err)
		return false, fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return false, fmt.Errorf("%w: EnsureAdmin - %v", ErrInternal, err)
	}

	_, err = s.accountRepo.Create(ctx, &domain.Account{Email: email, PasswordHash: hash, Role: domain.RoleAdmin})
	if err != nil {
		// Параллельный запуск другого экземпляра успел создать запись
		if errors.Is(err, accountRepo.ErrEmailTaken) {
			return false, nil
		}
		s.logger.Error("EnsureAdmin: failed to create admin: %v", err)
		return false, fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAdmin: created admin account %s", email)
	return true, nil
}
