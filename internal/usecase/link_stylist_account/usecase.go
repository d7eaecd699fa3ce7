package link_stylist_account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/account"
	stylistRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/stylist"
)

// UseCase use case создания учётной записи сотрудника, привязанной к мастеру
type UseCase struct {
	stylistRepo  StylistRepository
	accountRepo  AccountRepository
	hasher       PasswordHasher
	txManager    TransactionManager
	storeTimeout time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	stylistRepo StylistRepository,
	accountRepo AccountRepository,
	hasher PasswordHasher,
	txManager TransactionManager,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		stylistRepo:  stylistRepo,
		accountRepo:  accountRepo,
		hasher:       hasher,
		txManager:    txManager,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute выполняет use case привязки учётной записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LinkStylistAccount: stylist=%s", req.StylistID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LinkStylistAccount: validation failed: %v", err)
		return nil, err
	}

	// 2. Хешируем пароль до транзакции: bcrypt медленный
	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("LinkStylistAccount: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: hash password: %v", ErrStore, err)
	}

	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	var created *domain.Account

	// 3. Создаём учётную запись и привязываем её в одной транзакции
	err = uc.txManager.Do(storeCtx, func(txCtx context.Context) error {
		// 3.1. Проверяем мастера
		stylist, err := uc.stylistRepo.GetByID(txCtx, req.StylistID)
		if err != nil {
			if errors.Is(err, stylistRepo.ErrStylistNotFound) {
				return ErrStylistNotFound
			}
			return storeError(txCtx, "get stylist", err)
		}
		if stylist.HasAccount() {
			return ErrAlreadyLinked
		}

		// 3.2. Создаём учётную запись сотрудника
		created, err = uc.accountRepo.Create(txCtx, &domain.Account{
			Email:        req.Email,
			PasswordHash: hash,
			Role:         domain.RoleStaff,
		})
		if err != nil {
			if errors.Is(err, accountRepo.ErrEmailTaken) {
				return ErrEmailTaken
			}
			return storeError(txCtx, "create account", err)
		}

		// 3.3. Привязываем (не более одного раза)
		if err := uc.stylistRepo.LinkAccount(txCtx, req.StylistID, created.ID); err != nil {
			switch {
			case errors.Is(err, stylistRepo.ErrAccountAlreadyLinked):
				return ErrAlreadyLinked
			case errors.Is(err, stylistRepo.ErrStylistNotFound):
				return ErrStylistNotFound
			default:
				return storeError(txCtx, "link account", err)
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrStylistNotFound), errors.Is(err, ErrAlreadyLinked), errors.Is(err, ErrEmailTaken):
			uc.logger.Warn("LinkStylistAccount: rejected for stylist=%s: %v", req.StylistID, err)
			return nil, err
		case errors.Is(err, ErrStore):
			uc.logger.Error("LinkStylistAccount: store failure for stylist=%s: %v", req.StylistID, err)
			return nil, err
		default:
			uc.logger.Error("LinkStylistAccount: transaction failure for stylist=%s: %v", req.StylistID, err)
			return nil, storeError(storeCtx, "transaction", err)
		}
	}

	uc.logger.Info("LinkStylistAccount: account id=%s linked to stylist=%s", created.ID, req.StylistID)

	return &Response{
		AccountID: created.ID,
		StylistID: req.StylistID,
		Email:     created.Email,
		Role:      string(created.Role),
		CreatedAt: created.CreatedAt,
	}, nil
}
