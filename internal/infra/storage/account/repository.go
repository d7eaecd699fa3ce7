package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// Repository репозиторий учётных записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учётных записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет учётную запись; пароль должен быть уже захеширован
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("accounts").
		Columns("id", "email", "password_hash", "role").
		Values(account.ID, account.Email, account.PasswordHash, string(account.Role)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&account.CreatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return account, nil
}

// GetByEmail получает учётную запись по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "role", "created_at").
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.Account
	var role string
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&role,
		&account.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan account: %v", ErrScanRow, err)
	}

	account.Role = domain.Role(role)
	return &account, nil
}
