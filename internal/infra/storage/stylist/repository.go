package stylist

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

var columns = []string{"id", "name", "account_id", "created_at"}

// Repository репозиторий мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мастера. ID генерируется, если не задан.
func (r *Repository) Create(ctx context.Context, stylist *domain.Stylist) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if stylist.ID == uuid.Nil {
		stylist.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("stylists").
		Columns("id", "name").
		Values(stylist.ID, stylist.Name).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&stylist.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return stylist, nil
}

// List возвращает всех мастеров, упорядоченных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("stylists").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		stylist, err := scanStylist(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan stylist: %v", ErrScanRow, err)
		}
		stylists = append(stylists, stylist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return stylists, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	stylist, err := scanStylist(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stylist: %v", ErrScanRow, err)
	}

	return stylist, nil
}

// LinkAccount привязывает учётную запись к мастеру
// Привязка выполняется не более одного раза: условие account_id IS NULL в самом UPDATE.
func (r *Repository) LinkAccount(ctx context.Context, stylistID, accountID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("stylists").
		Set("account_id", accountID).
		Where(squirrel.Eq{"id": stylistID}).
		Where(squirrel.Eq{"account_id": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LinkAccount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrAccountAlreadyLinked
		}
		return fmt.Errorf("%w: LinkAccount - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: LinkAccount - rows affected: %v", ErrExecQuery, err)
	}
	if affected > 0 {
		return nil
	}

	// Ничего не обновили: либо мастера нет, либо учётная запись уже есть
	if _, err := r.GetByID(ctx, stylistID); err != nil {
		return err
	}
	return ErrAccountAlreadyLinked
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStylist(row rowScanner) (*domain.Stylist, error) {
	var stylist domain.Stylist
	var accountID uuid.NullUUID

	if err := row.Scan(&stylist.ID, &stylist.Name, &accountID, &stylist.CreatedAt); err != nil {
		return nil, err
	}

	if accountID.Valid {
		id := accountID.UUID
		stylist.AccountID = &id
	}

	return &stylist, nil
}
