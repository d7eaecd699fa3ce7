package account

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const insertSQL = "INSERT INTO accounts (id,email,password_hash,role) VALUES ($1,$2,$3,$4) RETURNING created_at"

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo, mock := newRepo(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
			WithArgs(sqlmock.AnyArg(), "lin@salon.local", "hash", "STAFF").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		account, err := repo.Create(context.Background(), &domain.Account{
			Email:        "lin@salon.local",
			PasswordHash: "hash",
			Role:         domain.RoleStaff,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("email taken", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertSQL)).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "accounts_email_key"})

		_, err := repo.Create(context.Background(), &domain.Account{Email: "lin@salon.local", Role: domain.RoleStaff})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestRepository_GetByEmail(t *testing.T) {
	selectSQL := regexp.QuoteMeta("SELECT id, email, password_hash, role, created_at FROM accounts WHERE email = $1")

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		id := uuid.New()
		mock.ExpectQuery(selectSQL).
			WithArgs("admin@salon.local").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
				AddRow(id.String(), "admin@salon.local", "hash", "ADMIN", time.Now()))

		account, err := repo.GetByEmail(context.Background(), "admin@salon.local")
		require.NoError(t, err)
		assert.Equal(t, id, account.ID)
		assert.Equal(t, domain.RoleAdmin, account.Role)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(selectSQL).
			WithArgs("nobody@salon.local").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}))

		_, err := repo.GetByEmail(context.Background(), "nobody@salon.local")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}
