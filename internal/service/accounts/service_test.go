package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/account"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/password"
)

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if v := args.Get(0); v != nil {
		return v.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(repo *mockAccountRepo) *Service {
	return NewService(repo, password.NewBcryptHasher(4), time.Second, logger.Nop())
}

func TestEnsureAdmin_Creates(t *testing.T) {
	repo := &mockAccountRepo{}
	hasher := password.NewBcryptHasher(4)

	repo.On("GetByEmail", mock.Anything, "admin@salon.local").Return(nil, accountRepo.ErrAccountNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Role == domain.RoleAdmin && hasher.Compare(a.PasswordHash, "changeme1") == nil
	})).Return(&domain.Account{}, nil)

	created, err := newTestService(repo).EnsureAdmin(context.Background(), " Admin@Salon.local ", "changeme1")
	require.NoError(t, err)
	assert.True(t, created)
	repo.AssertExpectations(t)
}

func TestEnsureAdmin_AlreadyExists(t *testing.T) {
	repo := &mockAccountRepo{}
	hash, err := password.NewBcryptHasher(4).Hash("another-pass")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "admin@salon.local").
		Return(&domain.Account{Email: "admin@salon.local", PasswordHash: hash, Role: domain.RoleAdmin}, nil)

	created, err := newTestService(repo).EnsureAdmin(context.Background(), "admin@salon.local", "changeme1")
	require.NoError(t, err)
	assert.False(t, created)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureAdmin_ConcurrentCreate(t *testing.T) {
	repo := &mockAccountRepo{}
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, accountRepo.ErrAccountNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, accountRepo.ErrEmailTaken)

	created, err := newTestService(repo).EnsureAdmin(context.Background(), "admin@salon.local", "changeme1")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestEnsureAdmin_Errors(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newTestService(repo)

	_, err := svc.EnsureAdmin(context.Background(), "", "changeme1")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.EnsureAdmin(context.Background(), "admin@salon.local", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	_, err = svc.EnsureAdmin(context.Background(), "admin@salon.local", "changeme1")
	assert.ErrorIs(t, err, ErrInternal)
}
