package link_stylist_account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/account"
	stylistRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type mockStylistRepo struct{ mock.Mock }

func (m *mockStylistRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Stylist, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Stylist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStylistRepo) LinkAccount(ctx context.Context, stylistID, accountID uuid.UUID) error {
	return m.Called(ctx, stylistID, accountID).Error(0)
}

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if v := args.Get(0); v != nil {
		return v.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func newUseCase(stylists *mockStylistRepo, accounts *mockAccountRepo) *UseCase {
	return NewUseCase(stylists, accounts, plainHasher{}, inlineTx{}, time.Second, logger.Nop())
}

func TestUseCase_Execute(t *testing.T) {
	stylistID, accountID := uuid.New(), uuid.New()
	stylists := &mockStylistRepo{}
	accounts := &mockAccountRepo{}

	stylists.On("GetByID", mock.Anything, stylistID).Return(&domain.Stylist{ID: stylistID, Name: "Alice"}, nil)
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Email == "alice@salon.local" && a.PasswordHash == "hashed:secret-pass" && a.Role == domain.RoleStaff
	})).Return(&domain.Account{ID: accountID, Email: "alice@salon.local", Role: domain.RoleStaff}, nil)
	stylists.On("LinkAccount", mock.Anything, stylistID, accountID).Return(nil)

	resp, err := newUseCase(stylists, accounts).Execute(context.Background(), &Request{
		StylistID: stylistID,
		Email:     "  Alice@Salon.local ",
		Password:  "secret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, accountID, resp.AccountID)
	assert.Equal(t, "STAFF", resp.Role)
	stylists.AssertExpectations(t)
	accounts.AssertExpectations(t)
}

func TestUseCase_Validation(t *testing.T) {
	stylistID := uuid.New()
	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"missing stylist", Request{Email: "a@salon.local", Password: "secret-pass"}, "stylistId"},
		{"missing email", Request{StylistID: stylistID, Password: "secret-pass"}, "email"},
		{"malformed email", Request{StylistID: stylistID, Email: "not-an-email", Password: "secret-pass"}, "email"},
		{"display name email", Request{StylistID: stylistID, Email: "Alice <a@salon.local>", Password: "secret-pass"}, "email"},
		{"short password", Request{StylistID: stylistID, Email: "a@salon.local", Password: "short"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stylists := &mockStylistRepo{}
			req := tt.req
			_, err := newUseCase(stylists, &mockAccountRepo{}).Execute(context.Background(), &req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantField, domain.FieldOf(err))
			stylists.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Conflicts(t *testing.T) {
	stylistID := uuid.New()
	req := func() *Request {
		return &Request{StylistID: stylistID, Email: "alice@salon.local", Password: "secret-pass"}
	}

	t.Run("stylist not found", func(t *testing.T) {
		stylists := &mockStylistRepo{}
		stylists.On("GetByID", mock.Anything, stylistID).Return(nil, stylistRepo.ErrStylistNotFound)

		_, err := newUseCase(stylists, &mockAccountRepo{}).Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})

	t.Run("already has account", func(t *testing.T) {
		stylists := &mockStylistRepo{}
		accounts := &mockAccountRepo{}
		stylists.On("GetByID", mock.Anything, stylistID).
			Return(&domain.Stylist{ID: stylistID, AccountID: ptr.Ptr(uuid.New())}, nil)

		_, err := newUseCase(stylists, accounts).Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrAlreadyLinked)
		accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		stylists := &mockStylistRepo{}
		accounts := &mockAccountRepo{}
		stylists.On("GetByID", mock.Anything, stylistID).Return(&domain.Stylist{ID: stylistID}, nil)
		accounts.On("Create", mock.Anything, mock.Anything).Return(nil, accountRepo.ErrEmailTaken)

		_, err := newUseCase(stylists, accounts).Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("lost race on link", func(t *testing.T) {
		stylists := &mockStylistRepo{}
		accounts := &mockAccountRepo{}
		stylists.On("GetByID", mock.Anything, stylistID).Return(&domain.Stylist{ID: stylistID}, nil)
		accounts.On("Create", mock.Anything, mock.Anything).Return(&domain.Account{ID: uuid.New()}, nil)
		stylists.On("LinkAccount", mock.Anything, stylistID, mock.Anything).Return(stylistRepo.ErrAccountAlreadyLinked)

		_, err := newUseCase(stylists, accounts).Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrAlreadyLinked)
	})

	t.Run("store failure", func(t *testing.T) {
		stylists := &mockStylistRepo{}
		stylists.On("GetByID", mock.Anything, stylistID).Return(nil, errors.New("connection refused"))

		_, err := newUseCase(stylists, &mockAccountRepo{}).Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrStore)
	})
}
