package stylists

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type mockStylistRepo struct{ mock.Mock }

func (m *mockStylistRepo) Create(ctx context.Context, stylist *domain.Stylist) (*domain.Stylist, error) {
	args := m.Called(ctx, stylist)
	if v := args.Get(0); v != nil {
		return v.(*domain.Stylist), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStylistRepo) List(ctx context.Context) ([]*domain.Stylist, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Stylist), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Create(t *testing.T) {
	repo := &mockStylistRepo{}
	svc := NewService(repo, time.Second, logger.Nop())
	id := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Stylist) bool { return s.Name == "Alice" })).
		Return(&domain.Stylist{ID: id, Name: "Alice"}, nil)

	resp, err := svc.Create(context.Background(), &models.CreateStylistRequest{Name: "  Alice "})
	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.ID)
	assert.False(t, resp.HasAccount)
}

func TestService_Create_Invalid(t *testing.T) {
	repo := &mockStylistRepo{}
	svc := NewService(repo, time.Second, logger.Nop())

	for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
		_, err := svc.Create(context.Background(), &models.CreateStylistRequest{Name: name})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, "name", domain.FieldOf(err))
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_List(t *testing.T) {
	repo := &mockStylistRepo{}
	svc := NewService(repo, time.Second, logger.Nop())
	accountID := uuid.New()

	repo.On("List", mock.Anything).Return([]*domain.Stylist{
		{ID: uuid.New(), Name: "Alice", AccountID: &accountID},
		{ID: uuid.New(), Name: "Bob"},
	}, nil).Once()

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Stylists, 2)
	assert.True(t, resp.Stylists[0].HasAccount)

	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
