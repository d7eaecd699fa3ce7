package create_schedule

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
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) Create(ctx context.Context, interval *domain.WorkInterval) (*domain.WorkInterval, error) {
	args := m.Called(ctx, interval)
	if v := args.Get(0); v != nil {
		return v.(*domain.WorkInterval), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context, date string) error {
	return m.Called(ctx, date).Error(0)
}

func TestUseCase_Execute(t *testing.T) {
	stylistID := uuid.New()
	start := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 2, 2, 0, 0, 0, time.UTC)

	repo := &mockScheduleRepo{}
	cache := &mockCache{}
	uc := NewUseCase(repo, cache, time.UTC, time.Second, logger.Nop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(iv *domain.WorkInterval) bool {
		return iv.StylistID == stylistID && iv.StartTime.Equal(start) && iv.EndTime.Equal(end)
	})).Return(&domain.WorkInterval{ID: uuid.New(), StylistID: stylistID, StartTime: start, EndTime: end}, nil)
	cache.On("Invalidate", mock.Anything, "2025-03-01").Return(nil)
	cache.On("Invalidate", mock.Anything, "2025-03-02").Return(errors.New("redis down"))

	resp, err := uc.Execute(context.Background(), &Request{StylistID: stylistID, StartTime: start, EndTime: end})
	require.NoError(t, err)

	assert.Equal(t, stylistID, resp.StylistID)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUseCase_Validation(t *testing.T) {
	stylistID := uuid.New()
	nine := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"missing stylist", Request{StartTime: nine, EndTime: nine.Add(time.Hour)}, "stylistId"},
		{"missing start", Request{StylistID: stylistID, EndTime: nine}, "startTime"},
		{"missing end", Request{StylistID: stylistID, StartTime: nine}, "endTime"},
		{"misaligned start", Request{StylistID: stylistID, StartTime: nine.Add(5 * time.Minute), EndTime: nine.Add(time.Hour)}, "startTime"},
		{"misaligned end", Request{StylistID: stylistID, StartTime: nine, EndTime: nine.Add(45 * time.Minute)}, "endTime"},
		{"empty interval", Request{StylistID: stylistID, StartTime: nine, EndTime: nine}, "endTime"},
		{"reversed interval", Request{StylistID: stylistID, StartTime: nine.Add(time.Hour), EndTime: nine}, "endTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockScheduleRepo{}
			uc := NewUseCase(repo, &mockCache{}, time.UTC, time.Second, logger.Nop())

			req := tt.req
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, tt.wantField, domain.FieldOf(err))
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_RepositoryErrors(t *testing.T) {
	stylistID := uuid.New()
	nine := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	req := func() *Request { return &Request{StylistID: stylistID, StartTime: nine, EndTime: nine.Add(time.Hour)} }

	t.Run("unknown stylist", func(t *testing.T) {
		repo := &mockScheduleRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, scheduleRepo.ErrStylistNotFound)
		uc := NewUseCase(repo, &mockCache{}, time.UTC, time.Second, logger.Nop())

		_, err := uc.Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrUnknownStylist)
		assert.Equal(t, "stylistId", domain.FieldOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &mockScheduleRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
		uc := NewUseCase(repo, &mockCache{}, time.UTC, time.Second, logger.Nop())

		_, err := uc.Execute(context.Background(), req())
		assert.ErrorIs(t, err, ErrStore)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	})
}
