package create_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
)

// UseCase use case добавления интервала работы мастера
type UseCase struct {
	scheduleRepo ScheduleRepository
	cache        AvailabilityCache
	location     *time.Location
	storeTimeout time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	cache AvailabilityCache,
	location *time.Location,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		cache:        cache,
		location:     location,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Execute выполняет use case добавления интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: stylist=%s, start=%s, end=%s",
		req.StylistID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.location); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем интервал
	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	created, err := uc.scheduleRepo.Create(storeCtx, &domain.WorkInterval{
		StylistID: req.StylistID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrStylistNotFound):
			uc.logger.Warn("CreateSchedule: stylist=%s not found", req.StylistID)
			return nil, domain.InvalidField("stylistId", ErrUnknownStylist)
		case errors.Is(err, scheduleRepo.ErrInvalidRange):
			return nil, domain.InvalidField("endTime", fmt.Errorf("%w: %v", ErrInvalidInput, err))
		default:
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return nil, storeError(storeCtx, "create schedule", err)
		}
	}

	// 3. Сбрасываем кэш доступности для всех затронутых дней
	for _, window := range domain.DaysBetween(created.StartTime, created.EndTime, uc.location) {
		if err := uc.cache.Invalidate(ctx, window.Date()); err != nil {
			uc.logger.Warn("CreateSchedule: failed to invalidate availability cache for %s: %v", window.Date(), err)
		}
	}

	uc.logger.Info("CreateSchedule: created schedule id=%s for stylist=%s", created.ID, created.StylistID)

	return &Response{
		ID:        created.ID,
		StylistID: created.StylistID,
		StartTime: created.StartTime,
		EndTime:   created.EndTime,
		CreatedAt: created.CreatedAt,
	}, nil
}
