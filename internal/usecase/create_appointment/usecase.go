package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
)

// Исходы создания записи для метрик
const (
	outcomeCreated       = "created"
	outcomeNoCoverage    = "no_coverage"
	outcomeFullyBooked   = "fully_booked"
	outcomeDuplicateSlot = "duplicate_slot"
	outcomeInvalid       = "invalid"
	outcomeStoreError    = "store_error"
)

// UseCase use case создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	cache           AvailabilityCache
	metrics         MetricsRecorder
	location        *time.Location
	storeTimeout    time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	cache AvailabilityCache,
	metrics MetricsRecorder,
	location *time.Location,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		cache:           cache,
		metrics:         metrics,
		location:        location,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Результат: запись создана, либо отклонена с одной из ошибок пакета.
// Повторы внутри не выполняются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.IncAppointment(outcome(err))
	}()

	uc.logger.Info("CreateAppointment: start=%s, stylist=%s",
		req.StartTime.Format(time.RFC3339), stylistLabel(req))

	// 1. Валидация входных данных
	in, err := normalizeRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Все обращения к БД под ограниченным таймаутом
	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	var (
		created      *domain.Appointment
		autoAssigned bool
	)

	// 3. Назначение мастера и вставка в одной транзакции
	// Гонку двух записей на одного мастера решает уникальное ограничение (stylist_id, start_time).
	err = uc.txManager.Do(storeCtx, func(txCtx context.Context) error {
		// 3.1. Определяем мастера
		stylistID, auto, err := uc.assignStylist(txCtx, in.StylistID, in.StartTime)
		if err != nil {
			return err
		}
		autoAssigned = auto

		// 3.2. Вставляем запись
		appointment := &domain.Appointment{
			StylistID:     stylistID,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			StartTime:     in.StartTime,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, appointmentRepo.ErrDuplicateSlot):
			return ErrDuplicateSlot
		case errors.Is(err, appointmentRepo.ErrStylistNotFound):
			return domain.InvalidField("stylistId", ErrUnknownStylist)
		default:
			return storeError(txCtx, "create appointment", err)
		}
	})
	if err != nil {
		err = uc.classify(storeCtx, err)
		uc.logFailure(&in, err)
		return nil, err
	}

	// 4. Сбрасываем кэш доступности дня (ошибка кэша не отменяет запись)
	date := domain.NewDayWindow(created.StartTime, uc.location).Date()
	if err := uc.cache.Invalidate(ctx, date); err != nil {
		uc.logger.Warn("CreateAppointment: failed to invalidate availability cache for %s: %v", date, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s, stylist=%s, start=%s, auto=%t",
		created.ID, created.StylistID, created.StartTime.Format(time.RFC3339), autoAssigned)

	return &Response{
		ID:            created.ID,
		StylistID:     created.StylistID,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime(),
		AutoAssigned:  autoAssigned,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// classify оставляет доменные ошибки как есть, остальное считает ошибкой хранилища
func (uc *UseCase) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNoCoverage),
		errors.Is(err, ErrFullyBooked),
		errors.Is(err, ErrDuplicateSlot),
		errors.Is(err, ErrStore):
		return err
	default:
		// Ошибки начала или фиксации транзакции
		return storeError(ctx, "transaction", err)
	}
}

func (uc *UseCase) logFailure(req *Request, err error) {
	start := req.StartTime.Format(time.RFC3339)
	switch {
	case errors.Is(err, ErrNoCoverage):
		uc.logger.Warn("CreateAppointment: no coverage at %s", start)
	case errors.Is(err, ErrFullyBooked):
		uc.logger.Warn("CreateAppointment: all stylists booked at %s", start)
	case errors.Is(err, ErrDuplicateSlot):
		uc.logger.Warn("CreateAppointment: stylist=%s already booked at %s", stylistLabel(req), start)
	case errors.Is(err, ErrInvalidInput):
		uc.logger.Warn("CreateAppointment: rejected: %v", err)
	default:
		uc.logger.Error("CreateAppointment: failed to create appointment at %s: %v", start, err)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeCreated
	case errors.Is(err, ErrNoCoverage):
		return outcomeNoCoverage
	case errors.Is(err, ErrFullyBooked):
		return outcomeFullyBooked
	case errors.Is(err, ErrDuplicateSlot):
		return outcomeDuplicateSlot
	case errors.Is(err, ErrInvalidInput):
		return outcomeInvalid
	default:
		return outcomeStoreError
	}
}

func stylistLabel(req *Request) string {
	if req.StylistID == nil {
		return "auto"
	}
	return fmt.Sprint(*req.StylistID)
}
