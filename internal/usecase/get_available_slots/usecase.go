package get_available_slots

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	availabilityCache "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	modeStylist   = "stylist"
	modeAggregate = "aggregate"

	cacheHit  = "hit"
	cacheMiss = "miss"
	cacheOff  = "off"
)

// UseCase use case расчёта доступных слотов
// Только чтение: ничего не блокирует и не резервирует.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	cache           AvailabilityCache
	metrics         MetricsRecorder
	location        *time.Location
	storeTimeout    time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	cache AvailabilityCache,
	metrics MetricsRecorder,
	location *time.Location,
	storeTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		metrics:         metrics,
		location:        location,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	mode := modeAggregate
	if req.StylistID != nil {
		mode = modeStylist
	}
	uc.logger.Info("GetAvailableSlots: date=%s, mode=%s", req.Date, mode)

	// 1. Валидация входных данных
	window, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Пробуем кэш
	cacheState := cacheOff
	var cacheVersion int64
	if uc.cache.Enabled() {
		cached, version, err := uc.cache.Get(ctx, window.Date(), req.StylistID)
		cacheVersion = version
		switch {
		case err == nil:
			uc.metrics.IncAvailabilityQuery(mode, cacheHit)
			return uc.response(window, req, fromStrings(cached), true), nil
		case errors.Is(err, availabilityCache.ErrCacheMiss):
			cacheState = cacheMiss
		default:
			// Кэш недоступен: считаем по БД
			uc.logger.Warn("GetAvailableSlots: cache read failed: %v", err)
			cacheState = cacheMiss
		}
	}
	uc.metrics.IncAvailabilityQuery(mode, cacheState)

	// 3. Читаем интервалы и записи дня под ограниченным таймаутом
	storeCtx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	intervals, err := uc.scheduleRepo.GetByFilter(storeCtx, domain.ScheduleFilter{Window: window, StylistID: req.StylistID})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules: %v", err)
		return nil, storeError(storeCtx, "get schedules", err)
	}

	appointments, err := uc.appointmentRepo.GetByFilter(storeCtx, domain.AppointmentFilter{Window: window, StylistID: req.StylistID})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, storeError(storeCtx, "get appointments", err)
	}

	// 4. Строим сетку слотов и вычитаем записи
	var slots []types.TimeString
	if req.StylistID != nil {
		slots = resolveStylistSlots(buildStylistSlots(window, intervals), appointments, *req.StylistID, uc.location)
	} else {
		slots = resolveAggregateSlots(buildCapacity(window, intervals), appointments, uc.location)
	}

	// 5. Сохраняем в кэш под версией дня, прочитанной до похода в БД (ошибка кэша не влияет на ответ)
	if cacheState == cacheMiss {
		if err := uc.cache.Set(ctx, window.Date(), req.StylistID, cacheVersion, toStrings(slots)); err != nil {
			uc.logger.Warn("GetAvailableSlots: cache write failed: %v", err)
		}
	}

	uc.logger.Info("GetAvailableSlots: date=%s, mode=%s, intervals=%d, appointments=%d, slots=%d",
		window.Date(), mode, len(intervals), len(appointments), len(slots))

	return uc.response(window, req, slots, false), nil
}

func (uc *UseCase) response(window domain.DayWindow, req *Request, slots []types.TimeString, fromCache bool) *Response {
	return &Response{
		Date:      window.Date(),
		StylistID: req.StylistID,
		Slots:     slots,
		FromCache: fromCache,
	}
}

func toStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func fromStrings(slots []string) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	for i, s := range slots {
		out[i] = types.TimeString(s)
	}
	return out
}
