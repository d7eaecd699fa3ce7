package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// Service сервис просмотра записей и доски записей
type Service struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	txManager       TxManager
	location        *time.Location
	storeTimeout    time.Duration
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	txManager TxManager,
	location *time.Location,
	storeTimeout time.Duration,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		location:        location,
		storeTimeout:    storeTimeout,
		logger:          logger,
	}
}

// GetDaily возвращает записи за день с именами мастеров, сотрудник видит только свои
func (s *Service) GetDaily(ctx context.Context, identity domain.Identity, date string) (*models.AppointmentListResponse, error) {
	window, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	scope, err := s.checkAccess(identity, nil)
	if err != nil {
		s.logger.Warn("GetDaily: access denied for user=%s role=%s", identity.UserID, identity.Role)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	appointments, err := s.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{Window: window, StylistID: scope})
	if err != nil {
		s.logger.Error("GetDaily: repository error: %v", err)
		return nil, internalError(ctx, "GetDaily - repository error", err)
	}

	s.logger.Info("GetDaily: fetched %d appointments for date=%s user=%s", len(appointments), window.Date(), identity.UserID)
	return models.FromDomainAppointmentList(window.Date(), appointments, s.location), nil
}

// GetByID возвращает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, identity domain.Identity, id uuid.UUID) (*models.AppointmentResponse, error) {
	if !identity.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrAccessDenied, identity.Role)
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, internalError(ctx, "GetByID - repository error", err)
	}

	if !identity.CanView(appointment.StylistID) {
		s.logger.Warn("GetByID: user=%s has no access to appointment id=%s", identity.UserID, id)
		return nil, fmt.Errorf("%w: appointment %s belongs to another stylist", ErrAccessDenied, id)
	}

	return models.FromDomainAppointment(appointment, s.location), nil
}

// GetBoard возвращает смены за день, к каждой приложены записи этого мастера за день
func (s *Service) GetBoard(ctx context.Context, identity domain.Identity, date string, stylistID *uuid.UUID) (*models.BoardResponse, error) {
	window, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	scope, err := s.checkAccess(identity, stylistID)
	if err != nil {
		s.logger.Warn("GetBoard: access denied for user=%s role=%s", identity.UserID, identity.Role)
		return nil, err
	}

	board, err := s.buildBoard(ctx, window, scope)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetBoard: built board with %d entries for date=%s", len(board.Entries), window.Date())
	return board, nil
}

func (s *Service) buildBoard(ctx context.Context, window domain.DayWindow, scope *uuid.UUID) (*models.BoardResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var (
		schedules    []*domain.WorkInterval
		appointments []*domain.Appointment
	)

	// Смены и записи читаются из одного снимка
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		schedules, err = s.scheduleRepo.GetByFilter(ctx, domain.ScheduleFilter{Window: window, StylistID: scope})
		if err != nil {
			return fmt.Errorf("schedule repository error: %w", err)
		}

		appointments, err = s.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{Window: window, StylistID: scope})
		if err != nil {
			return fmt.Errorf("appointment repository error: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("buildBoard: %v", err)
		return nil, internalError(ctx, "buildBoard - read board", err)
	}

	byStylist := make(map[uuid.UUID][]*domain.Appointment)
	for _, a := range appointments {
		byStylist[a.StylistID] = append(byStylist[a.StylistID], a)
	}

	board := &models.BoardResponse{
		Date:    window.Date(),
		Entries: make([]models.BoardEntry, 0, len(schedules)),
	}
	for _, iv := range schedules {
		board.Entries = append(board.Entries, models.NewBoardEntry(iv, byStylist[iv.StylistID], s.location))
	}
	return board, nil
}

// checkAccess возвращает ограничение по мастеру для выборки
// Администратор может запросить любого мастера, сотрудник только себя.
func (s *Service) checkAccess(identity domain.Identity, requested *uuid.UUID) (*uuid.UUID, error) {
	switch identity.Role {
	case domain.RoleAdmin:
		return requested, nil
	case domain.RoleStaff:
		if identity.StylistID == nil {
			return nil, fmt.Errorf("%w: staff user %s is not linked to a stylist", ErrAccessDenied, identity.UserID)
		}
		if requested != nil && *requested != *identity.StylistID {
			return nil, fmt.Errorf("%w: staff may only view own stylist", ErrAccessDenied)
		}
		return identity.StylistID, nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrAccessDenied, identity.Role)
	}
}

func (s *Service) parseDate(date string) (domain.DayWindow, error) {
	if date == "" {
		return domain.DayWindow{}, domain.InvalidField("date", fmt.Errorf("%w: date is required", ErrInvalidInput))
	}
	window, err := domain.ParseDayWindow(date, s.location)
	if err != nil {
		return domain.DayWindow{}, domain.InvalidField("date", fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	return window, nil
}
