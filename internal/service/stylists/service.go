package stylists

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists/models"
)

// Service сервис для работы с мастерами
type Service struct {
	stylistRepo  StylistRepository
	storeTimeout time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(stylistRepo StylistRepository, storeTimeout time.Duration, logger Logger) *Service {
	return &Service{
		stylistRepo:  stylistRepo,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// Create создает мастера
func (s *Service) Create(ctx context.Context, req *models.CreateStylistRequest) (*models.StylistResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("Create: creating stylist name=%q", name)

	if name == "" {
		return nil, domain.InvalidField("name", fmt.Errorf("%w: name is required", ErrInvalidInput))
	}
	if utf8.RuneCountInString(name) > domain.MaxStylistNameLength {
		return nil, domain.InvalidField("name",
			fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxStylistNameLength))
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	created, err := s.stylistRepo.Create(ctx, &domain.Stylist{Name: name})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created stylist id=%s", created.ID)
	return models.FromDomainStylist(created), nil
}

// List возвращает всех мастеров по имени
func (s *Service) List(ctx context.Context) (*models.StylistListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	stylists, err := s.stylistRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d stylists", len(stylists))
	return models.FromDomainStylistList(stylists), nil
}
