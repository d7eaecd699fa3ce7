package create_stylist

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists/models"
)

type StylistService interface {
	Create(ctx context.Context, req *models.CreateStylistRequest) (*models.StylistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
