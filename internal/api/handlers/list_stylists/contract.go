package list_stylists

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/stylists/models"
)

type StylistService interface {
	List(ctx context.Context) (*models.StylistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
