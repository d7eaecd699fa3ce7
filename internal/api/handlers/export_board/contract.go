package export_board

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type AppointmentService interface {
	ExportBoard(ctx context.Context, identity domain.Identity, date string, stylistID *uuid.UUID, out io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
