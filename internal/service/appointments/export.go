package appointments

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/excel"
)

var boardColumns = []string{
	"Stylist", "Shift start", "Shift end", "Slot", "Customer", "Phone",
}

// ExportBoard пишет доску записей за день в формате xlsx
func (s *Service) ExportBoard(ctx context.Context, identity domain.Identity, date string, stylistID *uuid.UUID, out io.Writer) error {
	board, err := s.GetBoard(ctx, identity, date, stylistID)
	if err != nil {
		return err
	}

	if err := writeBoard(board, out); err != nil {
		s.logger.Error("ExportBoard: failed to write xlsx for date=%s: %v", board.Date, err)
		return fmt.Errorf("%w: ExportBoard - %v", ErrInternal, err)
	}

	s.logger.Info("ExportBoard: exported %d entries for date=%s", len(board.Entries), board.Date)
	return nil
}

// writeBoard одна строка на запись; смена без записей занимает одну строку с пустыми колонками клиента
func writeBoard(board *models.BoardResponse, out io.Writer) error {
	w := excel.NewWriter()
	defer w.Close()

	if err := w.AddSheet(board.Date); err != nil {
		return err
	}
	if err := w.WriteHeader(boardColumns); err != nil {
		return err
	}

	for _, entry := range board.Entries {
		if len(entry.Appointments) == 0 {
			if err := w.WriteRow([]interface{}{entry.StylistName, entry.StartTime, entry.EndTime, "", "", ""}); err != nil {
				return err
			}
			continue
		}
		for _, a := range entry.Appointments {
			row := []interface{}{entry.StylistName, entry.StartTime, entry.EndTime, a.Slot, a.CustomerName, a.CustomerPhone}
			if err := w.WriteRow(row); err != nil {
				return err
			}
		}
	}

	return w.Save(out)
}
