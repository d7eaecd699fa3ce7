package export_board

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_board"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStylistID = "некорректный ID мастера"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/board/export?date=YYYY-MM-DD[&stylistId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/board/export - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")

	stylistID, err := get_board.ParseStylistID(query.Get("stylistId"))
	if err != nil {
		h.logger.Warn("GET /admin/board/export - Invalid stylist ID: %v", err)
		handlers.RespondBadRequestField(w, msgInvalidStylistID, "stylistId")
		return
	}

	// Файл собирается в памяти: при ошибке клиент получает JSON, а не обрезанный xlsx
	var buf bytes.Buffer
	if err := h.service.ExportBoard(r.Context(), identity, date, stylistID, &buf); err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequestField(w, msgInvalidDate, "date")

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /admin/board/export - Access denied: user_id=%s", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInternalTimeout):
			h.logger.Error("GET /admin/board/export - Store timeout: date=%s, error=%v", date, err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("GET /admin/board/export - Failed to export board: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="board-%s.xlsx"`, date))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/board/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /admin/board/export - Board exported successfully: date=%s, user_id=%s", date, identity.UserID)
}
