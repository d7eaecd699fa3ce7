package get_board

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
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

// Handle GET /api/v1/admin/board?date=YYYY-MM-DD[&stylistId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/board - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")

	stylistID, err := ParseStylistID(query.Get("stylistId"))
	if err != nil {
		h.logger.Warn("GET /admin/board - Invalid stylist ID: %v", err)
		handlers.RespondBadRequestField(w, msgInvalidStylistID, "stylistId")
		return
	}

	board, err := h.service.GetBoard(r.Context(), identity, date, stylistID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/board - Invalid date: date=%q", date)
			handlers.RespondBadRequestField(w, msgInvalidDate, "date")

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /admin/board - Access denied: user_id=%s", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInternalTimeout):
			h.logger.Error("GET /admin/board - Store timeout: date=%s, error=%v", date, err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("GET /admin/board - Failed to build board: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/board - Board retrieved successfully: date=%s, user_id=%s, entries=%d",
		board.Date, identity.UserID, len(board.Entries))
	handlers.RespondJSON(w, http.StatusOK, board)
}

// ParseStylistID разбирает необязательный фильтр по мастеру
func ParseStylistID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
