package get_daily_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/admin/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date := r.URL.Query().Get("date")

	// Сервис сам ограничит выборку мастером сотрудника
	resp, err := h.service.GetDaily(r.Context(), identity, date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid date: date=%q", date)
			handlers.RespondBadRequestField(w, msgInvalidDate, "date")

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /admin/appointments - Access denied: user_id=%s", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInternalTimeout):
			h.logger.Error("GET /admin/appointments - Store timeout: date=%s, error=%v", date, err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("GET /admin/appointments - Failed to get appointments: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: date=%s, user_id=%s, count=%d",
		resp.Date, identity.UserID, len(resp.Appointments))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
