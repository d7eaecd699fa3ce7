package create_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createSchedule "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidField       = "некорректный формат поля, ожидается UUID или RFC3339"
	msgInvalidInterval    = "некорректный интервал работы"
	msgUnknownStylist     = "мастер не найден"
)

type Handler struct {
	useCase  CreateScheduleUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateScheduleUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequestField(w, msgInvalidField, parseErrorField(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrUnknownStylist):
			h.logger.Warn("POST /admin/schedules - Stylist not found: stylist_id=%s", req.StylistID)
			handlers.RespondBadRequestField(w, msgUnknownStylist, "stylistId")

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/schedules - Invalid interval: %v", err)
			handlers.RespondBadRequestField(w, msgInvalidInterval, domain.FieldOf(err))

		case errors.Is(err, createSchedule.ErrStoreTimeout):
			h.logger.Error("POST /admin/schedules - Store timeout: %v", err)
			handlers.RespondRetryable(w)

		default:
			h.logger.Error("POST /admin/schedules - Failed to create schedule: stylist_id=%s, error=%v", req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/schedules - Schedule created successfully: schedule_id=%s, stylist_id=%s",
		result.ID, result.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}
